// Package remote lists and fetches cheatsheets from the community repository
// and falls back to cached or built-in content when the network fails.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/Paintersrp/cheats/internal/config"
	"github.com/Paintersrp/cheats/internal/logging"
	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/sheet"
)

const maxSheetBytes = 4 << 20

// Source tells where a listing came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceSample Source = "sample"
)

// OfflineReader is the part of the offline cache the fallback chain needs.
type OfflineReader interface {
	Get(ctx context.Context, slug string) (sheet.OfflineEntry, bool, error)
}

// PreferencesReader loads the current preferences.
type PreferencesReader interface {
	Get(ctx context.Context) (prefs.Preferences, error)
}

// Result is the outcome of FetchRawContent. Err holds the network failure
// that caused a fallback.
type Result struct {
	Content string
	Status  sheet.FetchStatus
	Reason  sheet.FallbackReason
	Err     error
}

type Catalog struct {
	cfg     config.RemoteConfig
	client  *http.Client
	limiter *rate.Limiter
	offline OfflineReader
	prefs   PreferencesReader
	log     logging.Logger

	tokenOnce sync.Once
	tokenFn   func() (string, error)
	token     string
}

type Option func(*Catalog)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Catalog) { c.client = client }
}

func WithLogger(log logging.Logger) Option {
	return func(c *Catalog) { c.log = log }
}

// WithOffline enables the offline-cache step of the fallback chain. The step
// is taken only while prefs reports offline storage as enabled.
func WithOffline(offline OfflineReader, prefs PreferencesReader) Option {
	return func(c *Catalog) {
		c.offline = offline
		c.prefs = prefs
	}
}

// WithTokenSource supplies the GitHub token when the config carries none.
func WithTokenSource(fn func() (string, error)) Option {
	return func(c *Catalog) { c.tokenFn = fn }
}

func New(cfg config.RemoteConfig, opts ...Option) *Catalog {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	c := &Catalog{
		cfg:     cfg,
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(limit, max(cfg.Burst, 1)),
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "remote")
	return c
}

// ListSlugs returns the sheet slugs of the repository in listing order. It
// never fails: on any error the built-in sample listing is returned.
func (c *Catalog) ListSlugs(ctx context.Context) ([]string, Source) {
	slugs, err := c.listRemote(ctx)
	if err != nil {
		c.log.Warn(ctx, "listing failed, using sample data", "error", err)
		return SampleSlugs(), SourceSample
	}
	return slugs, SourceRemote
}

func (c *Catalog) listRemote(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ListTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s",
		strings.TrimRight(c.cfg.APIBase, "/"), c.cfg.Owner, c.cfg.Repo, c.cfg.Branch)

	body, err := c.get(ctx, url, map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}, true)
	if err != nil {
		return nil, err
	}

	var tree treeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode tree listing: %w", err)
	}
	if tree.Truncated {
		c.log.Warn(ctx, "tree listing truncated", "entries", len(tree.Tree))
	}

	return sheetSlugs(tree.Tree), nil
}

// Fetch downloads the raw Markdown of slug without any fallback.
func (c *Catalog) Fetch(ctx context.Context, slug string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ContentTimeout)
	defer cancel()

	body, err := c.get(ctx, c.rawURL(slug), nil, false)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchRawContent fetches slug from the network first. On failure it tries
// the offline cache (when enabled), then the built-in samples, then a
// placeholder document. It never fails.
func (c *Catalog) FetchRawContent(ctx context.Context, slug string) Result {
	content, err := c.Fetch(ctx, slug)
	if err == nil {
		return Result{Content: content, Status: sheet.StatusSuccess}
	}

	c.log.Warn(ctx, "content fetch failed", "slug", slug, "error", err)

	if entry, ok := c.cached(ctx, slug); ok {
		return Result{
			Content: entry.Content,
			Status:  sheet.StatusFallback,
			Reason:  sheet.ReasonOfflineCache,
			Err:     err,
		}
	}

	if sample, ok := Sample(slug); ok {
		return Result{
			Content: sample,
			Status:  sheet.StatusFallback,
			Reason:  sheet.ReasonSampleData,
			Err:     err,
		}
	}

	return Result{
		Content: Placeholder(slug),
		Status:  sheet.StatusFallback,
		Reason:  sheet.ReasonPlaceholder,
		Err:     err,
	}
}

func (c *Catalog) cached(ctx context.Context, slug string) (sheet.OfflineEntry, bool) {
	if c.offline == nil || c.prefs == nil {
		return sheet.OfflineEntry{}, false
	}

	p, err := c.prefs.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "could not read preferences", "error", err)
		return sheet.OfflineEntry{}, false
	}
	if !p.EnableOfflineStorage {
		return sheet.OfflineEntry{}, false
	}

	entry, ok, err := c.offline.Get(ctx, slug)
	if err != nil {
		c.log.Warn(ctx, "could not read offline cache", "slug", slug, "error", err)
		return sheet.OfflineEntry{}, false
	}
	return entry, ok
}

// URLFor is the public page of slug.
func (c *Catalog) URLFor(slug string) string {
	return strings.TrimRight(c.cfg.SiteBase, "/") + "/" + slug
}

func (c *Catalog) rawURL(slug string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s.md",
		strings.TrimRight(c.cfg.RawBase, "/"), c.cfg.Owner, c.cfg.Repo, c.cfg.Branch, slug)
}

func (c *Catalog) get(ctx context.Context, url string, headers map[string]string, auth bool) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &sheet.NetworkError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &sheet.NetworkError{URL: url, Err: err}
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if auth {
		if token := c.authToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &sheet.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &sheet.NetworkError{
			URL:    url,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status: %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetBytes+1))
	if err != nil {
		return nil, &sheet.NetworkError{URL: url, Status: resp.StatusCode, Err: err}
	}
	if len(body) > maxSheetBytes {
		return nil, &sheet.NetworkError{
			URL:    url,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("response exceeds %d bytes", maxSheetBytes),
		}
	}
	return body, nil
}

func (c *Catalog) authToken(ctx context.Context) string {
	c.tokenOnce.Do(func() {
		c.token = c.cfg.Token
		if c.token != "" || c.tokenFn == nil {
			return
		}
		token, err := c.tokenFn()
		if err != nil {
			c.log.Debug(ctx, "no token from keyring", "error", err)
			return
		}
		c.token = token
	})
	return c.token
}
