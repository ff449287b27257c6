package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/cheats/internal/config"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/sheet"
)

const treePath = "/repos/rstacruz/cheatsheets/git/trees/master"

func remoteConfig(url string) config.RemoteConfig {
	cfg := config.Default.Remote
	cfg.APIBase = url
	cfg.RawBase = url
	cfg.RequestsPerSecond = 0
	return cfg
}

// deadServer returns a URL that refuses connections.
func deadServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

type offlineStub map[string]sheet.OfflineEntry

func (s offlineStub) Get(_ context.Context, slug string) (sheet.OfflineEntry, bool, error) {
	entry, ok := s[slug]
	return entry, ok, nil
}

func prefsStore(t *testing.T, offline bool) *prefs.Store {
	t.Helper()
	store := prefs.NewStore(kv.Open(kv.NewMemoryStore(), nil))
	p := prefs.Defaults(time.Now())
	p.EnableOfflineStorage = offline
	require.NoError(t, store.Set(context.Background(), p))
	return store
}

func TestListSlugsFiltersTree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, treePath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sha":"abc","tree":[
			{"path":"python.md","type":"blob"},
			{"path":"README.md","type":"blob"},
			{"path":"docs","type":"tree"}
		]}`))
	}))
	defer srv.Close()

	slugs, source := remote.New(remoteConfig(srv.URL)).ListSlugs(context.Background())

	assert.Equal(t, []string{"python"}, slugs)
	assert.Equal(t, remote.SourceRemote, source)
}

func TestListSlugsExcludesAdminFilesByPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tree":[
			{"path":"CONTRIBUTING.md","type":"blob"},
			{"path":"index.md","type":"blob"},
			{"path":"index@2016.md","type":"blob"},
			{"path":"bash.md","type":"blob"},
			{"path":"_layouts/default.html","type":"blob"},
			{"path":"vim.md","type":"blob"}
		]}`))
	}))
	defer srv.Close()

	slugs, _ := remote.New(remoteConfig(srv.URL)).ListSlugs(context.Background())
	assert.Equal(t, []string{"bash", "vim"}, slugs)
}

func TestListSlugsFallsBackToSamples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	slugs, source := remote.New(remoteConfig(srv.URL)).ListSlugs(context.Background())

	assert.Equal(t, remote.SourceSample, source)
	assert.Equal(t, []string{"javascript", "python", "git"}, slugs)
}

func TestListSlugsTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := remoteConfig(srv.URL)
	cfg.ListTimeout = 50 * time.Millisecond

	start := time.Now()
	_, source := remote.New(cfg).ListSlugs(context.Background())

	assert.Equal(t, remote.SourceSample, source)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestListSlugsSendsToken(t *testing.T) {
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"tree":[]}`))
	}))
	defer srv.Close()

	catalog := remote.New(remoteConfig(srv.URL), remote.WithTokenSource(func() (string, error) {
		return "ghp_keyring", nil
	}))
	catalog.ListSlugs(context.Background())

	assert.Equal(t, "Bearer ghp_keyring", auth.Load())
}

func TestFetchRawContentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rstacruz/cheatsheets/master/python.md", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("# Python\n"))
	}))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	cfg.Token = "ghp_config"
	res := remote.New(cfg).FetchRawContent(context.Background(), "python")

	assert.Equal(t, sheet.StatusSuccess, res.Status)
	assert.Equal(t, sheet.ReasonNone, res.Reason)
	assert.Equal(t, "# Python\n", res.Content)
	assert.NoError(t, res.Err)
}

func TestFetchReturnsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := remote.New(remoteConfig(srv.URL)).Fetch(context.Background(), "nope")

	var netErr *sheet.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusNotFound, netErr.Status)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 4<<20+1)))
	}))
	defer srv.Close()

	catalog := remote.New(
		remoteConfig(srv.URL),
		remote.WithOffline(offlineStub{"git": {Slug: "git", Content: "cached"}}, prefsStore(t, true)),
	)

	_, err := catalog.Fetch(context.Background(), "git")
	var netErr *sheet.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusOK, netErr.Status)

	res := catalog.FetchRawContent(context.Background(), "git")
	assert.Equal(t, "cached", res.Content)
	assert.Equal(t, sheet.ReasonOfflineCache, res.Reason)
}

func TestFetchRawContentFallsBackToSampleWhenOfflineDisabled(t *testing.T) {
	catalog := remote.New(
		remoteConfig(deadServer(t)),
		remote.WithOffline(offlineStub{"python": {Slug: "python", Content: "cached"}}, prefsStore(t, false)),
	)

	res := catalog.FetchRawContent(context.Background(), "python")

	sample, ok := remote.Sample("python")
	require.True(t, ok)
	assert.Equal(t, sample, res.Content)
	assert.Equal(t, sheet.StatusFallback, res.Status)
	assert.Equal(t, sheet.ReasonSampleData, res.Reason)
	assert.Error(t, res.Err)
}

func TestFetchRawContentPrefersOfflineCache(t *testing.T) {
	catalog := remote.New(
		remoteConfig(deadServer(t)),
		remote.WithOffline(offlineStub{"python": {Slug: "python", Content: "cached"}}, prefsStore(t, true)),
	)

	res := catalog.FetchRawContent(context.Background(), "python")

	assert.Equal(t, "cached", res.Content)
	assert.Equal(t, sheet.ReasonOfflineCache, res.Reason)
	assert.Equal(t, "Using cached copy", res.Reason.Message())
}

func TestFetchRawContentPlaceholder(t *testing.T) {
	catalog := remote.New(remoteConfig(deadServer(t)))

	res := catalog.FetchRawContent(context.Background(), "haskell")

	assert.Equal(t, "# haskell\n\nContent not available.", res.Content)
	assert.Equal(t, sheet.StatusFallback, res.Status)
	assert.Equal(t, sheet.ReasonPlaceholder, res.Reason)
}

func TestFetchRawContentUsesNetworkBeforeCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	catalog := remote.New(
		remoteConfig(srv.URL),
		remote.WithOffline(offlineStub{"git": {Slug: "git", Content: "stale"}}, prefsStore(t, true)),
	)

	res := catalog.FetchRawContent(context.Background(), "git")
	assert.Equal(t, "fresh", res.Content)
	assert.Equal(t, sheet.StatusSuccess, res.Status)
}

func TestURLFor(t *testing.T) {
	catalog := remote.New(config.Default.Remote)
	assert.Equal(t, "https://devhints.io/git", catalog.URLFor("git"))
}
