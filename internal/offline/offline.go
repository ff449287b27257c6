// Package offline persists raw remote sheet content for use without network
// access and decides when it should be refreshed.
package offline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/logging"
	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/sheet"
)

// Source is what a bulk download reads from.
type Source interface {
	ListSlugs(ctx context.Context) ([]string, remote.Source)
	Fetch(ctx context.Context, slug string) (string, error)
}

// Summary reports the outcome of a bulk download.
type Summary struct {
	Succeeded int
	Failed    int
	Listing   remote.Source
}

type Stats struct {
	Count     int
	TotalSize int
	Oldest    time.Time
	Newest    time.Time
}

type Cache struct {
	entries *kv.Collection[sheet.OfflineEntry]
	prefs   *prefs.Store
	log     logging.Logger
	workers int
}

type Option func(*Cache)

func WithLogger(log logging.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// WithWorkers bounds the number of concurrent fetches in DownloadAll.
func WithWorkers(n int) Option {
	return func(c *Cache) { c.workers = max(n, 1) }
}

func NewCache(db *kv.DB, prefs *prefs.Store, opts ...Option) *Cache {
	c := &Cache{
		entries: kv.NewCollection[sheet.OfflineEntry](db, constants.KeyOfflineSheets),
		prefs:   prefs,
		log:     logging.Discard(),
		workers: 4,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "offline")
	return c
}

func (c *Cache) List(ctx context.Context) ([]sheet.OfflineEntry, error) {
	return c.entries.Load(ctx)
}

func (c *Cache) Get(ctx context.Context, slug string) (sheet.OfflineEntry, bool, error) {
	entries, err := c.entries.Load(ctx)
	if err != nil {
		return sheet.OfflineEntry{}, false, err
	}
	i := slices.IndexFunc(entries, func(e sheet.OfflineEntry) bool { return e.Slug == slug })
	if i < 0 {
		return sheet.OfflineEntry{}, false, nil
	}
	return entries[i], true, nil
}

// Save upserts the content of slug.
func (c *Cache) Save(ctx context.Context, slug, content string) (sheet.OfflineEntry, error) {
	entry := c.entry(slug, content)
	if err := c.upsert(ctx, []sheet.OfflineEntry{entry}); err != nil {
		return sheet.OfflineEntry{}, err
	}
	return entry, nil
}

// SaveMany upserts every slug/content pair in one collection write.
func (c *Cache) SaveMany(ctx context.Context, contents map[string]string, order []string) error {
	batch := make([]sheet.OfflineEntry, 0, len(contents))
	for _, slug := range order {
		if content, ok := contents[slug]; ok {
			batch = append(batch, c.entry(slug, content))
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return c.upsert(ctx, batch)
}

func (c *Cache) entry(slug, content string) sheet.OfflineEntry {
	return sheet.OfflineEntry{
		Slug:        slug,
		Content:     content,
		LastUpdated: sheet.NewMillis(c.prefs.Now()),
		Size:        len(content),
	}
}

func (c *Cache) upsert(ctx context.Context, batch []sheet.OfflineEntry) error {
	err := c.entries.Mutate(ctx, func(entries []sheet.OfflineEntry) ([]sheet.OfflineEntry, error) {
		index := make(map[string]int, len(entries))
		for i, e := range entries {
			index[e.Slug] = i
		}
		for _, e := range batch {
			if i, ok := index[e.Slug]; ok {
				entries[i] = e
				continue
			}
			index[e.Slug] = len(entries)
			entries = append(entries, e)
		}
		return entries, nil
	})
	if err != nil {
		return fmt.Errorf("failed to save offline content: %w", err)
	}
	return nil
}

// Clear removes every cached entry.
func (c *Cache) Clear(ctx context.Context) error {
	return c.entries.Mutate(ctx, func([]sheet.OfflineEntry) ([]sheet.OfflineEntry, error) {
		return []sheet.OfflineEntry{}, nil
	})
}

func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	entries, err := c.entries.Load(ctx)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, e := range entries {
		st.Count++
		st.TotalSize += e.Size
		if st.Oldest.IsZero() || e.LastUpdated.Before(st.Oldest) {
			st.Oldest = e.LastUpdated.Time
		}
		if e.LastUpdated.After(st.Newest) {
			st.Newest = e.LastUpdated.Time
		}
	}
	return st, nil
}

// DownloadAll fetches every listed sheet and stores the successes in a
// single write. Per-sheet failures are counted, not returned. It fails with
// sheet.ErrOfflineDisabled before any I/O when offline storage is off.
func (c *Cache) DownloadAll(ctx context.Context, src Source) (Summary, error) {
	p, err := c.prefs.Get(ctx)
	if err != nil {
		return Summary{}, err
	}
	if !p.EnableOfflineStorage {
		return Summary{}, sheet.ErrOfflineDisabled
	}

	slugs, listing := src.ListSlugs(ctx)
	contents := make([]string, len(slugs))
	fetched := make([]bool, len(slugs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, slug := range slugs {
		g.Go(func() error {
			content, err := src.Fetch(gctx, slug)
			if err != nil {
				c.log.Debug(gctx, "download failed", "slug", slug, "error", err)
				return nil
			}
			contents[i] = content
			fetched[i] = true
			return nil
		})
	}
	_ = g.Wait()

	summary := Summary{Listing: listing}
	batch := make(map[string]string, len(slugs))
	for i, slug := range slugs {
		if !fetched[i] {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		batch[slug] = contents[i]
	}

	if err := c.SaveMany(ctx, batch, slugs); err != nil {
		return summary, err
	}

	// A sample listing means GitHub was unreachable. Leave the check due so
	// the next run retries.
	if listing == remote.SourceSample {
		c.log.Warn(ctx, "listing unavailable, update check not recorded")
		return summary, nil
	}

	if err := c.prefs.MarkChecked(ctx, c.prefs.Now()); err != nil {
		return summary, fmt.Errorf("failed to record update check: %w", err)
	}

	c.log.Info(ctx, "offline download finished",
		"succeeded", summary.Succeeded, "failed", summary.Failed, "listing", listing)
	return summary, nil
}

// AutoUpdate runs DownloadAll when the preferences say an update is due.
// ran is false when nothing was attempted.
func (c *Cache) AutoUpdate(ctx context.Context, src Source) (summary Summary, ran bool, err error) {
	p, err := c.prefs.Get(ctx)
	if err != nil {
		return Summary{}, false, err
	}
	if !p.EnableOfflineStorage || !prefs.IsUpdateDue(p, c.prefs.Now()) {
		return Summary{}, false, nil
	}

	summary, err = c.DownloadAll(ctx, src)
	return summary, true, err
}
