// Package catalog merges remote, custom, offline and favorite data into one
// list and resolves the content behind any entry.
package catalog

import (
	"context"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Paintersrp/cheats/internal/cache"
	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/favorites"
	"github.com/Paintersrp/cheats/internal/fold"
	"github.com/Paintersrp/cheats/internal/frecency"
	"github.com/Paintersrp/cheats/internal/logging"
	"github.com/Paintersrp/cheats/internal/offline"
	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/sheet"
)

const defaultMemoBytes = 8 << 20

// Remote is the subset of remote.Catalog the merger uses.
type Remote interface {
	ListSlugs(ctx context.Context) ([]string, remote.Source)
	FetchRawContent(ctx context.Context, slug string) remote.Result
	URLFor(slug string) string
}

// Stores groups the local stores the merger reads and writes.
type Stores struct {
	Custom    *custom.Store
	Offline   *offline.Cache
	Favorites *favorites.Store
	Usage     *frecency.Tracker
	Prefs     *prefs.Store
}

// Entry is one row of the unified list.
type Entry struct {
	Ref        sheet.Ref
	IsOffline  bool
	IsFavorite bool
	Score      float64
}

func (e Entry) Key() sheet.Key {
	return sheet.KeyOf(e.Ref)
}

func (e Entry) Title() string {
	return e.Ref.Title()
}

func (e Entry) Provenance() sheet.Provenance {
	return e.Ref.Provenance()
}

type Merger struct {
	remote Remote
	stores Stores
	memo   *cache.LRUCache[string, Content]
	log    logging.Logger
}

type Option func(*Merger)

func WithLogger(log logging.Logger) Option {
	return func(m *Merger) { m.log = log }
}

func New(r Remote, stores Stores, opts ...Option) *Merger {
	memo, _ := cache.New[string, Content](defaultMemoBytes, contentSize)
	m := &Merger{
		remote: r,
		stores: stores,
		memo:   memo,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("component", "catalog")
	return m
}

// URLFor is the public page of a remote slug.
func (m *Merger) URLFor(slug string) string {
	return m.remote.URLFor(slug)
}

// UnifiedList returns custom and remote sheets as one ordered list. Visited
// sheets come first by frecency score; the rest are ordered favorites
// first, then custom before default, then by title.
func (m *Merger) UnifiedList(ctx context.Context) ([]Entry, remote.Source, error) {
	var (
		customs []sheet.CustomCheatsheet
		slugs   []string
		listing remote.Source
		cached  []sheet.OfflineEntry
		favs    map[sheet.Key]bool
		scores  map[string]float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customs, err = m.stores.Custom.List(gctx)
		return err
	})
	g.Go(func() error {
		slugs, listing = m.remote.ListSlugs(gctx)
		return nil
	})
	g.Go(func() (err error) {
		cached, err = m.stores.Offline.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		favs, err = m.stores.Favorites.Set(gctx)
		return err
	})
	g.Go(func() (err error) {
		scores, err = m.stores.Usage.Scores(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, listing, err
	}

	slugs, err := m.withCached(ctx, slugs, listing, cached)
	if err != nil {
		return nil, listing, err
	}

	offlineSlugs := make(map[string]bool, len(cached))
	for _, e := range cached {
		offlineSlugs[e.Slug] = true
	}

	entries := make([]Entry, 0, len(customs)+len(slugs))
	for _, sh := range customs {
		entries = append(entries, Entry{Ref: sheet.CustomRef{Sheet: sh}})
	}
	for _, slug := range slugs {
		entries = append(entries, Entry{
			Ref:       sheet.DefaultRef{Name: slug},
			IsOffline: offlineSlugs[slug],
		})
	}
	for i := range entries {
		key := entries[i].Key()
		entries[i].IsFavorite = favs[key]
		entries[i].Score = scores[key.String()]
	}

	Sort(entries)
	return entries, listing, nil
}

// withCached appends the offline copies missing from a sample listing, so
// sheets saved for offline use stay reachable while the network is down.
// Nothing is added when offline storage is disabled, since the fallback
// chain would not serve them.
func (m *Merger) withCached(ctx context.Context, slugs []string, listing remote.Source, cached []sheet.OfflineEntry) ([]string, error) {
	if listing != remote.SourceSample || len(cached) == 0 {
		return slugs, nil
	}

	p, err := m.stores.Prefs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !p.EnableOfflineStorage {
		return slugs, nil
	}

	listed := make(map[string]bool, len(slugs)+len(cached))
	for _, slug := range slugs {
		listed[slug] = true
	}
	out := slices.Clone(slugs)
	for _, e := range cached {
		if !listed[e.Slug] {
			listed[e.Slug] = true
			out = append(out, e.Slug)
		}
	}
	return out, nil
}

// Sort orders entries in place: score descending, favorites first, custom
// before default, then case-insensitive title.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		if ap, bp := a.Provenance(), b.Provenance(); ap != bp {
			return ap == sheet.ProvenanceCustom
		}
		return fold.String(a.Title()) < fold.String(b.Title())
	})
}

// Filter keeps the entries whose provenance passes f.
func Filter(entries []Entry, f sheet.FilterType) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Includes(e.Provenance()) {
			out = append(out, e)
		}
	}
	return out
}

// Suggest returns up to limit entries whose titles fuzzily match query.
func Suggest(entries []Entry, query string, limit int) []Entry {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title()
	}

	var out []Entry
	for _, i := range fold.Rank(query, titles, limit) {
		out = append(out, entries[i])
	}
	return out
}
