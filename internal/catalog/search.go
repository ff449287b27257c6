package catalog

import (
	"context"
	"slices"
	"strings"

	"github.com/Paintersrp/cheats/internal/custom"
	"github.com/Paintersrp/cheats/internal/fold"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/sheet"
)

// MaxResults caps search output.
const MaxResults = 10

type Result struct {
	Entry Entry
	Match sheet.MatchType
}

// Search matches query against entry titles, and against content, tags and
// description for custom sheets. Results keep list order, are unique by
// identity and capped at MaxResults. An empty query matches nothing.
func Search(entries []Entry, query string) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var results []Result
	seen := make(map[sheet.Key]bool)
	for _, e := range entries {
		if len(results) == MaxResults {
			break
		}
		mt, ok := matchRef(e.Ref, query)
		if !ok || seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		results = append(results, Result{Entry: e, Match: mt})
	}
	return results
}

func matchRef(ref sheet.Ref, query string) (sheet.MatchType, bool) {
	switch r := ref.(type) {
	case sheet.CustomRef:
		return custom.MatchSheet(r.Sheet, query)
	case sheet.DefaultRef:
		if fold.Contains(r.Name, query) {
			return sheet.MatchTitle, true
		}
		return "", false
	default:
		panic("catalog: unknown sheet ref")
	}
}

// QuickMatch picks the single best match for query. Custom sheets are tried
// first in store order, then remote sheets in listing order; the first hit
// wins.
func (m *Merger) QuickMatch(ctx context.Context, query string, f sheet.FilterType) (Result, bool, error) {
	if strings.TrimSpace(query) == "" {
		return Result{}, false, nil
	}

	if f.Includes(sheet.ProvenanceCustom) {
		sheets, err := m.stores.Custom.List(ctx)
		if err != nil {
			return Result{}, false, err
		}
		for _, sh := range sheets {
			if mt, ok := custom.MatchSheet(sh, query); ok {
				return Result{Entry: Entry{Ref: sheet.CustomRef{Sheet: sh}}, Match: mt}, true, nil
			}
		}
	}

	if f.Includes(sheet.ProvenanceDefault) {
		slugs, listing := m.remote.ListSlugs(ctx)
		var cached []sheet.OfflineEntry
		if listing == remote.SourceSample {
			var err error
			if cached, err = m.stores.Offline.List(ctx); err != nil {
				return Result{}, false, err
			}
		}
		slugs, err := m.withCached(ctx, slugs, listing, cached)
		if err != nil {
			return Result{}, false, err
		}

		for _, slug := range slugs {
			if !fold.Contains(slug, query) {
				continue
			}
			entry := Entry{Ref: sheet.DefaultRef{Name: slug}}
			entry.IsOffline = slices.ContainsFunc(cached, func(e sheet.OfflineEntry) bool { return e.Slug == slug })
			return Result{Entry: entry, Match: sheet.MatchTitle}, true, nil
		}
	}

	return Result{}, false, nil
}
