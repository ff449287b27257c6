package catalog

import (
	"context"
	"fmt"

	"github.com/Paintersrp/cheats/internal/content"
	"github.com/Paintersrp/cheats/internal/sheet"
)

// Content is resolved display content plus how it was obtained.
type Content struct {
	Markdown string
	// Raw is the unprocessed remote document. Empty for custom sheets.
	Raw    string
	Status sheet.FetchStatus
	Reason sheet.FallbackReason
	Err    error
}

// Resolve returns the content behind ref. Custom sheets are read from the
// store as is, and a missing one resolves to "". Remote sheets go through
// the fetch fallback chain and the content pipeline; a network fetch is
// also written to the offline cache when offline storage is enabled.
func (m *Merger) Resolve(ctx context.Context, ref sheet.Ref) (Content, error) {
	switch r := ref.(type) {
	case sheet.CustomRef:
		return m.resolveCustom(ctx, r.Sheet.ID)
	case sheet.DefaultRef:
		return m.resolveDefault(ctx, r.Name), nil
	default:
		panic(fmt.Sprintf("catalog: unknown sheet ref %T", ref))
	}
}

func contentSize(slug string, c Content) int64 {
	return int64(len(slug) + len(c.Markdown) + len(c.Raw))
}

// ResolveContent is Resolve reduced to the display Markdown.
func (m *Merger) ResolveContent(ctx context.Context, ref sheet.Ref) (string, error) {
	c, err := m.Resolve(ctx, ref)
	return c.Markdown, err
}

// ResolveKey builds the ref for key and resolves it.
func (m *Merger) ResolveKey(ctx context.Context, key sheet.Key) (Content, error) {
	switch key.Provenance {
	case sheet.ProvenanceCustom:
		return m.resolveCustom(ctx, key.Slug)
	default:
		return m.resolveDefault(ctx, key.Slug), nil
	}
}

func (m *Merger) resolveCustom(ctx context.Context, id string) (Content, error) {
	sh, ok, err := m.stores.Custom.Get(ctx, id)
	if err != nil {
		return Content{}, err
	}
	if !ok {
		return Content{Status: sheet.StatusFailed}, nil
	}
	return Content{Markdown: sh.Content, Status: sheet.StatusSuccess}, nil
}

func (m *Merger) resolveDefault(ctx context.Context, slug string) Content {
	if c, ok := m.memo.Get(slug); ok {
		return c
	}

	res := m.remote.FetchRawContent(ctx, slug)
	out := Content{
		Markdown: content.Process(res.Content),
		Raw:      res.Content,
		Status:   res.Status,
		Reason:   res.Reason,
		Err:      res.Err,
	}

	if res.Status != sheet.StatusSuccess {
		return out
	}

	m.memo.Put(slug, out)
	m.cacheOffline(ctx, slug, res.Content)
	return out
}

// cacheOffline stores raw network content for offline use. Failures are
// logged and never reach the caller.
func (m *Merger) cacheOffline(ctx context.Context, slug, raw string) {
	p, err := m.stores.Prefs.Get(ctx)
	if err != nil {
		m.log.Warn(ctx, "could not read preferences", "error", err)
		return
	}
	if !p.EnableOfflineStorage {
		return
	}
	if _, err := m.stores.Offline.Save(ctx, slug, raw); err != nil {
		m.log.Warn(ctx, "could not cache sheet offline", "slug", slug, "error", err)
	}
}

// ToggleFavorite flips the favorite state of ref and returns the new state.
func (m *Merger) ToggleFavorite(ctx context.Context, ref sheet.Ref) (bool, error) {
	return m.stores.Favorites.Toggle(ctx, sheet.KeyOf(ref), ref.Title())
}

// RecordVisit counts an open of ref towards its frecency score.
func (m *Merger) RecordVisit(ctx context.Context, ref sheet.Ref) error {
	return m.stores.Usage.Visit(ctx, sheet.KeyOf(ref))
}

// DeleteCustom removes a custom sheet with its usage history and favorite.
func (m *Merger) DeleteCustom(ctx context.Context, id string) (bool, error) {
	removed, err := m.stores.Custom.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	key := sheet.Key{Provenance: sheet.ProvenanceCustom, Slug: id}
	if err := m.stores.Usage.Forget(ctx, key); err != nil {
		m.log.Warn(ctx, "could not clear usage history", "id", id, "error", err)
	}
	if _, err := m.stores.Favorites.Remove(ctx, key); err != nil {
		m.log.Warn(ctx, "could not clear favorite", "id", id, "error", err)
	}
	return true, nil
}
