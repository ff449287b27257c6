// Package favorites records which sheets the user has starred. Entries are
// weak references: a favorite may outlive the sheet it names.
package favorites

import (
	"context"
	"slices"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/sheet"
)

type Store struct {
	entries *kv.Collection[sheet.FavoriteEntry]
}

func NewStore(db *kv.DB) *Store {
	return &Store{
		entries: kv.NewCollection[sheet.FavoriteEntry](db, constants.KeyFavorites),
	}
}

func (s *Store) List(ctx context.Context) ([]sheet.FavoriteEntry, error) {
	return s.entries.Load(ctx)
}

// Set returns the favorited keys for membership checks.
func (s *Store) Set(ctx context.Context) (map[sheet.Key]bool, error) {
	entries, err := s.entries.Load(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[sheet.Key]bool, len(entries))
	for _, e := range entries {
		set[e.Key()] = true
	}
	return set, nil
}

func (s *Store) IsFavorite(ctx context.Context, key sheet.Key) (bool, error) {
	set, err := s.Set(ctx)
	if err != nil {
		return false, err
	}
	return set[key], nil
}

// Toggle adds or removes the favorite for key and returns the new state.
func (s *Store) Toggle(ctx context.Context, key sheet.Key, title string) (bool, error) {
	var favorited bool
	err := s.entries.Mutate(ctx, func(entries []sheet.FavoriteEntry) ([]sheet.FavoriteEntry, error) {
		kept := slices.DeleteFunc(entries, func(e sheet.FavoriteEntry) bool { return e.Key() == key })
		if len(kept) != len(entries) {
			favorited = false
			return kept, nil
		}
		favorited = true
		return append(kept, sheet.FavoriteEntry{
			Provenance: key.Provenance,
			Slug:       key.Slug,
			Title:      title,
		}), nil
	})
	return favorited, err
}

// Remove drops the favorite for key if present.
func (s *Store) Remove(ctx context.Context, key sheet.Key) (bool, error) {
	var removed bool
	err := s.entries.Mutate(ctx, func(entries []sheet.FavoriteEntry) ([]sheet.FavoriteEntry, error) {
		kept := slices.DeleteFunc(entries, func(e sheet.FavoriteEntry) bool { return e.Key() == key })
		removed = len(kept) != len(entries)
		return kept, nil
	})
	return removed, err
}
