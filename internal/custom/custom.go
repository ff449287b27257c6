// Package custom manages user-authored cheatsheets.
package custom

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/fold"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/sheet"
)

const idPrefix = "custom-"

// Input holds the user-editable fields of a sheet.
type Input struct {
	Title       string
	Content     string
	Tags        []string
	Description string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &sheet.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &sheet.ValidationError{Field: "content", Message: "must not be empty"}
	}
	return nil
}

// Match is a search hit and the field that produced it.
type Match struct {
	Sheet sheet.CustomCheatsheet
	Type  sheet.MatchType
}

type Store struct {
	sheets *kv.Collection[sheet.CustomCheatsheet]
	now    func() time.Time
	newID  func() string
}

func NewStore(db *kv.DB) *Store {
	return &Store{
		sheets: kv.NewCollection[sheet.CustomCheatsheet](db, constants.KeyCustomSheets),
		now:    time.Now,
		newID:  func() string { return idPrefix + uuid.NewString() },
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// List returns the stored sheets in creation order. Malformed records are
// skipped.
func (s *Store) List(ctx context.Context) ([]sheet.CustomCheatsheet, error) {
	return s.sheets.Load(ctx)
}

func (s *Store) Get(ctx context.Context, id string) (sheet.CustomCheatsheet, bool, error) {
	sheets, err := s.sheets.Load(ctx)
	if err != nil {
		return sheet.CustomCheatsheet{}, false, err
	}
	for _, sh := range sheets {
		if sh.ID == id {
			return sh, true, nil
		}
	}
	return sheet.CustomCheatsheet{}, false, nil
}

// Create validates in and appends a new sheet with a fresh id.
func (s *Store) Create(ctx context.Context, in Input) (sheet.CustomCheatsheet, error) {
	if err := in.validate(); err != nil {
		return sheet.CustomCheatsheet{}, err
	}

	now := sheet.NewMillis(s.now())
	created := sheet.CustomCheatsheet{
		ID:          s.newID(),
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        normalizeTags(in.Tags),
		Description: strings.TrimSpace(in.Description),
	}

	err := s.sheets.Mutate(ctx, func(sheets []sheet.CustomCheatsheet) ([]sheet.CustomCheatsheet, error) {
		return append(sheets, created), nil
	})
	if err != nil {
		return sheet.CustomCheatsheet{}, fmt.Errorf("failed to save cheatsheet: %w", err)
	}

	return created, nil
}

// Update replaces the editable fields of the sheet with id. It returns
// sheet.ErrNotFound, and writes nothing, when no such sheet exists.
func (s *Store) Update(ctx context.Context, id string, in Input) (sheet.CustomCheatsheet, error) {
	if err := in.validate(); err != nil {
		return sheet.CustomCheatsheet{}, err
	}

	var updated sheet.CustomCheatsheet
	err := s.sheets.Mutate(ctx, func(sheets []sheet.CustomCheatsheet) ([]sheet.CustomCheatsheet, error) {
		i := slices.IndexFunc(sheets, func(sh sheet.CustomCheatsheet) bool { return sh.ID == id })
		if i < 0 {
			return nil, sheet.ErrNotFound
		}

		sheets[i].Title = strings.TrimSpace(in.Title)
		sheets[i].Content = in.Content
		sheets[i].Tags = normalizeTags(in.Tags)
		sheets[i].Description = strings.TrimSpace(in.Description)
		sheets[i].UpdatedAt = sheet.NewMillis(s.now())
		updated = sheets[i]
		return sheets, nil
	})
	if err != nil {
		return sheet.CustomCheatsheet{}, err
	}

	return updated, nil
}

// Delete removes the sheet with id and reports whether one was removed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.sheets.Mutate(ctx, func(sheets []sheet.CustomCheatsheet) ([]sheet.CustomCheatsheet, error) {
		kept := slices.DeleteFunc(sheets, func(sh sheet.CustomCheatsheet) bool { return sh.ID == id })
		if len(kept) == len(sheets) {
			return nil, sheet.ErrNotFound
		}
		removed = true
		return kept, nil
	})
	if err != nil && !errors.Is(err, sheet.ErrNotFound) {
		return false, err
	}
	return removed, nil
}

// Search returns the sheets matching query in store order.
func (s *Store) Search(ctx context.Context, query string) ([]Match, error) {
	sheets, err := s.sheets.Load(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, sh := range sheets {
		if mt, ok := MatchSheet(sh, query); ok {
			matches = append(matches, Match{Sheet: sh, Type: mt})
		}
	}
	return matches, nil
}

// MatchSheet classifies why sh matches query, checking title, content, tags
// and description in that order.
func MatchSheet(sh sheet.CustomCheatsheet, query string) (sheet.MatchType, bool) {
	switch {
	case fold.Contains(sh.Title, query):
		return sheet.MatchTitle, true
	case fold.Contains(sh.Content, query):
		return sheet.MatchContent, true
	case slices.ContainsFunc(sh.Tags, func(tag string) bool { return fold.Contains(tag, query) }):
		return sheet.MatchTag, true
	case fold.Contains(sh.Description, query):
		return sheet.MatchDescription, true
	default:
		return "", false
	}
}

// ParseTags splits a comma separated tag list.
func ParseTags(raw string) []string {
	return normalizeTags(strings.Split(raw, ","))
}

// normalizeTags trims tags and drops empties and duplicates, keeping the
// first spelling of each.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := fold.String(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
