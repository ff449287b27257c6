// Package prefs persists user settings for offline storage and updates.
package prefs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/sheet"
)

type Frequency string

const (
	EveryUse Frequency = "every-use"
	Weekly   Frequency = "weekly"
	Monthly  Frequency = "monthly"
	Never    Frequency = "never"
)

const (
	WeeklyInterval  = 7 * 24 * time.Hour
	MonthlyInterval = 30 * 24 * time.Hour
)

var Frequencies = []Frequency{EveryUse, Weekly, Monthly, Never}

func ParseFrequency(s string) (Frequency, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	for _, f := range Frequencies {
		if string(f) == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf(
		"invalid update frequency: %q. Valid options are every-use, weekly, monthly and never",
		s,
	)
}

// Label is the human form used in status output.
func (f Frequency) Label() string {
	return strings.ReplaceAll(string(f), "-", " ")
}

type Preferences struct {
	EnableOfflineStorage bool         `json:"enableOfflineStorage"`
	UpdateFrequency      Frequency    `json:"updateFrequency" validate:"required,oneof=every-use weekly monthly never"`
	LastUpdateCheck      sheet.Millis `json:"lastUpdateCheck"`
	AutoUpdate           bool         `json:"autoUpdate"`
}

func Defaults(now time.Time) Preferences {
	return Preferences{
		EnableOfflineStorage: true,
		UpdateFrequency:      Weekly,
		LastUpdateCheck:      sheet.NewMillis(now),
		AutoUpdate:           true,
	}
}

// IsUpdateDue decides whether cached sheets are stale. Weekly and monthly
// checks are due only once strictly more than the interval has elapsed.
func IsUpdateDue(p Preferences, now time.Time) bool {
	if !p.AutoUpdate {
		return false
	}

	var interval time.Duration
	switch p.UpdateFrequency {
	case EveryUse:
		return true
	case Weekly:
		interval = WeeklyInterval
	case Monthly:
		interval = MonthlyInterval
	default:
		return false
	}

	return now.Sub(p.LastUpdateCheck.Time) > interval
}

type Store struct {
	value *kv.Value[Preferences]
	now   func() time.Time
}

func NewStore(db *kv.DB) *Store {
	return &Store{
		value: kv.NewValue[Preferences](db, constants.KeyPreferences),
		now:   time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Get returns the stored preferences. When nothing usable is stored the
// defaults are persisted so that the update interval starts counting now.
func (s *Store) Get(ctx context.Context) (Preferences, error) {
	p, ok, err := s.value.Load(ctx)
	if err != nil {
		return Preferences{}, err
	}
	if ok {
		return p, nil
	}

	p = Defaults(s.now())
	if err := s.value.Save(ctx, p); err != nil {
		return Preferences{}, fmt.Errorf("failed to persist default preferences: %w", err)
	}
	return p, nil
}

// Set overwrites the stored preferences wholesale.
func (s *Store) Set(ctx context.Context, p Preferences) error {
	if _, err := ParseFrequency(string(p.UpdateFrequency)); err != nil {
		return &sheet.ValidationError{Field: "updateFrequency", Message: err.Error()}
	}
	return s.value.Save(ctx, p)
}

// MarkChecked records t as the last update check.
func (s *Store) MarkChecked(ctx context.Context, t time.Time) error {
	return s.value.Update(ctx, func(p Preferences, ok bool) (Preferences, error) {
		if !ok {
			p = Defaults(t)
		}
		p.LastUpdateCheck = sheet.NewMillis(t)
		return p, nil
	})
}

// Now exposes the store clock so callers share one notion of time.
func (s *Store) Now() time.Time {
	return s.now()
}
