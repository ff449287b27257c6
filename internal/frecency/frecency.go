// Package frecency tracks how often and how recently sheets are opened.
package frecency

import (
	"context"
	"time"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/sheet"
)

type Usage struct {
	Count       int          `json:"count"`
	LastVisited sheet.Millis `json:"lastVisited"`
}

const day = 24 * time.Hour

// Recency buckets, newest first. Visits older than the last bucket keep a
// small residual weight.
var buckets = []struct {
	within time.Duration
	weight float64
}{
	{4 * day, 100},
	{14 * day, 70},
	{31 * day, 50},
	{90 * day, 30},
}

const residualWeight = 10

// Score is count times the weight of the recency bucket of the last visit.
func Score(u Usage, now time.Time) float64 {
	if u.Count <= 0 {
		return 0
	}
	age := now.Sub(u.LastVisited.Time)
	for _, b := range buckets {
		if age <= b.within {
			return float64(u.Count) * b.weight
		}
	}
	return float64(u.Count) * residualWeight
}

type Tracker struct {
	usage *kv.Value[map[string]Usage]
	now   func() time.Time
}

func NewTracker(db *kv.DB) *Tracker {
	return &Tracker{
		usage: kv.NewValue[map[string]Usage](db, constants.KeyUsage),
		now:   time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Visit records one open of key.
func (t *Tracker) Visit(ctx context.Context, key sheet.Key) error {
	return t.usage.Update(ctx, func(usage map[string]Usage, ok bool) (map[string]Usage, error) {
		if usage == nil {
			usage = make(map[string]Usage)
		}
		u := usage[key.String()]
		u.Count++
		u.LastVisited = sheet.NewMillis(t.now())
		usage[key.String()] = u
		return usage, nil
	})
}

// Forget drops the history of key.
func (t *Tracker) Forget(ctx context.Context, key sheet.Key) error {
	return t.usage.Update(ctx, func(usage map[string]Usage, ok bool) (map[string]Usage, error) {
		delete(usage, key.String())
		if usage == nil {
			usage = map[string]Usage{}
		}
		return usage, nil
	})
}

// Scores returns the current score of every visited key, indexed by
// sheet.Key.String().
func (t *Tracker) Scores(ctx context.Context) (map[string]float64, error) {
	usage, _, err := t.usage.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := t.now()
	scores := make(map[string]float64, len(usage))
	for key, u := range usage {
		if s := Score(u, now); s > 0 {
			scores[key] = s
		}
	}
	return scores, nil
}
