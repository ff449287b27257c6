package prefs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/sheet"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func withCheck(freq Frequency, auto bool, last time.Time) Preferences {
	return Preferences{
		EnableOfflineStorage: true,
		UpdateFrequency:      freq,
		LastUpdateCheck:      sheet.NewMillis(last),
		AutoUpdate:           auto,
	}
}

func TestIsUpdateDueWeeklyBoundary(t *testing.T) {
	p := withCheck(Weekly, true, epoch)

	assert.False(t, IsUpdateDue(p, epoch.Add(WeeklyInterval)))
	assert.True(t, IsUpdateDue(p, epoch.Add(WeeklyInterval+time.Millisecond)))
	assert.Equal(t, int64(7*24*60*60*1000), WeeklyInterval.Milliseconds())
}

func TestIsUpdateDueMonthlyBoundary(t *testing.T) {
	p := withCheck(Monthly, true, epoch)

	assert.False(t, IsUpdateDue(p, epoch.Add(MonthlyInterval)))
	assert.True(t, IsUpdateDue(p, epoch.Add(MonthlyInterval+time.Millisecond)))
	assert.Equal(t, int64(30*24*60*60*1000), MonthlyInterval.Milliseconds())
}

func TestIsUpdateDueNeverAndDisabled(t *testing.T) {
	far := epoch.Add(10 * 365 * 24 * time.Hour)

	assert.False(t, IsUpdateDue(withCheck(Never, true, epoch), far))
	assert.False(t, IsUpdateDue(withCheck(Never, false, epoch), far))
	assert.False(t, IsUpdateDue(withCheck(Weekly, false, epoch), far))
	assert.False(t, IsUpdateDue(withCheck(EveryUse, false, epoch), far))
}

func TestIsUpdateDueEveryUse(t *testing.T) {
	assert.True(t, IsUpdateDue(withCheck(EveryUse, true, epoch), epoch))
}

func TestGetPersistsDefaults(t *testing.T) {
	ctx := context.Background()
	db := kv.Open(kv.NewMemoryStore(), nil)
	store := NewStore(db).WithClock(func() time.Time { return epoch })

	p, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.EnableOfflineStorage)
	assert.True(t, p.AutoUpdate)
	assert.Equal(t, Weekly, p.UpdateFrequency)
	assert.True(t, p.LastUpdateCheck.Equal(epoch))

	store.WithClock(func() time.Time { return epoch.Add(time.Hour) })
	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, again.LastUpdateCheck.Equal(epoch), "defaults are only initialized once")
}

func TestSetOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.Open(kv.NewMemoryStore(), nil))

	want := withCheck(Monthly, false, epoch)
	want.EnableOfflineStorage = false
	require.NoError(t, store.Set(ctx, want))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.UpdateFrequency, got.UpdateFrequency)
	assert.False(t, got.EnableOfflineStorage)
	assert.False(t, got.AutoUpdate)

	err = store.Set(ctx, withCheck("hourly", true, epoch))
	assert.True(t, sheet.IsValidation(err))
}

func TestCorruptPreferencesFallBackToDefaults(t *testing.T) {
	ctx := context.Background()
	db := kv.Open(kv.NewMemoryStore(), nil)
	require.NoError(t, db.Set(ctx, "cheatsheet-preferences", "{{{"))

	p, err := NewStore(db).WithClock(func() time.Time { return epoch }).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Weekly, p.UpdateFrequency)
}

func TestMarkChecked(t *testing.T) {
	ctx := context.Background()
	store := NewStore(kv.Open(kv.NewMemoryStore(), nil))
	require.NoError(t, store.Set(ctx, withCheck(Monthly, true, epoch)))

	later := epoch.Add(48 * time.Hour)
	require.NoError(t, store.MarkChecked(ctx, later))

	p, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, Monthly, p.UpdateFrequency)
	assert.True(t, p.LastUpdateCheck.Equal(later))
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency("Every Use")
	require.NoError(t, err)
	assert.Equal(t, EveryUse, f)
	assert.Equal(t, "every use", f.Label())

	_, err = ParseFrequency("hourly")
	assert.Error(t, err)
}
