package offline_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/offline"
	"github.com/Paintersrp/cheats/internal/prefs"
	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/sheet"
)

var epoch = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

// countingStore records how many times each key is written.
type countingStore struct {
	*kv.MemoryStore
	mu     sync.Mutex
	writes map[string]int
}

func (s *countingStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.writes[key]++
	s.mu.Unlock()
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *countingStore) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

type fakeSource struct {
	slugs    []string
	contents map[string]string
	listed   atomic.Int32
	fetched  atomic.Int32
	down     bool
}

func (f *fakeSource) ListSlugs(context.Context) ([]string, remote.Source) {
	f.listed.Add(1)
	if f.down {
		return remote.SampleSlugs(), remote.SourceSample
	}
	return f.slugs, remote.SourceRemote
}

func (f *fakeSource) Fetch(_ context.Context, slug string) (string, error) {
	f.fetched.Add(1)
	content, ok := f.contents[slug]
	if !ok {
		return "", &sheet.NetworkError{URL: slug, Status: 404}
	}
	return content, nil
}

type fixture struct {
	cache *offline.Cache
	prefs *prefs.Store
	store *countingStore
	now   *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := &countingStore{MemoryStore: kv.NewMemoryStore(), writes: map[string]int{}}
	db := kv.Open(store, nil)

	now := epoch
	p := prefs.NewStore(db).WithClock(func() time.Time { return now })
	return &fixture{
		cache: offline.NewCache(db, p, offline.WithWorkers(2)),
		prefs: p,
		store: store,
		now:   &now,
	}
}

func (f *fixture) setPrefs(t *testing.T, mutate func(*prefs.Preferences)) {
	t.Helper()
	p := prefs.Defaults(*f.now)
	mutate(&p)
	require.NoError(t, f.prefs.Set(context.Background(), p))
}

func TestSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	content := "# Vim\n\nüber :wq"
	_, err := f.cache.Save(ctx, "vim", content)
	require.NoError(t, err)

	entry, ok, err := f.cache.Get(ctx, "vim")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, content, entry.Content)
	assert.Equal(t, len(content), entry.Size)
	assert.True(t, entry.LastUpdated.Equal(epoch))

	_, ok, err = f.cache.Get(ctx, "emacs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveUpsertsInPlace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cache.Save(ctx, "a", "one")
	require.NoError(t, err)
	_, err = f.cache.Save(ctx, "b", "two")
	require.NoError(t, err)

	*f.now = epoch.Add(time.Hour)
	_, err = f.cache.Save(ctx, "a", "three!")
	require.NoError(t, err)

	entries, err := f.cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Slug)
	assert.Equal(t, "three!", entries[0].Content)
	assert.Equal(t, 6, entries[0].Size)
	assert.True(t, entries[0].LastUpdated.Equal(epoch.Add(time.Hour)))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cache.Save(ctx, "a", "one")
	require.NoError(t, err)
	require.NoError(t, f.cache.Clear(ctx))

	entries, err := f.cache.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.cache.Save(ctx, "a", "1234")
	require.NoError(t, err)
	*f.now = epoch.Add(48 * time.Hour)
	_, err = f.cache.Save(ctx, "b", "123456")
	require.NoError(t, err)

	st, err := f.cache.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 10, st.TotalSize)
	assert.True(t, st.Oldest.Equal(epoch))
	assert.True(t, st.Newest.Equal(epoch.Add(48*time.Hour)))
}

func TestDownloadAllDisabledFailsBeforeIO(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.setPrefs(t, func(p *prefs.Preferences) { p.EnableOfflineStorage = false })

	src := &fakeSource{slugs: []string{"a"}}
	_, err := f.cache.DownloadAll(ctx, src)

	assert.True(t, errors.Is(err, sheet.ErrOfflineDisabled))
	assert.Zero(t, src.listed.Load())
	assert.Zero(t, src.fetched.Load())
	assert.Zero(t, f.store.Writes(constants.KeyOfflineSheets))
}

func TestDownloadAllCountsFailuresAndWritesOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.setPrefs(t, func(p *prefs.Preferences) {})

	src := &fakeSource{
		slugs:    []string{"bash", "missing", "git", "vim"},
		contents: map[string]string{"bash": "# bash", "git": "# git", "vim": "# vim"},
	}

	*f.now = epoch.Add(10 * 24 * time.Hour)
	summary, err := f.cache.DownloadAll(ctx, src)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, remote.SourceRemote, summary.Listing)
	assert.Equal(t, int32(4), src.fetched.Load())
	assert.Equal(t, 1, f.store.Writes(constants.KeyOfflineSheets))

	entries, err := f.cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"bash", "git", "vim"}, []string{entries[0].Slug, entries[1].Slug, entries[2].Slug})

	p, err := f.prefs.Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.LastUpdateCheck.Equal(*f.now))
}

func TestDownloadAllLeavesCheckDueWhenListingFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.setPrefs(t, func(p *prefs.Preferences) { p.UpdateFrequency = prefs.Weekly })

	src := &fakeSource{down: true}

	*f.now = epoch.Add(prefs.WeeklyInterval + time.Hour)
	summary, ran, err := f.cache.AutoUpdate(ctx, src)
	require.NoError(t, err)
	require.True(t, ran)
	assert.Equal(t, remote.SourceSample, summary.Listing)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 3, summary.Failed)

	p, err := f.prefs.Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.LastUpdateCheck.Equal(epoch))
	assert.True(t, prefs.IsUpdateDue(p, *f.now))

	_, ran, err = f.cache.AutoUpdate(ctx, src)
	require.NoError(t, err)
	assert.True(t, ran, "the next run retries")
}

func TestAutoUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.setPrefs(t, func(p *prefs.Preferences) { p.UpdateFrequency = prefs.Weekly })

	src := &fakeSource{slugs: []string{"bash"}, contents: map[string]string{"bash": "# bash"}}

	*f.now = epoch.Add(prefs.WeeklyInterval)
	_, ran, err := f.cache.AutoUpdate(ctx, src)
	require.NoError(t, err)
	assert.False(t, ran, "exactly one interval is not yet due")

	*f.now = epoch.Add(prefs.WeeklyInterval + time.Millisecond)
	summary, ran, err := f.cache.AutoUpdate(ctx, src)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, summary.Succeeded)

	_, ran, err = f.cache.AutoUpdate(ctx, src)
	require.NoError(t, err)
	assert.False(t, ran, "the check time was just recorded")
}

func TestAutoUpdateSkipsWhenDisabled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.setPrefs(t, func(p *prefs.Preferences) {
		p.UpdateFrequency = prefs.EveryUse
		p.EnableOfflineStorage = false
	})

	src := &fakeSource{slugs: []string{"bash"}}
	_, ran, err := f.cache.AutoUpdate(ctx, src)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Zero(t, src.listed.Load())
}
