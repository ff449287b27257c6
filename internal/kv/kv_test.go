package kv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/cheats/internal/logging"
)

type record struct {
	ID    string `json:"id"    validate:"required"`
	Title string `json:"title" validate:"required"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "draft:new:title")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "draft:new:title", "Git"))
	v, ok, err := store.Get(ctx, "draft:new:title")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Git", v)

	require.NoError(t, store.Set(ctx, "draft:new:title", "Docker"))
	v, _, _ = store.Get(ctx, "draft:new:title")
	assert.Equal(t, "Docker", v)

	require.NoError(t, store.Remove(ctx, "draft:new:title"))
	require.NoError(t, store.Remove(ctx, "draft:new:title"), "removing an absent key is not an error")
	_, ok, _ = store.Get(ctx, "draft:new:title")
	assert.False(t, ok)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files are left behind")
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
}

func TestCollectionSkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	db := Open(NewMemoryStore(), logging.New(&buf, "warn"))

	raw := `[
		{"id":"a","title":"Alpha"},
		{"id":"b"},
		{"id":"c","title":42},
		"junk",
		{"id":"d","title":"Delta"}
	]`
	require.NoError(t, db.Set(ctx, "records", raw))

	items, err := NewCollection[record](db, "records").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{"a", "Alpha"}, {"d", "Delta"}}, items)
	assert.Contains(t, buf.String(), "skipped=3")
}

func TestCollectionCorruptValueLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	db := Open(NewMemoryStore(), logging.New(&buf, "warn"))
	require.NoError(t, db.Set(ctx, "records", "{not json"))

	items, err := NewCollection[record](db, "records").Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Contains(t, buf.String(), "discarding unreadable collection")
}

func TestCollectionMutateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	db := Open(NewMemoryStore(), nil)
	c := NewCollection[record](db, "records")

	require.NoError(t, c.Mutate(ctx, func(items []record) ([]record, error) {
		return append(items, record{"a", "Alpha"}), nil
	}))

	err := c.Mutate(ctx, func(items []record) ([]record, error) {
		return nil, fmt.Errorf("boom")
	})
	require.Error(t, err)

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCollectionConcurrentMutationsAreSerialized(t *testing.T) {
	ctx := context.Background()
	db := Open(NewMemoryStore(), nil)
	c := NewCollection[record](db, "records")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := c.Mutate(ctx, func(items []record) ([]record, error) {
				return append(items, record{fmt.Sprint(i), "t"}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	items, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
}

func TestValueUpdate(t *testing.T) {
	ctx := context.Background()
	db := Open(NewMemoryStore(), nil)
	v := NewValue[record](db, "single")

	_, ok, err := v.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, v.Update(ctx, func(cur record, ok bool) (record, error) {
		assert.False(t, ok)
		return record{"a", "Alpha"}, nil
	}))

	got, ok, err := v.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alpha", got.Title)

	require.NoError(t, db.Set(ctx, "single", `{"id":"a"}`))
	_, ok, err = v.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "records failing validation are treated as absent")

	require.NoError(t, v.Remove(ctx))
	_, ok, _ = db.Get(ctx, "single")
	assert.False(t, ok)
}
