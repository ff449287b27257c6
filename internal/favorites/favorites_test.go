package favorites_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/cheats/internal/constants"
	"github.com/Paintersrp/cheats/internal/favorites"
	"github.com/Paintersrp/cheats/internal/kv"
	"github.com/Paintersrp/cheats/internal/sheet"
)

var docker = sheet.Key{Provenance: sheet.ProvenanceDefault, Slug: "docker"}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	store := favorites.NewStore(kv.Open(kv.NewMemoryStore(), nil))

	on, err := store.Toggle(ctx, docker, "docker")
	require.NoError(t, err)
	assert.True(t, on)

	fav, err := store.IsFavorite(ctx, docker)
	require.NoError(t, err)
	assert.True(t, fav)

	custom := sheet.Key{Provenance: sheet.ProvenanceCustom, Slug: "docker"}
	fav, err = store.IsFavorite(ctx, custom)
	require.NoError(t, err)
	assert.False(t, fav, "identity includes provenance")

	on, err = store.Toggle(ctx, docker, "docker")
	require.NoError(t, err)
	assert.False(t, on)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := favorites.NewStore(kv.Open(kv.NewMemoryStore(), nil))

	_, err := store.Toggle(ctx, docker, "docker")
	require.NoError(t, err)

	removed, err := store.Remove(ctx, docker)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove(ctx, docker)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWireFormatAndBadRecords(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	require.NoError(t, mem.Set(ctx, constants.KeyFavorites, `[
		{"type":"default","slug":"docker","title":"docker"},
		{"type":"remote-ish","slug":"x","title":"x"},
		{"type":"custom","slug":"custom-gone","title":"Deleted sheet"}
	]`))
	store := favorites.NewStore(kv.Open(mem, nil))

	set, err := store.Set(ctx)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set[docker])
	assert.True(t, set[sheet.Key{Provenance: sheet.ProvenanceCustom, Slug: "custom-gone"}])
}
