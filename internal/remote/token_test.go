package remote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/Paintersrp/cheats/internal/remote"
	"github.com/Paintersrp/cheats/internal/sheet"
)

func TestTokenStore(t *testing.T) {
	keyring.MockInit()
	store := remote.NewTokenStore()

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Set("  ghp_secret  "))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	err = store.Set(" ")
	assert.True(t, sheet.IsValidation(err))
}
