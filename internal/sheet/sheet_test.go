package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillisWireFormat(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	sheet := CustomCheatsheet{
		ID:        "custom-1",
		Title:     "Git",
		Content:   "# Git",
		CreatedAt: NewMillis(ts),
		UpdatedAt: NewMillis(ts),
	}

	raw, err := json.Marshal(sheet)
	require.NoError(t, err)
	assert.Contains(t, string(raw), fmt.Sprintf(`"createdAt":%d`, ts.UnixMilli()))

	var decoded CustomCheatsheet
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.CreatedAt.Equal(ts))
}

func TestMillisRejectsStrings(t *testing.T) {
	var m Millis
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &m))
}

func TestParseFilterType(t *testing.T) {
	for in, want := range map[string]FilterType{
		"":        FilterAll,
		"all":     FilterAll,
		"Custom":  FilterCustom,
		"default": FilterDefault,
	} {
		got, err := ParseFilterType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFilterType("remote-only")
	assert.Error(t, err)
}

func TestFilterIncludes(t *testing.T) {
	assert.True(t, FilterAll.Includes(ProvenanceCustom))
	assert.True(t, FilterAll.Includes(ProvenanceDefault))
	assert.True(t, FilterCustom.Includes(ProvenanceCustom))
	assert.False(t, FilterCustom.Includes(ProvenanceDefault))
	assert.False(t, FilterDefault.Includes(ProvenanceCustom))
}

func TestRefIdentity(t *testing.T) {
	custom := CustomRef{Sheet: CustomCheatsheet{ID: "custom-1", Title: "Git Notes"}}
	remote := DefaultRef{Name: "git"}

	assert.Equal(t, Key{ProvenanceCustom, "custom-1"}, KeyOf(custom))
	assert.Equal(t, Key{ProvenanceDefault, "git"}, KeyOf(remote))
	assert.Equal(t, "Git Notes", custom.Title())
	assert.Equal(t, "default:git", KeyOf(remote).String())
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("create: %w", &ValidationError{Field: "title", Message: "must not be empty"})
	assert.True(t, IsValidation(err))
	assert.Equal(t, "create: invalid title: must not be empty", err.Error())

	cause := errors.New("dial tcp: timeout")
	netErr := &NetworkError{URL: "https://example.com", Err: cause}
	assert.ErrorIs(t, netErr, cause)
	assert.Contains(t, (&NetworkError{URL: "u", Status: 404}).Error(), "404")
}
