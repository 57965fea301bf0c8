package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateCatalogComplete(t *testing.T) {
	// 50 states plus the District of Columbia.
	assert.Len(t, States(), 51)
}

func TestLookupStateEveryEntry(t *testing.T) {
	for _, want := range States() {
		got, err := LookupState(want.Abbreviation)
		require.NoError(t, err, want.Abbreviation)
		assert.Equal(t, want.Name, got.Name)
	}
}

func TestLookupState(t *testing.T) {
	got, err := LookupState("NY")
	require.NoError(t, err)
	assert.Equal(t, State{Name: "New York", Abbreviation: "NY"}, got)

	got, err = LookupState(" ca ")
	require.NoError(t, err)
	assert.Equal(t, "California", got.Name)

	_, err = LookupState("ZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownState))

	_, err = LookupState("")
	assert.True(t, errors.Is(err, ErrUnknownState))
}

func TestResolveStateName(t *testing.T) {
	got, err := ResolveStateName("district of columbia")
	require.NoError(t, err)
	assert.Equal(t, "DC", got.Abbreviation)

	_, err = ResolveStateName("Atlantis")
	assert.True(t, errors.Is(err, ErrUnknownState))
}
