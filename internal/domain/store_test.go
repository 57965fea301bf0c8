package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreViewExpandsState(t *testing.T) {
	store := Store{
		ID:   "abc",
		Name: "Riverside Outfitters",
		Address: Address{
			Street:  "1 Main St",
			City:    "Richmond",
			State:   "VA",
			Zip:     "23220",
			Country: "US",
		},
		OpenHours: []OpenHour{{Day: Monday, Start: 700, End: 1900}},
	}

	view, err := store.View()
	require.NoError(t, err)
	assert.Equal(t, "Virginia", view.Address.State.Name)
	assert.Equal(t, "VA", view.Address.State.Abbreviation)
	assert.Equal(t, store.OpenHours, view.OpenHours)
}

func TestStoreViewUnknownState(t *testing.T) {
	// Ingestion stores the state column as given, so an invalid code only
	// surfaces here, at display time.
	store := Store{Name: "x", Address: Address{State: "Virginia"}}

	_, err := store.View()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownState))
}

func TestIsDay(t *testing.T) {
	for _, d := range Days {
		assert.True(t, IsDay(d))
	}
	assert.False(t, IsDay("Monday"))
	assert.False(t, IsDay("someday"))
}

func TestStoreUpdateEmpty(t *testing.T) {
	assert.True(t, StoreUpdate{}.Empty())

	name := "renamed"
	assert.False(t, StoreUpdate{Name: &name}.Empty())
}
