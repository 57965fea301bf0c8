package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

func TestBuildNearby(t *testing.T) {
	origin := &domain.Coordinates{Longitude: -73.99, Latitude: 40.73}

	plan, err := BuildNearby(origin, 5, false)
	require.NoError(t, err)
	require.NotNil(t, plan.Near)
	assert.Equal(t, *origin, plan.Near.Center)
	assert.Equal(t, float64(5000), plan.Near.MaxDistanceMeters)
	assert.True(t, plan.ExcludeClosed)
	assert.False(t, plan.MatchNone)
}

func TestBuildNearbyIncludeClosed(t *testing.T) {
	plan, err := BuildNearby(&domain.Coordinates{}, 1, true)
	require.NoError(t, err)
	assert.False(t, plan.ExcludeClosed)
}

func TestBuildNearbyZeroRadius(t *testing.T) {
	// Radius zero is valid and matches only coincident points.
	plan, err := BuildNearby(&domain.Coordinates{}, 0, false)
	require.NoError(t, err)
	assert.Equal(t, float64(0), plan.Near.MaxDistanceMeters)
}

func TestBuildNearbyRadiusOutOfRange(t *testing.T) {
	_, err := BuildNearby(&domain.Coordinates{}, 100001, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = BuildNearby(&domain.Coordinates{}, -1, false)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = BuildNearby(&domain.Coordinates{}, 100000, false)
	assert.NoError(t, err)
}

func TestBuildNearbyNoOrigin(t *testing.T) {
	// No coordinates to measure from: empty result set, not an error.
	plan, err := BuildNearby(nil, 5, false)
	require.NoError(t, err)
	assert.True(t, plan.MatchNone)
	assert.Nil(t, plan.Near)
}
