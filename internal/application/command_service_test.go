package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

func TestStoreCommandServiceCloseOpen(t *testing.T) {
	repo := newFakeRepository(sampleStore("1", "A", "NY"))
	svc := NewStoreCommandService(repo)

	view, err := svc.Close(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, view.Closed)

	view, err = svc.Open(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, view.Closed)
}

func TestStoreCommandServiceCloseMissing(t *testing.T) {
	svc := NewStoreCommandService(newFakeRepository())

	_, err := svc.Close(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStoreCommandServiceUpdate(t *testing.T) {
	repo := newFakeRepository(sampleStore("1", "A", "NY"))
	svc := NewStoreCommandService(repo)

	name := "Renamed"
	website := "https://renamed.example.com"
	view, err := svc.Update(context.Background(), "1", domain.StoreUpdate{Name: &name, Website: &website})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.Name)
	assert.Equal(t, website, view.Website)

	require.NotNil(t, repo.lastUpdate)
	assert.Nil(t, repo.lastUpdate.URL)
}
