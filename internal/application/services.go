// Package application exposes the use cases of the store locator and owns
// the repository port implemented by the storage layer.
package application

import (
	"context"

	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/query"
)

// StoreRepository is the storage port. Implementations execute query plans
// against the document store.
type StoreRepository interface {
	Find(ctx context.Context, plan query.Plan, paging query.Paging) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	SetClosed(ctx context.Context, id string, closed bool) (*domain.Store, error)
	ApplyUpdate(ctx context.Context, id string, update domain.StoreUpdate) (*domain.Store, error)
	InsertMany(ctx context.Context, stores []domain.Store) (int, error)
	Count(ctx context.Context) (int64, error)
}

// StoreQueryService serves the read side: filtered listing, detail lookup
// and nearby search.
type StoreQueryService interface {
	List(ctx context.Context, filter *query.StoreFilter, page, limit int, includeClosed bool) ([]domain.StoreView, error)
	Get(ctx context.Context, id string) (*domain.StoreView, error)
	Nearby(ctx context.Context, storeID string, radiusKm float64, includeClosed bool) ([]domain.StoreView, error)
}

// StoreCommandService serves the open/close/update mutations.
type StoreCommandService interface {
	Close(ctx context.Context, id string) (*domain.StoreView, error)
	Open(ctx context.Context, id string) (*domain.StoreView, error)
	Update(ctx context.Context, id string, update domain.StoreUpdate) (*domain.StoreView, error)
}

// ImportService performs the one-shot bulk load from the CSV feed.
type ImportService interface {
	ImportFromCSV(ctx context.Context, sourceURI string) (int, error)
}
