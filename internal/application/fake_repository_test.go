package application

import (
	"context"

	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/query"
)

// fakeRepository records the plans and mutations it receives and answers
// from canned data.
type fakeRepository struct {
	stores   []domain.Store
	byID     map[string]domain.Store
	count    int64
	err      error
	inserted []domain.Store

	lastPlan   query.Plan
	lastPaging query.Paging
	lastClosed *bool
	lastUpdate *domain.StoreUpdate
}

func newFakeRepository(stores ...domain.Store) *fakeRepository {
	byID := make(map[string]domain.Store, len(stores))
	for _, s := range stores {
		byID[s.ID] = s
	}
	return &fakeRepository{stores: stores, byID: byID, count: int64(len(stores))}
}

func (f *fakeRepository) Find(_ context.Context, plan query.Plan, paging query.Paging) ([]domain.Store, error) {
	f.lastPlan = plan
	f.lastPaging = paging
	if f.err != nil {
		return nil, f.err
	}
	if plan.MatchNone {
		return []domain.Store{}, nil
	}
	return f.stores, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*domain.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	store, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &store, nil
}

func (f *fakeRepository) SetClosed(_ context.Context, id string, closed bool) (*domain.Store, error) {
	f.lastClosed = &closed
	store, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	store.Closed = closed
	f.byID[id] = store
	return &store, nil
}

func (f *fakeRepository) ApplyUpdate(_ context.Context, id string, update domain.StoreUpdate) (*domain.Store, error) {
	f.lastUpdate = &update
	store, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Name != nil {
		store.Name = *update.Name
	}
	if update.URL != nil {
		store.URL = *update.URL
	}
	if update.Website != nil {
		store.Website = *update.Website
	}
	if update.Social != nil {
		store.Social = *update.Social
	}
	f.byID[id] = store
	return &store, nil
}

func (f *fakeRepository) InsertMany(_ context.Context, stores []domain.Store) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, stores...)
	return len(stores), nil
}

func (f *fakeRepository) Count(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}
