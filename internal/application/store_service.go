package application

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/query"
)

// storeQueryService is the concrete implementation of StoreQueryService.
type storeQueryService struct {
	repo StoreRepository
}

// NewStoreQueryService creates a new store query service.
func NewStoreQueryService(repo StoreRepository) StoreQueryService {
	return &storeQueryService{repo: repo}
}

func (s *storeQueryService) List(ctx context.Context, filter *query.StoreFilter, page, limit int, includeClosed bool) ([]domain.StoreView, error) {
	paging, err := query.NormalizePaging(page, limit)
	if err != nil {
		return nil, err
	}
	plan, err := query.Translate(filter, includeClosed)
	if err != nil {
		return nil, err
	}

	stores, err := s.repo.Find(ctx, plan, paging)
	if err != nil {
		return nil, eris.Wrap(err, "store list")
	}
	return buildViews(stores)
}

func (s *storeQueryService) Get(ctx context.Context, id string) (*domain.StoreView, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := store.View()
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *storeQueryService) Nearby(ctx context.Context, storeID string, radiusKm float64, includeClosed bool) ([]domain.StoreView, error) {
	origin, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	plan, err := query.BuildNearby(&origin.Location, radiusKm, includeClosed)
	if err != nil {
		return nil, err
	}

	stores, err := s.repo.Find(ctx, plan, query.Paging{Page: query.DefaultPage, Limit: query.DefaultLimit})
	if err != nil {
		return nil, eris.Wrap(err, "nearby stores")
	}
	return buildViews(stores)
}

func buildViews(stores []domain.Store) ([]domain.StoreView, error) {
	views := make([]domain.StoreView, 0, len(stores))
	for _, store := range stores {
		view, err := store.View()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
