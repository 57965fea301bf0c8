package application

import (
	"context"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// storeCommandService is the concrete implementation of StoreCommandService.
type storeCommandService struct {
	repo StoreRepository
}

// NewStoreCommandService creates a new store command service.
func NewStoreCommandService(repo StoreRepository) StoreCommandService {
	return &storeCommandService{repo: repo}
}

func (s *storeCommandService) Close(ctx context.Context, id string) (*domain.StoreView, error) {
	return s.setClosed(ctx, id, true)
}

func (s *storeCommandService) Open(ctx context.Context, id string) (*domain.StoreView, error) {
	return s.setClosed(ctx, id, false)
}

func (s *storeCommandService) setClosed(ctx context.Context, id string, closed bool) (*domain.StoreView, error) {
	store, err := s.repo.SetClosed(ctx, id, closed)
	if err != nil {
		return nil, err
	}
	view, err := store.View()
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *storeCommandService) Update(ctx context.Context, id string, update domain.StoreUpdate) (*domain.StoreView, error) {
	store, err := s.repo.ApplyUpdate(ctx, id, update)
	if err != nil {
		return nil, err
	}
	view, err := store.View()
	if err != nil {
		return nil, err
	}
	return &view, nil
}
