// Package public exposes the read-side store endpoints.
package public

import (
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"github.com/retailatlas/store-locator/api/internal/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger       *zap.Logger
	storeQueries application.StoreQueryService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger       *zap.Logger
	StoreQueries application.StoreQueryService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		storeQueries: cfg.StoreQueries,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stores", h.storeListHandler())
	r.Post("/stores/query", h.storeQueryHandler())
	r.Get("/stores/{id}", h.storeDetailHandler())
	r.Get("/stores/{id}/nearby", h.storeNearbyHandler())
}
