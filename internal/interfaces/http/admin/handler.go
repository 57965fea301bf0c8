// Package admin exposes the mutation endpoints: store lifecycle changes and
// the one-shot feed import. All routes sit behind the JWT middleware.
package admin

import (
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"

	"github.com/retailatlas/store-locator/api/internal/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger        *zap.Logger
	storeCommands application.StoreCommandService
	importer      application.ImportService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger        *zap.Logger
	StoreCommands application.StoreCommandService
	Importer      application.ImportService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		storeCommands: cfg.StoreCommands,
		importer:      cfg.Importer,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/stores/{id}/close", h.storeCloseHandler())
	r.Post("/stores/{id}/open", h.storeOpenHandler())
	r.Patch("/stores/{id}", h.storeUpdateHandler())
	r.Post("/stores/import", h.storeImportHandler())
}
