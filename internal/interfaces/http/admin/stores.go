package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/domain"
	"github.com/retailatlas/store-locator/api/internal/interfaces/http/common"
)

const requestTimeout = 5 * time.Second

// importTimeout bounds the whole fetch-parse-insert run.
const importTimeout = 2 * time.Minute

func (h *Handler) storeCloseHandler() http.HandlerFunc {
	return h.lifecycleHandler(true)
}

func (h *Handler) storeOpenHandler() http.HandlerFunc {
	return h.lifecycleHandler(false)
}

func (h *Handler) lifecycleHandler(close bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		id, ok := storeIDParam(w, r)
		if !ok {
			return
		}

		var (
			store *domain.StoreView
			err   error
		)
		if close {
			store, err = h.storeCommands.Close(ctx, id)
		} else {
			store, err = h.storeCommands.Open(ctx, id)
		}
		if err != nil {
			if common.StatusForError(err) == http.StatusInternalServerError {
				h.logger.Error("store lifecycle change failed", zap.String("id", id), zap.Bool("close", close), zap.Error(err))
			}
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, buildAdminStoreResponse(*store))
	}
}

func (h *Handler) storeUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		id, ok := storeIDParam(w, r)
		if !ok {
			return
		}

		var req storeUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "request body is not valid JSON"})
			return
		}

		update := req.toDomain()
		if update.Empty() {
			common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "update carries no fields"})
			return
		}

		store, err := h.storeCommands.Update(ctx, id, update)
		if err != nil {
			if common.StatusForError(err) == http.StatusInternalServerError {
				h.logger.Error("store update failed", zap.String("id", id), zap.Error(err))
			}
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, buildAdminStoreResponse(*store))
	}
}

func (h *Handler) storeImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), importTimeout)
		defer cancel()

		var req storeImportRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "request body is not valid JSON"})
				return
			}
		}

		count, err := h.importer.ImportFromCSV(ctx, req.SourceURI)
		if err != nil {
			if common.StatusForError(err) == http.StatusInternalServerError {
				h.logger.Error("store import failed", zap.Error(err))
			}
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, storeImportResponse{Count: count})
	}
}

func storeIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "store id is required"})
		return "", false
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "store id is malformed"})
		return "", false
	}
	return id, true
}
