package public

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/interfaces/http/common"
	"github.com/retailatlas/store-locator/api/internal/query"
)

const requestTimeout = 5 * time.Second

func (h *Handler) storeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		params := r.URL.Query()
		page, err := common.ParseIntParam(params.Get("page"), query.DefaultPage)
		if err != nil {
			common.WriteError(w, err)
			return
		}
		limit, err := common.ParseIntParam(params.Get("limit"), query.DefaultLimit)
		if err != nil {
			common.WriteError(w, err)
			return
		}

		filter := filterFromParams(params)
		includeClosed := common.ParseBoolParam(params.Get("include_closed"))

		stores, err := h.storeQueries.List(ctx, filter, page, limit, includeClosed)
		if err != nil {
			h.logger.Error("store list failed", zap.Error(err))
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, buildStoreListResponse(stores, page, limit))
	}
}

func (h *Handler) storeQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		var req storeQueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "request body is not valid JSON"})
			return
		}

		page := query.DefaultPage
		if req.Page != nil {
			page = *req.Page
		}
		limit := query.DefaultLimit
		if req.Limit != nil {
			limit = *req.Limit
		}

		stores, err := h.storeQueries.List(ctx, req.Filter, page, limit, req.IncludeClosed)
		if err != nil {
			h.logger.Error("store query failed", zap.Error(err))
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, buildStoreListResponse(stores, page, limit))
	}
}

func (h *Handler) storeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		id, ok := storeIDParam(w, r)
		if !ok {
			return
		}

		store, err := h.storeQueries.Get(ctx, id)
		if err != nil {
			if common.StatusForError(err) == http.StatusInternalServerError {
				h.logger.Error("store detail failed", zap.String("id", id), zap.Error(err))
			}
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, buildStoreResponse(*store))
	}
}

func (h *Handler) storeNearbyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		id, ok := storeIDParam(w, r)
		if !ok {
			return
		}

		params := r.URL.Query()
		radiusKm, err := common.ParseFloatParam(params.Get("distance_km"), query.DefaultRadiusKm)
		if err != nil {
			common.WriteError(w, err)
			return
		}
		includeClosed := common.ParseBoolParam(params.Get("include_closed"))

		stores, err := h.storeQueries.Nearby(ctx, id, radiusKm, includeClosed)
		if err != nil {
			if common.StatusForError(err) == http.StatusInternalServerError {
				h.logger.Error("nearby search failed", zap.String("id", id), zap.Error(err))
			}
			common.WriteError(w, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, buildStoreListResponse(stores, query.DefaultPage, query.DefaultLimit))
	}
}

// filterFromParams maps the flat query parameters of GET /stores onto the
// nested filter shape. Every parameter is an exact match; the full pattern
// DSL is reached through POST /stores/query.
func filterFromParams(params map[string][]string) *query.StoreFilter {
	get := func(key string) string {
		if vs := params[key]; len(vs) > 0 {
			return strings.TrimSpace(vs[0])
		}
		return ""
	}

	filter := &query.StoreFilter{}
	used := false

	if name := get("name"); name != "" {
		filter.Name = query.Equals(name)
		used = true
	}

	addr := &query.AddressFilter{}
	addrUsed := false
	if street := get("street"); street != "" {
		addr.Street = query.Equals(street)
		addrUsed = true
	}
	if city := get("city"); city != "" {
		addr.City = query.Equals(city)
		addrUsed = true
	}
	if zip := get("zip"); zip != "" {
		addr.Zip = query.Equals(zip)
		addrUsed = true
	}
	if country := get("country"); country != "" {
		addr.Country = query.Equals(country)
		addrUsed = true
	}
	state := get("state")
	stateName := get("state_name")
	if state != "" || stateName != "" {
		addr.State = &query.StateFilter{Abbreviation: state, Name: stateName}
		addrUsed = true
	}
	if addrUsed {
		filter.Address = addr
		used = true
	}

	if day := get("day"); day != "" {
		filter.OpenHours = &query.OpenHourFilter{Day: day}
		used = true
	}

	if !used {
		return nil
	}
	return filter
}

// storeIDParam validates the {id} path parameter, writing the 400 response
// itself when the id is not a well-formed object id.
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
