package handlers

import (
	"net/http"

	"listings-bknd/internal/models"
	"listings-bknd/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListingHandler struct {
	service *services.ListingService
	logr    *zap.Logger
}

func NewListingHandler(svc *services.ListingService, logr *zap.Logger) *ListingHandler {
	return &ListingHandler{service: svc, logr: logr}
}

// QueryListings handles GET /api/v1/listings?city=&featured=&limit=
func (h *ListingHandler) QueryListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := parseListingParams(r)

	listings, err := h.service.QueryListings(ctx, params)
	if err != nil {
		writeError(w, h.logr, err, "failed to retrieve listings",
			zap.String("city", params.City),
			zap.String("featured", params.Featured),
			zap.String("limit", params.Limit))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
	})
}

// CountListings handles GET /api/v1/listings/count
func (h *ListingHandler) CountListings(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountListings(r.Context())
	if err != nil {
		writeError(w, h.logr, err, "failed to count listings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}

// GetListing handles GET /api/v1/listings/{slug}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	listing, err := h.service.GetListing(r.Context(), slug)
	if err != nil {
		writeError(w, h.logr, err, "failed to retrieve listing", zap.String("slug", slug))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"listing": listing,
	})
}

// GetStats handles GET /api/v1/stats
func (h *ListingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, h.logr, err, "failed to retrieve statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func parseListingParams(r *http.Request) models.ListingQueryParams {
	q := r.URL.Query()
	return models.ListingQueryParams{
		City:     q.Get("city"),
		Featured: q.Get("featured"),
		Limit:    q.Get("limit"),
	}
}
