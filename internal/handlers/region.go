package handlers

import (
	"net/http"

	"listings-bknd/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RegionHandler struct {
	service *services.ListingService
	logr    *zap.Logger
}

func NewRegionHandler(svc *services.ListingService, logr *zap.Logger) *RegionHandler {
	return &RegionHandler{service: svc, logr: logr}
}

// GetRegions handles GET /api/v1/regions?view=popular|alpha
// Popular (count descending) is the default view.
func (h *RegionHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")

	agg, err := h.service.Aggregate(r.Context())
	if err != nil {
		writeError(w, h.logr, err, "failed to retrieve regions", zap.String("view", view))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"regions": agg.View(view),
	})
}

// GetRegion handles GET /api/v1/regions/{slug}
func (h *RegionHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	agg, err := h.service.Aggregate(r.Context())
	if err != nil {
		writeError(w, h.logr, err, "failed to retrieve region", zap.String("slug", slug))
		return
	}

	region, ok := agg.Find(slug)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "region not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"region": region,
	})
}

// GetRegionListings handles GET /api/v1/regions/{slug}/listings?city=&featured=&limit=
func (h *RegionHandler) GetRegionListings(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	params := parseListingParams(r)

	region, listings, err := h.service.RegionListings(r.Context(), slug, params)
	if err != nil {
		writeError(w, h.logr, err, "failed to retrieve region listings", zap.String("slug", slug))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"region":   region,
		"listings": listings,
	})
}
