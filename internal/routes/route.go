package routes

import (
	"net/http"

	"listings-bknd/internal/config"
	"listings-bknd/internal/database"
	"listings-bknd/internal/directory"
	"listings-bknd/internal/handlers"
	"listings-bknd/internal/logger"
	mdlwr "listings-bknd/internal/middleware"
	"listings-bknd/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	return newRouter(database.NewListingRepo(db), cfg, logr)
}

func newRouter(store services.ListingStore, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mdlwr.RequestLogger(logr.Logger))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	// Read-only API, so only safe methods
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	policy := directory.Policy{
		DefaultLimit: cfg.DefaultLimit,
		MaxLimit:     cfg.MaxLimit,
		MinRating:    cfg.FeaturedMinRating,
		MinReviews:   cfg.FeaturedMinReviews,
	}

	listingSvc := services.NewListingService(store, policy, logr.Logger)

	listingHandler := handlers.NewListingHandler(listingSvc, logr.Logger)
	regionHandler := handlers.NewRegionHandler(listingSvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/listings", func(r chi.Router) {
			r.Get("/", listingHandler.QueryListings)
			r.Get("/count", listingHandler.CountListings)
			r.Get("/{slug}", listingHandler.GetListing)
		})

		r.Route("/regions", func(r chi.Router) {
			r.Get("/", regionHandler.GetRegions)
			r.Get("/{slug}", regionHandler.GetRegion)
			r.Get("/{slug}/listings", regionHandler.GetRegionListings)
		})

		r.Get("/stats", listingHandler.GetStats)
	})

	return r
}
