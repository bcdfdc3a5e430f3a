package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Listing is one directory entry as stored in the listings table.
// Records are written by external ingestion; this service only reads them.
type Listing struct {
	bun.BaseModel `bun:"table:listings,alias:l"`

	ID          string    `bun:"id,pk" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	City        string    `bun:"city,notnull" json:"city"`
	Region      string    `bun:"region,notnull" json:"region"` // county; empty when unknown
	Address     *string   `bun:"address" json:"address,omitempty"`
	Phone       *string   `bun:"phone" json:"phone,omitempty"`
	Website     *string   `bun:"website" json:"website,omitempty"`
	Rating      *float64  `bun:"rating" json:"rating,omitempty"`
	ReviewCount *int      `bun:"review_count" json:"review_count,omitempty"`
	Images      []string  `bun:"images,type:jsonb" json:"images"`
	Active      bool      `bun:"active,notnull" json:"active"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// RatingValue returns the rating, or -1 when it is absent.
func (l *Listing) RatingValue() float64 {
	if l.Rating == nil {
		return -1
	}
	return *l.Rating
}

// ListingQueryParams is the raw, unvalidated query of GET /listings.
type ListingQueryParams struct {
	City     string
	Featured string
	Limit    string
}

// CityAggregate is the per-city count inside a region.
type CityAggregate struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// RegionAggregate is the derived count of active listings in one region.
type RegionAggregate struct {
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Slug   string          `json:"slug"`
	Cities []CityAggregate `json:"cities,omitempty"`
}

// SlugConflict reports distinct names that folded to the same slug.
type SlugConflict struct {
	Scope    string   `json:"scope"`            // "region" or "city"
	Region   string   `json:"region,omitempty"` // parent region for city conflicts
	Slug     string   `json:"slug"`
	Names    []string `json:"names"`
	Assigned []string `json:"assigned"`
}

// DirectoryStats cross-checks the independent total against the regional breakdown.
type DirectoryStats struct {
	Total      int  `json:"total"`
	Regional   int  `json:"regional"`
	Unassigned int  `json:"unassigned"`
	Regions    int  `json:"regions"`
	Consistent bool `json:"consistent"`
}
