package main

import (
	"fmt"
	"strings"
	"time"

	"listings-bknd/internal/directory"
	"listings-bknd/internal/models"

	"github.com/google/uuid"
)

// fixture is one entry of the seed file. Active defaults to true.
type fixture struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Region      string   `json:"region"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"review_count"`
	Images      []string `json:"images"`
	Active      *bool    `json:"active"`
}

// reservedSlugs are path segments routed before /listings/{slug}. A listing
// slug equal to one of them could never be fetched.
var reservedSlugs = []string{"count"}

// buildListings validates fixtures and turns them into listings with ids and
// slugs that do not collide with taken or with each other.
func buildListings(fixtures []fixture, taken []string, now time.Time) ([]models.Listing, error) {
	slugger := directory.NewSlugger(taken...)
	for _, slug := range reservedSlugs {
		slugger.Reserve(slug)
	}
	listings := make([]models.Listing, 0, len(fixtures))

	for i, fx := range fixtures {
		name := strings.TrimSpace(fx.Name)
		if name == "" {
			return nil, fmt.Errorf("fixture %d: name is required", i)
		}
		if fx.Rating != nil && (*fx.Rating < 0 || *fx.Rating > 5) {
			return nil, fmt.Errorf("fixture %d (%s): rating %.2f out of range 0-5", i, name, *fx.Rating)
		}
		if fx.ReviewCount != nil && *fx.ReviewCount < 0 {
			return nil, fmt.Errorf("fixture %d (%s): negative review count", i, name)
		}

		id := strings.TrimSpace(fx.ID)
		if id == "" {
			id = uuid.NewString()
		}
		active := true
		if fx.Active != nil {
			active = *fx.Active
		}
		images := fx.Images
		if images == nil {
			images = []string{}
		}

		listings = append(listings, models.Listing{
			ID:          id,
			Name:        name,
			Slug:        slugger.Claim(directory.Slugify(name + " " + fx.City)),
			City:        strings.TrimSpace(fx.City),
			Region:      strings.TrimSpace(fx.Region),
			Address:     fx.Address,
			Phone:       fx.Phone,
			Website:     fx.Website,
			Rating:      fx.Rating,
			ReviewCount: fx.ReviewCount,
			Images:      images,
			Active:      active,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return listings, nil
}
