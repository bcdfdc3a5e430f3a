// Package directory holds the listing selection and region aggregation rules.
// Everything here is a pure function of its inputs; storage lives behind the
// ListingStore interface in the services package.
package directory

import (
	"strings"

	"listings-bknd/internal/models"
)

// Policy carries the tunable limits and featured thresholds.
type Policy struct {
	DefaultLimit int
	MaxLimit     int
	MinRating    float64
	MinReviews   int
}

func DefaultPolicy() Policy {
	return Policy{
		DefaultLimit: 12,
		MaxLimit:     100,
		MinRating:    4.5,
		MinReviews:   10,
	}
}

// normalized fills zero or contradictory values from DefaultPolicy.
func (p Policy) normalized() Policy {
	def := DefaultPolicy()
	if p.DefaultLimit <= 0 {
		p.DefaultLimit = def.DefaultLimit
	}
	if p.MaxLimit <= 0 {
		p.MaxLimit = def.MaxLimit
	}
	if p.DefaultLimit > p.MaxLimit {
		p.DefaultLimit = p.MaxLimit
	}
	if p.MinRating <= 0 {
		p.MinRating = def.MinRating
	}
	if p.MinReviews <= 0 {
		p.MinReviews = def.MinReviews
	}
	return p
}

// IsFeatured reports whether a listing qualifies for promoted views.
// Absent rating or review count fails the respective threshold.
func (p Policy) IsFeatured(l *models.Listing) bool {
	if l == nil {
		return false
	}
	p = p.normalized()

	if l.Website == nil || strings.TrimSpace(*l.Website) == "" {
		return false
	}
	if len(l.Images) == 0 {
		return false
	}
	if l.Rating == nil || *l.Rating < p.MinRating {
		return false
	}
	if l.ReviewCount == nil || *l.ReviewCount < p.MinReviews {
		return false
	}
	return true
}

// IsFeatured applies the default thresholds.
func IsFeatured(l *models.Listing) bool {
	return DefaultPolicy().IsFeatured(l)
}
