package directory

import (
	"strconv"
	"strings"

	"listings-bknd/internal/models"
)

// Predicate is the read filter handed to the record store.
// ActiveOnly is set by every constructor in this package and stores must honour it.
type Predicate struct {
	ActiveOnly bool
	City       string
	// Region is matched against whitespace-trimmed region names by Select
	// only. Stores do not filter on it.
	Region     string
	Featured   bool
	MinRating  float64
	MinReviews int
	Limit      int
}

// ActivePredicate matches every active listing, unbounded.
func ActivePredicate() Predicate {
	return Predicate{ActiveOnly: true}
}

// StoreLimit is the limit a store may push down into its query.
// Featured and region reads are left unbounded because the image check and
// the region match run here, after the read.
func (p Predicate) StoreLimit() int {
	if p.Featured || p.Region != "" {
		return 0
	}
	return p.Limit
}

// Resolve turns raw query parameters into a predicate. Malformed input is
// normalized to defaults, never rejected.
func (p Policy) Resolve(params models.ListingQueryParams) Predicate {
	p = p.normalized()

	pred := Predicate{
		ActiveOnly: true,
		City:       strings.TrimSpace(params.City),
		Featured:   parseFlag(params.Featured),
		Limit:      p.ResolveLimit(params.Limit),
	}
	if pred.Featured {
		pred.MinRating = p.MinRating
		pred.MinReviews = p.MinReviews
	}
	return pred
}

// ResolveLimit parses a limit permissively: unparseable or non-positive
// values yield the default, large ones are clamped to the maximum.
func (p Policy) ResolveLimit(raw string) int {
	p = p.normalized()

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return p.DefaultLimit
	}
	if n > p.MaxLimit {
		return p.MaxLimit
	}
	return n
}

func parseFlag(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return v
}
