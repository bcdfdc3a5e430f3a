package directory

import (
	"sort"

	"listings-bknd/internal/models"
)

// Rank orders listings in place: rating descending, absent ratings last,
// ties broken by id ascending so repeated calls agree.
func Rank(listings []models.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		ri, rj := listings[i].RatingValue(), listings[j].RatingValue()
		if ri != rj {
			return ri > rj
		}
		return listings[i].ID < listings[j].ID
	})
}

// Select applies the predicate to rows returned by a store: inactive rows
// and rows outside the city/region/featured filter are dropped, the rest is
// ranked and truncated to the limit. It never trusts the store to have
// filtered correctly.
func (p Policy) Select(rows []models.Listing, pred Predicate) []models.Listing {
	out := make([]models.Listing, 0, len(rows))
	for i := range rows {
		l := &rows[i]
		if !l.Active {
			continue
		}
		if pred.City != "" && l.City != pred.City {
			continue
		}
		if pred.Region != "" && normalizeName(l.Region) != pred.Region {
			continue
		}
		if pred.Featured && !p.IsFeatured(l) {
			continue
		}
		out = append(out, *l)
	}

	Rank(out)

	if pred.Limit > 0 && len(out) > pred.Limit {
		out = out[:pred.Limit]
	}
	return out
}
