package directory

import (
	"sort"
	"strings"

	"listings-bknd/internal/models"
)

const (
	ViewPopular      = "popular"
	ViewAlphabetical = "alpha"
)

// Aggregation is the region/city count table built from one snapshot of
// listings. It is never cached here.
type Aggregation struct {
	// Regions is kept in alphabetical order.
	Regions []models.RegionAggregate
	// Total counts every active listing, independently of Regions.
	Total int
	// Unassigned counts active listings without a region.
	Unassigned int
	Conflicts  []models.SlugConflict
}

// Aggregate groups active listings by region and city. Inactive listings are
// ignored; listings without a region only contribute to Total and Unassigned.
// Slug collisions are disambiguated with numeric suffixes and reported in
// Conflicts; counts are never merged.
func Aggregate(listings []models.Listing) Aggregation {
	var agg Aggregation

	for i := range listings {
		if listings[i].Active {
			agg.Total++
		}
	}

	regionCounts := make(map[string]int)
	cityCounts := make(map[string]map[string]int)
	for i := range listings {
		l := &listings[i]
		if !l.Active {
			continue
		}
		region := normalizeName(l.Region)
		if region == "" {
			agg.Unassigned++
			continue
		}
		regionCounts[region]++

		city := normalizeName(l.City)
		if city == "" {
			continue
		}
		if cityCounts[region] == nil {
			cityCounts[region] = make(map[string]int)
		}
		cityCounts[region][city]++
	}

	names := make([]string, 0, len(regionCounts))
	for name := range regionCounts {
		names = append(names, name)
	}
	regionSlugs, collisions := assignSlugs(names)
	agg.Conflicts = append(agg.Conflicts, toConflicts("region", "", collisions)...)

	agg.Regions = make([]models.RegionAggregate, 0, len(names))
	for _, name := range names {
		cities, cityConflicts := aggregateCities(name, cityCounts[name])
		agg.Conflicts = append(agg.Conflicts, cityConflicts...)
		agg.Regions = append(agg.Regions, models.RegionAggregate{
			Name:   name,
			Count:  regionCounts[name],
			Slug:   regionSlugs[name],
			Cities: cities,
		})
	}
	sortAlphabetical(agg.Regions)

	return agg
}

func aggregateCities(region string, counts map[string]int) ([]models.CityAggregate, []models.SlugConflict) {
	if len(counts) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slugs, collisions := assignSlugs(names)

	cities := make([]models.CityAggregate, 0, len(names))
	for _, name := range names {
		cities = append(cities, models.CityAggregate{Name: name, Count: counts[name], Slug: slugs[name]})
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Count != cities[j].Count {
			return cities[i].Count > cities[j].Count
		}
		return lessName(cities[i].Name, cities[j].Name)
	})

	return cities, toConflicts("city", region, collisions)
}

// Regional is the sum of per-region counts.
func (a Aggregation) Regional() int {
	n := 0
	for _, r := range a.Regions {
		n += r.Count
	}
	return n
}

// Consistent reports whether regional plus unassigned counts add up to Total.
func (a Aggregation) Consistent() bool {
	return a.Regional()+a.Unassigned == a.Total
}

// Alphabetical returns a copy of the regions ordered by name.
func (a Aggregation) Alphabetical() []models.RegionAggregate {
	out := make([]models.RegionAggregate, len(a.Regions))
	copy(out, a.Regions)
	sortAlphabetical(out)
	return out
}

// Popular returns a copy of the regions ordered by count descending,
// ties by name.
func (a Aggregation) Popular() []models.RegionAggregate {
	out := make([]models.RegionAggregate, len(a.Regions))
	copy(out, a.Regions)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return lessName(out[i].Name, out[j].Name)
	})
	return out
}

// View returns the regions in the named order; unknown views fall back to popular.
func (a Aggregation) View(view string) []models.RegionAggregate {
	if strings.EqualFold(strings.TrimSpace(view), ViewAlphabetical) {
		return a.Alphabetical()
	}
	return a.Popular()
}

// Find looks a region up by slug.
func (a Aggregation) Find(slug string) (models.RegionAggregate, bool) {
	for _, r := range a.Regions {
		if r.Slug == slug {
			return r, true
		}
	}
	return models.RegionAggregate{}, false
}

func toConflicts(scope, region string, collisions []slugCollision) []models.SlugConflict {
	if len(collisions) == 0 {
		return nil
	}
	out := make([]models.SlugConflict, 0, len(collisions))
	for _, c := range collisions {
		out = append(out, models.SlugConflict{
			Scope:    scope,
			Region:   region,
			Slug:     c.slug,
			Names:    c.names,
			Assigned: c.assigned,
		})
	}
	return out
}

func sortAlphabetical(regions []models.RegionAggregate) {
	sort.SliceStable(regions, func(i, j int) bool {
		return lessName(regions[i].Name, regions[j].Name)
	})
}

// lessName compares case-insensitively, falling back to byte order.
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

func normalizeName(s string) string {
	return strings.TrimSpace(s)
}
