package directory

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlug is used for non-empty names that contain no letters or digits.
const fallbackSlug = "unnamed"

// Slugify lower-cases s, strips diacritics, collapses every run of
// non-alphanumeric characters into one hyphen and trims hyphens at both ends.
func Slugify(s string) string {
	// transform chains keep internal buffers, so one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	gap := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	return b.String()
}

// Slugger hands out slugs that are unique within its scope.
// Not safe for concurrent use.
type Slugger struct {
	taken map[string]struct{}
}

func NewSlugger(taken ...string) *Slugger {
	s := &Slugger{taken: make(map[string]struct{}, len(taken))}
	for _, slug := range taken {
		s.Reserve(slug)
	}
	return s
}

func (s *Slugger) Reserve(slug string) {
	s.taken[slug] = struct{}{}
}

func (s *Slugger) Taken(slug string) bool {
	_, ok := s.taken[slug]
	return ok
}

// Claim returns base if free, otherwise the first free "base-N" for N >= 2.
// The returned slug is reserved.
func (s *Slugger) Claim(base string) string {
	if base == "" {
		base = fallbackSlug
	}
	if !s.Taken(base) {
		s.Reserve(base)
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !s.Taken(candidate) {
			s.Reserve(candidate)
			return candidate
		}
	}
}

type slugCollision struct {
	slug     string
	names    []string
	assigned []string
}

// assignSlugs gives every distinct name a unique slug. Names that fold to the
// same slug are sorted; the first keeps the natural slug and the others get
// numeric suffixes. Natural slugs are reserved up front so a suffix never
// steals the slug of another name.
func assignSlugs(names []string) (map[string]string, []slugCollision) {
	groups := make(map[string][]string)
	for _, name := range names {
		base := Slugify(name)
		if base == "" {
			base = fallbackSlug
		}
		groups[base] = append(groups[base], name)
	}

	bases := make([]string, 0, len(groups))
	for base := range groups {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	slugger := NewSlugger(bases...)
	assigned := make(map[string]string, len(names))
	var collisions []slugCollision

	for _, base := range bases {
		group := groups[base]
		sort.Strings(group)
		assigned[group[0]] = base
		if len(group) == 1 {
			continue
		}

		c := slugCollision{slug: base, names: group, assigned: []string{base}}
		for _, name := range group[1:] {
			slug := slugger.Claim(base)
			assigned[name] = slug
			c.assigned = append(c.assigned, slug)
		}
		collisions = append(collisions, c)
	}

	return assigned, collisions
}
