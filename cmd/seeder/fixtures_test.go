package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixtures = `[
  {"id": "fixed-1", "name": "The Old Bakery", "city": "Leeds", "region": "Yorkshire", "rating": 4.7, "review_count": 31,
   "website": "https://oldbakery.example", "images": ["https://cdn.example/bakery.jpg"]},
  {"name": "The Old Bakery", "city": "Leeds", "region": "Yorkshire"},
  {"name": "Harbour Café", "city": "Dover", "region": "Kent", "active": false}
]`

func TestBuildListings(t *testing.T) {
	var fixtures []fixture
	require.NoError(t, json.Unmarshal([]byte(sampleFixtures), &fixtures))

	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	listings, err := buildListings(fixtures, []string{"harbour-cafe-dover"}, now)
	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, "fixed-1", listings[0].ID)
	assert.Equal(t, "the-old-bakery-leeds", listings[0].Slug)
	assert.True(t, listings[0].Active)
	assert.Equal(t, now, listings[0].CreatedAt)

	_, err = uuid.Parse(listings[1].ID)
	assert.NoError(t, err, "missing ids are generated")
	assert.Equal(t, "the-old-bakery-leeds-2", listings[1].Slug)
	assert.Equal(t, []string{}, listings[1].Images)

	assert.Equal(t, "harbour-cafe-dover-2", listings[2].Slug)
	assert.False(t, listings[2].Active)
}

func TestBuildListingsSkipsRoutedSlugs(t *testing.T) {
	taken := []string{"the-old-bakery-leeds"}
	listings, err := buildListings([]fixture{{Name: "Count"}, {Name: "Count"}}, taken, time.Now())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "count-2", listings[0].Slug)
	assert.Equal(t, "count-3", listings[1].Slug)
	assert.Equal(t, []string{"the-old-bakery-leeds"}, taken)
}

func TestBuildListingsRejectsInvalid(t *testing.T) {
	bad := 5.5
	negative := -1

	_, err := buildListings([]fixture{{Name: "  "}}, nil, time.Now())
	assert.Error(t, err)

	_, err = buildListings([]fixture{{Name: "A", Rating: &bad}}, nil, time.Now())
	assert.Error(t, err)

	_, err = buildListings([]fixture{{Name: "A", ReviewCount: &negative}}, nil, time.Now())
	assert.Error(t, err)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	f := cmd.Flags().Lookup("file")
	require.NotNil(t, f)
	assert.Equal(t, "listings.json", f.DefValue)
	assert.Equal(t, "f", f.Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("truncate"))
}
