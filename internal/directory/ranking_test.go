package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listings-bknd/internal/models"
)

func TestSelectTiedRatingsAreDeterministic(t *testing.T) {
	p := DefaultPolicy()
	pred := p.Resolve(models.ListingQueryParams{Limit: "2"})

	rows := func() []models.Listing {
		return []models.Listing{
			listing("c", "Leeds", "Yorkshire", 4.2),
			listing("b", "York", "Yorkshire", 4.9),
			listing("a", "Hull", "Yorkshire", 4.9),
		}
	}

	first := p.Select(rows(), pred)
	require.Len(t, first, 2)
	assert.Equal(t, []string{"a", "b"}, ids(first))

	for i := 0; i < 10; i++ {
		assert.Equal(t, ids(first), ids(p.Select(rows(), pred)))
	}
}

func TestSelectExcludesInactive(t *testing.T) {
	p := DefaultPolicy()
	inactive := listing("x", "Leeds", "Yorkshire", 5.0)
	inactive.Active = false

	got := p.Select([]models.Listing{inactive, listing("y", "Leeds", "Yorkshire", 3.0)}, p.Resolve(models.ListingQueryParams{}))

	assert.Equal(t, []string{"y"}, ids(got))
}

func TestSelectFeaturedExcludesIneligible(t *testing.T) {
	p := DefaultPolicy()
	noImages := featuredListing("n", 4.9, 50)
	noImages.Images = nil

	rows := []models.Listing{
		featuredListing("f1", 4.6, 12),
		featuredListing("f2", 4.8, 10),
		featuredListing("low", 4.49, 100),
		featuredListing("few", 5.0, 9),
		noImages,
	}

	got := p.Select(rows, p.Resolve(models.ListingQueryParams{Featured: "true"}))

	assert.Equal(t, []string{"f2", "f1"}, ids(got))
}

func TestSelectCityIsCaseSensitive(t *testing.T) {
	p := DefaultPolicy()
	rows := []models.Listing{
		listing("a", "Leeds", "Yorkshire", 4.0),
		listing("b", "leeds", "Yorkshire", 4.0),
	}

	got := p.Select(rows, p.Resolve(models.ListingQueryParams{City: "Leeds"}))

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestRankPutsMissingRatingsLast(t *testing.T) {
	unrated := listing("a", "Leeds", "Yorkshire", 0)
	unrated.Rating = nil
	rows := []models.Listing{unrated, listing("b", "Leeds", "Yorkshire", 0), listing("c", "Leeds", "Yorkshire", 3.5)}

	Rank(rows)

	assert.Equal(t, []string{"c", "b", "a"}, ids(rows))
}

func TestSelectRegionMatchesTrimmedNames(t *testing.T) {
	p := DefaultPolicy()
	rows := []models.Listing{
		listing("k1", "Dover", "Kent", 4.0),
		listing("k2", "Canterbury", "Kent\t", 4.5),
		listing("k3", "Margate", "\n Kent\r\n", 3.0),
		listing("e1", "Colchester", "Essex", 4.8),
		listing("k4", "Ashford", "kent", 4.9),
	}

	pred := p.Resolve(models.ListingQueryParams{})
	pred.Region = "Kent"

	assert.Zero(t, pred.StoreLimit())
	assert.Equal(t, []string{"k2", "k1", "k3"}, ids(p.Select(rows, pred)))
}

func TestSelectTieBreakIsByteOrder(t *testing.T) {
	p := DefaultPolicy()
	pred := p.Resolve(models.ListingQueryParams{Limit: "1"})

	got := p.Select([]models.Listing{
		listing("a", "Leeds", "Yorkshire", 4.9),
		listing("B", "Leeds", "Yorkshire", 4.9),
	}, pred)

	assert.Equal(t, []string{"B"}, ids(got))
}
