package directory

import "listings-bknd/internal/models"

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func listing(id, city, region string, rating float64) models.Listing {
	return models.Listing{
		ID:     id,
		Name:   "Listing " + id,
		Slug:   "listing-" + id,
		City:   city,
		Region: region,
		Rating: floatPtr(rating),
		Active: true,
	}
}

func featuredListing(id string, rating float64, reviews int) models.Listing {
	l := listing(id, "Leeds", "Yorkshire", rating)
	l.Website = strPtr("https://example.com/" + id)
	l.Images = []string{"https://cdn.example.com/" + id + ".jpg"}
	l.ReviewCount = intPtr(reviews)
	return l
}

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}
