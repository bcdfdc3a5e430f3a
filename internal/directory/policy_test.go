package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"listings-bknd/internal/models"
)

func TestIsFeaturedThresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *models.Listing)
		want   bool
	}{
		{name: "all criteria met", mutate: func(l *models.Listing) {}, want: true},
		{name: "rating exactly 4.5", mutate: func(l *models.Listing) { l.Rating = floatPtr(4.5) }, want: true},
		{name: "rating 4.49", mutate: func(l *models.Listing) { l.Rating = floatPtr(4.49) }, want: false},
		{name: "reviews exactly 10", mutate: func(l *models.Listing) { l.ReviewCount = intPtr(10) }, want: true},
		{name: "reviews 9", mutate: func(l *models.Listing) { l.ReviewCount = intPtr(9) }, want: false},
		{name: "rating absent", mutate: func(l *models.Listing) { l.Rating = nil }, want: false},
		{name: "reviews absent", mutate: func(l *models.Listing) { l.ReviewCount = nil }, want: false},
		{name: "website absent", mutate: func(l *models.Listing) { l.Website = nil }, want: false},
		{name: "website empty", mutate: func(l *models.Listing) { l.Website = strPtr("") }, want: false},
		{name: "website blank", mutate: func(l *models.Listing) { l.Website = strPtr("   ") }, want: false},
		{name: "no images", mutate: func(l *models.Listing) { l.Images = nil }, want: false},
		{name: "empty image list", mutate: func(l *models.Listing) { l.Images = []string{} }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := featuredListing("a", 4.8, 25)
			tt.mutate(&l)
			assert.Equal(t, tt.want, IsFeatured(&l))
		})
	}
}

func TestIsFeaturedNil(t *testing.T) {
	assert.False(t, IsFeatured(nil))
}

func TestIsFeaturedCustomThresholds(t *testing.T) {
	p := Policy{MinRating: 4.0, MinReviews: 3}
	l := featuredListing("a", 4.1, 3)

	assert.True(t, p.IsFeatured(&l))
	assert.False(t, IsFeatured(&l))
}
