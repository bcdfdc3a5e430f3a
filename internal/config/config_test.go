package config

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_PORT", "LISTINGS_DEFAULT_LIMIT", "LISTINGS_MAX_LIMIT",
		"FEATURED_MIN_RATING", "FEATURED_MIN_REVIEWS", "REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8780", cfg.Port)
	assert.Equal(t, 12, cfg.DefaultLimit)
	assert.Equal(t, 100, cfg.MaxLimit)
	assert.Equal(t, 4.5, cfg.FeaturedMinRating)
	assert.Equal(t, 10, cfg.FeaturedMinReviews)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	t.Setenv("LISTINGS_DEFAULT_LIMIT", "20")
	t.Setenv("LISTINGS_MAX_LIMIT", "not-a-number")
	t.Setenv("FEATURED_MIN_RATING", "4.0")
	t.Setenv("FEATURED_MIN_REVIEWS", "-3")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, 20, cfg.DefaultLimit)
	assert.Equal(t, 100, cfg.MaxLimit)
	assert.Equal(t, 4.0, cfg.FeaturedMinRating)
	assert.Equal(t, 10, cfg.FeaturedMinReviews)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsNonPositiveMinRating(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	for _, raw := range []string{"0", "-1.5", "0.0", "NaN"} {
		buf.Reset()
		t.Setenv("FEATURED_MIN_RATING", raw)

		cfg := Load()

		assert.Equal(t, 4.5, cfg.FeaturedMinRating, raw)
		assert.Contains(t, buf.String(), "invalid float for FEATURED_MIN_RATING", raw)
	}
}
