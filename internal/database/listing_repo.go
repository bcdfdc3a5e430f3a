package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listings-bknd/internal/directory"
	"listings-bknd/internal/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// ListingRepo reads listings through bun. It satisfies services.ListingStore.
type ListingRepo struct {
	db *bun.DB
}

func NewListingRepo(db *bun.DB) *ListingRepo {
	return &ListingRepo{db: db}
}

// CreateSchema creates the listings table and its read indexes if missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*models.Listing)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create listings table: %w", err)
	}

	indexes := map[string][]string{
		"listings_active_city_idx":   {"active", "city"},
		"listings_active_region_idx": {"active", "region"},
	}
	for name, columns := range indexes {
		_, err := db.NewCreateIndex().
			Model((*models.Listing)(nil)).
			Index(name).
			Column(columns...).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}
	}
	return nil
}

// Query returns active listings matching the predicate, best rated first.
func (r *ListingRepo) Query(ctx context.Context, pred directory.Predicate) ([]models.Listing, error) {
	var listings []models.Listing

	q := r.db.NewSelect().Model(&listings)
	r.applyFilters(q, pred)

	q = q.OrderExpr("rating DESC NULLS LAST").OrderExpr(idOrderExpr(r.db.Dialect().Name()))
	if limit := pred.StoreLimit(); limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	for i := range listings {
		normalizeImages(&listings[i])
	}
	return listings, nil
}

// Count counts active listings matching the predicate, ignoring its limit
// and region.
func (r *ListingRepo) Count(ctx context.Context, pred directory.Predicate) (int, error) {
	q := r.db.NewSelect().Model((*models.Listing)(nil))
	r.applyFilters(q, pred)

	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

// FindBySlug returns the active listing with the given slug.
func (r *ListingRepo) FindBySlug(ctx context.Context, slug string) (*models.Listing, error) {
	listing := new(models.Listing)
	err := r.db.NewSelect().
		Model(listing).
		Where("slug = ?", slug).
		Where("active = ?", true).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("listing %q: %w", slug, directory.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}
	normalizeImages(listing)
	return listing, nil
}

// Slugs returns every slug in the table, active or not.
func (r *ListingRepo) Slugs(ctx context.Context) ([]string, error) {
	var slugs []string
	err := r.db.NewSelect().
		Model((*models.Listing)(nil)).
		Column("slug").
		Scan(ctx, &slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	return slugs, nil
}

// InsertListings bulk inserts listings in one statement.
func (r *ListingRepo) InsertListings(ctx context.Context, listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}
	if _, err := r.db.NewInsert().Model(&listings).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert listings: %w", err)
	}
	return nil
}

// DeleteAll removes every listing. Used by the seeder's --truncate.
func (r *ListingRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.NewDelete().
		Model((*models.Listing)(nil)).
		Where("1 = 1").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete listings: %w", err)
	}
	return nil
}

// applyFilters applies filter parameters to a query
func (r *ListingRepo) applyFilters(q *bun.SelectQuery, pred directory.Predicate) {
	// active = true is not optional for public reads
	q.Where("active = ?", true)

	if pred.City != "" {
		q.Where("city = ?", pred.City)
	}

	if pred.Featured {
		q.Where("website IS NOT NULL").
			Where("TRIM(website) <> ''").
			Where("rating >= ?", pred.MinRating).
			Where("review_count >= ?", pred.MinReviews)
	}
}

// idOrderExpr is the id tie-break. It must compare bytes, the way
// directory.Rank does, or a pushed-down limit keeps different rows.
// Postgres sorts text by the database collation unless told otherwise.
func idOrderExpr(name dialect.Name) string {
	if name == dialect.PG {
		return `id COLLATE "C" ASC`
	}
	return "id ASC"
}

// normalizeImages turns a NULL images column into an empty list.
func normalizeImages(l *models.Listing) {
	if l.Images == nil {
		l.Images = []string{}
	}
}
