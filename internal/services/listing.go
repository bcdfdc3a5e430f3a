package services

import (
	"context"
	"errors"
	"fmt"

	"listings-bknd/internal/directory"
	"listings-bknd/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListingStore is the read contract of the record store.
type ListingStore interface {
	Query(ctx context.Context, pred directory.Predicate) ([]models.Listing, error)
	Count(ctx context.Context, pred directory.Predicate) (int, error)
	FindBySlug(ctx context.Context, slug string) (*models.Listing, error)
}

type ListingService struct {
	store  ListingStore
	policy directory.Policy
	logr   *zap.Logger
}

func NewListingService(store ListingStore, policy directory.Policy, logr *zap.Logger) *ListingService {
	return &ListingService{store: store, policy: policy, logr: logr}
}

// QueryListings resolves the raw parameters and returns the ranked, truncated result.
func (s *ListingService) QueryListings(ctx context.Context, params models.ListingQueryParams) ([]models.Listing, error) {
	return s.query(ctx, s.policy.Resolve(params))
}

// RegionListings returns listings of the region behind slug, filtered like QueryListings.
func (s *ListingService) RegionListings(ctx context.Context, slug string, params models.ListingQueryParams) (*models.RegionAggregate, []models.Listing, error) {
	agg, err := s.Aggregate(ctx)
	if err != nil {
		return nil, nil, err
	}
	region, ok := agg.Find(slug)
	if !ok {
		return nil, nil, fmt.Errorf("region %q: %w", slug, directory.ErrNotFound)
	}

	pred := s.policy.Resolve(params)
	pred.Region = region.Name

	listings, err := s.query(ctx, pred)
	if err != nil {
		return nil, nil, err
	}
	return &region, listings, nil
}

func (s *ListingService) query(ctx context.Context, pred directory.Predicate) ([]models.Listing, error) {
	rows, err := s.store.Query(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w: %w", directory.ErrStorageUnavailable, err)
	}
	return s.policy.Select(rows, pred), nil
}

// GetListing returns one active listing by slug.
func (s *ListingService) GetListing(ctx context.Context, slug string) (*models.Listing, error) {
	l, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find listing %q: %w: %w", slug, directory.ErrStorageUnavailable, err)
	}
	if !l.Active {
		return nil, fmt.Errorf("listing %q: %w", slug, directory.ErrNotFound)
	}
	return l, nil
}

// CountListings counts active listings.
func (s *ListingService) CountListings(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx, directory.ActivePredicate())
	if err != nil {
		return 0, fmt.Errorf("count listings: %w: %w", directory.ErrStorageUnavailable, err)
	}
	return n, nil
}

// Aggregate builds the region table from the current active set.
func (s *ListingService) Aggregate(ctx context.Context) (directory.Aggregation, error) {
	rows, err := s.store.Query(ctx, directory.ActivePredicate())
	if err != nil {
		return directory.Aggregation{}, fmt.Errorf("aggregate regions: %w: %w", directory.ErrStorageUnavailable, err)
	}

	agg := directory.Aggregate(rows)
	for _, c := range agg.Conflicts {
		s.logr.Warn("slug conflict in aggregation",
			zap.String("scope", c.Scope),
			zap.String("region", c.Region),
			zap.String("slug", c.Slug),
			zap.Strings("names", c.Names),
			zap.Strings("assigned", c.Assigned))
	}
	return agg, nil
}

// Stats cross-checks the store count against the regional breakdown. Both
// reads run concurrently; either failing fails the call.
func (s *ListingService) Stats(ctx context.Context) (*models.DirectoryStats, error) {
	var (
		total int
		agg   directory.Aggregation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.CountListings(gctx)
		total = n
		return err
	})
	g.Go(func() error {
		a, err := s.Aggregate(gctx)
		agg = a
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &models.DirectoryStats{
		Total:      total,
		Regional:   agg.Regional(),
		Unassigned: agg.Unassigned,
		Regions:    len(agg.Regions),
	}
	stats.Consistent = stats.Regional+stats.Unassigned == stats.Total
	if !stats.Consistent {
		s.logr.Warn("listing counts disagree",
			zap.Int("total", stats.Total),
			zap.Int("regional", stats.Regional),
			zap.Int("unassigned", stats.Unassigned))
	}
	return stats, nil
}
