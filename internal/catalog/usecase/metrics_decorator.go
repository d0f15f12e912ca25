package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/metrics"
)

// designUseCaseWithMetrics decorates DesignUseCase with metrics instrumentation.
type designUseCaseWithMetrics struct {
	next    DesignUseCase
	metrics metrics.BusinessMetrics
}

// NewDesignUseCaseWithMetrics wraps a DesignUseCase with metrics recording.
func NewDesignUseCaseWithMetrics(useCase DesignUseCase, m metrics.BusinessMetrics) DesignUseCase {
	return &designUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration for a finished call.
func (d *designUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "catalog", operation, status)
	d.metrics.RecordDuration(ctx, "catalog", operation, time.Since(start), status)
}

// Create records metrics for design creation operations.
func (d *designUseCaseWithMetrics) Create(ctx context.Context, input CreateDesignInput) (*domain.Design, error) {
	start := time.Now()
	design, err := d.next.Create(ctx, input)
	d.record(ctx, "design_create", start, err)
	return design, err
}

// Get records metrics for design retrieval operations.
func (d *designUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	start := time.Now()
	design, err := d.next.Get(ctx, id)
	d.record(ctx, "design_get", start, err)
	return design, err
}

// List records metrics for catalog list operations.
func (d *designUseCaseWithMetrics) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Design, int, error) {
	start := time.Now()
	designs, total, err := d.next.List(ctx, filter, offset, limit)
	d.record(ctx, "design_list", start, err)
	return designs, total, err
}

// ListFeatured records metrics for featured list operations.
func (d *designUseCaseWithMetrics) ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error) {
	start := time.Now()
	designs, err := d.next.ListFeatured(ctx, limit)
	d.record(ctx, "design_featured", start, err)
	return designs, err
}

// Update records metrics for design update operations.
func (d *designUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateDesignInput,
) (*domain.Design, error) {
	start := time.Now()
	design, err := d.next.Update(ctx, id, input)
	d.record(ctx, "design_update", start, err)
	return design, err
}

// Delete records metrics for design deletion operations.
func (d *designUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	d.record(ctx, "design_delete", start, err)
	return err
}

// favoriteUseCaseWithMetrics decorates FavoriteUseCase with metrics instrumentation.
type favoriteUseCaseWithMetrics struct {
	next    FavoriteUseCase
	metrics metrics.BusinessMetrics
}

// NewFavoriteUseCaseWithMetrics wraps a FavoriteUseCase with metrics recording.
func NewFavoriteUseCaseWithMetrics(useCase FavoriteUseCase, m metrics.BusinessMetrics) FavoriteUseCase {
	return &favoriteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration for a finished call.
func (f *favoriteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "favorites", operation, status)
	f.metrics.RecordDuration(ctx, "favorites", operation, time.Since(start), status)
}

// Favorite records metrics for favoriting operations.
func (f *favoriteUseCaseWithMetrics) Favorite(ctx context.Context, userID, designID uuid.UUID) error {
	start := time.Now()
	err := f.next.Favorite(ctx, userID, designID)
	f.record(ctx, "favorite", start, err)
	return err
}

// Unfavorite records metrics for unfavoriting operations.
func (f *favoriteUseCaseWithMetrics) Unfavorite(ctx context.Context, userID, designID uuid.UUID) error {
	start := time.Now()
	err := f.next.Unfavorite(ctx, userID, designID)
	f.record(ctx, "unfavorite", start, err)
	return err
}

// ListByUser records metrics for favorite list operations.
func (f *favoriteUseCaseWithMetrics) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Design, int, error) {
	start := time.Now()
	designs, total, err := f.next.ListByUser(ctx, userID, offset, limit)
	f.record(ctx, "favorite_list", start, err)
	return designs, total, err
}

// CleanOrphans records metrics for orphan cleanup operations.
func (f *favoriteUseCaseWithMetrics) CleanOrphans(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := f.next.CleanOrphans(ctx)
	f.record(ctx, "clean_orphans", start, err)
	return count, err
}
