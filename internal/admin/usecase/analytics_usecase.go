// Package usecase implements the admin analytics business logic.
package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/artfolio/gallery/internal/admin/domain"
	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	catalogDomain "github.com/artfolio/gallery/internal/catalog/domain"
	catalogUsecase "github.com/artfolio/gallery/internal/catalog/usecase"
	userUsecase "github.com/artfolio/gallery/internal/user/usecase"
)

// AnalyticsRepository interface defines the aggregate query operations
type AnalyticsRepository interface {
	DesignTotals(ctx context.Context) (domain.DesignTotals, error)
	TopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error)
}

// AnalyticsUseCase defines the interface for analytics business logic operations
type AnalyticsUseCase interface {
	Overview(ctx context.Context) (*domain.Analytics, error)
}

// analyticsUseCase handles analytics business logic
type analyticsUseCase struct {
	analyticsRepo AnalyticsRepository
	userRepo      userUsecase.UserRepository
	designRepo    catalogUsecase.DesignRepository
	topCategories int
	recentDesigns int
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase. topCategories and
// recentDesigns bound the respective dashboard lists.
func NewAnalyticsUseCase(
	analyticsRepo AnalyticsRepository,
	userRepo userUsecase.UserRepository,
	designRepo catalogUsecase.DesignRepository,
	topCategories, recentDesigns int,
) AnalyticsUseCase {
	return &analyticsUseCase{
		analyticsRepo: analyticsRepo,
		userRepo:      userRepo,
		designRepo:    designRepo,
		topCategories: topCategories,
		recentDesigns: recentDesigns,
	}
}

// Overview gathers the dashboard snapshot. The independent aggregates run
// concurrently; the first failure cancels the rest.
func (uc *analyticsUseCase) Overview(ctx context.Context) (*domain.Analytics, error) {
	var analytics domain.Analytics

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := uc.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		analytics.TotalUsers = total
		return nil
	})

	g.Go(func() error {
		pending, err := uc.userRepo.CountByApproval(ctx, authDomain.ApprovalPending)
		if err != nil {
			return err
		}
		analytics.PendingUsers = pending
		return nil
	})

	g.Go(func() error {
		approved, err := uc.userRepo.CountByApproval(ctx, authDomain.ApprovalApproved)
		if err != nil {
			return err
		}
		analytics.ApprovedUsers = approved
		return nil
	})

	g.Go(func() error {
		totals, err := uc.analyticsRepo.DesignTotals(ctx)
		if err != nil {
			return err
		}
		analytics.TotalDesigns = totals.Total
		analytics.FeaturedDesigns = totals.Featured
		analytics.TotalViews = totals.TotalViews
		analytics.TotalLikes = totals.TotalLikes
		return nil
	})

	g.Go(func() error {
		categories, err := uc.analyticsRepo.TopCategories(ctx, uc.topCategories)
		if err != nil {
			return err
		}
		analytics.TopCategories = categories
		return nil
	})

	g.Go(func() error {
		recent, err := uc.designRepo.List(ctx, catalogDomain.Filter{}, 0, uc.recentDesigns)
		if err != nil {
			return err
		}
		analytics.RecentDesigns = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &analytics, nil
}
