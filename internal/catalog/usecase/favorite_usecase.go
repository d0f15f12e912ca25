package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/database"
)

// FavoriteRepository interface defines favorite repository operations
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, userID, designID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, designID uuid.UUID) (bool, error)
	ListDesignsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Design, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteByDesign(ctx context.Context, designID uuid.UUID) error
	DeleteOrphans(ctx context.Context) (int64, error)
}

// FavoriteUseCase defines the interface for favorite business logic operations
type FavoriteUseCase interface {
	Favorite(ctx context.Context, userID, designID uuid.UUID) error
	Unfavorite(ctx context.Context, userID, designID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Design, int, error)
	CleanOrphans(ctx context.Context) (int64, error)
}

// favoriteUseCase handles favorite-related business logic
type favoriteUseCase struct {
	txManager    database.TxManager
	favoriteRepo FavoriteRepository
	designRepo   DesignRepository
	logger       *slog.Logger
}

// NewFavoriteUseCase creates a new FavoriteUseCase
func NewFavoriteUseCase(
	txManager database.TxManager,
	favoriteRepo FavoriteRepository,
	designRepo DesignRepository,
	logger *slog.Logger,
) FavoriteUseCase {
	return &favoriteUseCase{
		txManager:    txManager,
		favoriteRepo: favoriteRepo,
		designRepo:   designRepo,
		logger:       logger,
	}
}

// Favorite saves a design for a user and bumps the like counter in the
// same transaction. Favoriting an already-favorited design is a conflict.
func (uc *favoriteUseCase) Favorite(ctx context.Context, userID, designID uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if _, err := uc.designRepo.GetByID(ctx, designID); err != nil {
			return err
		}

		favorite := &domain.Favorite{
			UserID:   userID,
			DesignID: designID,
		}
		if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
			return err
		}

		return uc.designRepo.AdjustLikeCount(ctx, designID, 1)
	})
}

// Unfavorite removes a saved design. Removing a favorite that does not
// exist succeeds without touching the like counter, so clients can retry
// the call safely.
func (uc *favoriteUseCase) Unfavorite(ctx context.Context, userID, designID uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		deleted, err := uc.favoriteRepo.Delete(ctx, userID, designID)
		if err != nil {
			return err
		}
		if !deleted {
			return nil
		}

		return uc.designRepo.AdjustLikeCount(ctx, designID, -1)
	})
}

// ListByUser retrieves the designs a user favorited with the total count
// for pagination.
func (uc *favoriteUseCase) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Design, int, error) {
	designs, err := uc.favoriteRepo.ListDesignsByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return designs, total, nil
}

// CleanOrphans removes favorite links whose user or design no longer
// exists. Used by the maintenance command.
func (uc *favoriteUseCase) CleanOrphans(ctx context.Context) (int64, error) {
	removed, err := uc.favoriteRepo.DeleteOrphans(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		uc.logger.Info("removed orphaned favorites", slog.Int64("count", removed))
	}
	return removed, nil
}
