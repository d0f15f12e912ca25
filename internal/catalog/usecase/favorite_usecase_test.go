package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/gallery/internal/catalog/domain"
)

type favoriteMocks struct {
	txManager    *MockTxManager
	favoriteRepo *MockFavoriteRepository
	designRepo   *MockDesignRepository
}

func newFavoriteUseCase() (FavoriteUseCase, *favoriteMocks) {
	mocks := &favoriteMocks{
		txManager:    &MockTxManager{},
		favoriteRepo: &MockFavoriteRepository{},
		designRepo:   &MockDesignRepository{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewFavoriteUseCase(mocks.txManager, mocks.favoriteRepo, mocks.designRepo, logger)
	return uc, mocks
}

func TestFavoriteUseCase_Favorite(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, mocks := newFavoriteUseCase()
		userID := uuid.Must(uuid.NewV7())
		design := activeDesign()

		mocks.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mocks.designRepo.On("GetByID", mock.Anything, design.ID).Return(design, nil)
		mocks.favoriteRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *domain.Favorite) bool {
			return f.UserID == userID && f.DesignID == design.ID
		})).Return(nil)
		mocks.designRepo.On("AdjustLikeCount", mock.Anything, design.ID, 1).Return(nil)

		require.NoError(t, uc.Favorite(t.Context(), userID, design.ID))
		mocks.designRepo.AssertExpectations(t)
	})

	t.Run("Failure_DesignNotFound", func(t *testing.T) {
		uc, mocks := newFavoriteUseCase()
		userID := uuid.Must(uuid.NewV7())
		designID := uuid.Must(uuid.NewV7())

		mocks.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mocks.designRepo.On("GetByID", mock.Anything, designID).Return(nil, domain.ErrDesignNotFound)

		err := uc.Favorite(t.Context(), userID, designID)
		assert.ErrorIs(t, err, domain.ErrDesignNotFound)
		mocks.favoriteRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failure_AlreadyFavorited", func(t *testing.T) {
		uc, mocks := newFavoriteUseCase()
		userID := uuid.Must(uuid.NewV7())
		design := activeDesign()

		mocks.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mocks.designRepo.On("GetByID", mock.Anything, design.ID).Return(design, nil)
		mocks.favoriteRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrFavoriteAlreadyExists)

		err := uc.Favorite(t.Context(), userID, design.ID)
		assert.ErrorIs(t, err, domain.ErrFavoriteAlreadyExists)
		mocks.designRepo.AssertNotCalled(t, "AdjustLikeCount")
	})
}

func TestFavoriteUseCase_Unfavorite(t *testing.T) {
	t.Run("Success_RowRemoved", func(t *testing.T) {
		uc, mocks := newFavoriteUseCase()
		userID := uuid.Must(uuid.NewV7())
		designID := uuid.Must(uuid.NewV7())

		mocks.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mocks.favoriteRepo.On("Delete", mock.Anything, userID, designID).Return(true, nil)
		mocks.designRepo.On("AdjustLikeCount", mock.Anything, designID, -1).Return(nil)

		require.NoError(t, uc.Unfavorite(t.Context(), userID, designID))
		mocks.designRepo.AssertExpectations(t)
	})

	t.Run("Success_AbsentFavoriteIsNoOp", func(t *testing.T) {
		uc, mocks := newFavoriteUseCase()
		userID := uuid.Must(uuid.NewV7())
		designID := uuid.Must(uuid.NewV7())

		mocks.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		mocks.favoriteRepo.On("Delete", mock.Anything, userID, designID).Return(false, nil)

		// A repeated unfavorite succeeds and never decrements the counter.
		require.NoError(t, uc.Unfavorite(t.Context(), userID, designID))
		mocks.designRepo.AssertNotCalled(t, "AdjustLikeCount")
	})
}

func TestFavoriteUseCase_ListByUser(t *testing.T) {
	uc, mocks := newFavoriteUseCase()
	userID := uuid.Must(uuid.NewV7())
	designs := []*domain.Design{activeDesign()}

	mocks.favoriteRepo.On("ListDesignsByUser", mock.Anything, userID, 0, 20).Return(designs, nil)
	mocks.favoriteRepo.On("CountByUser", mock.Anything, userID).Return(3, nil)

	got, total, err := uc.ListByUser(t.Context(), userID, 0, 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 3, total)
}

func TestFavoriteUseCase_CleanOrphans(t *testing.T) {
	uc, mocks := newFavoriteUseCase()

	mocks.favoriteRepo.On("DeleteOrphans", mock.Anything).Return(int64(4), nil)

	removed, err := uc.CleanOrphans(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
