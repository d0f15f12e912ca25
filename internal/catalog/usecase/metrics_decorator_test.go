package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/artfolio/gallery/internal/catalog/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockDesignUseCase is a local mock for the DesignUseCase interface.
type mockDesignUseCase struct {
	mock.Mock
}

func (m *mockDesignUseCase) Create(ctx context.Context, input CreateDesignInput) (*domain.Design, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Design), args.Error(1)
}

func (m *mockDesignUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Design), args.Error(1)
}

func (m *mockDesignUseCase) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Design, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Design), args.Int(1), args.Error(2)
}

func (m *mockDesignUseCase) ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Design), args.Error(1)
}

func (m *mockDesignUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateDesignInput,
) (*domain.Design, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Design), args.Error(1)
}

func (m *mockDesignUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockFavoriteUseCase is a local mock for the FavoriteUseCase interface.
type mockFavoriteUseCase struct {
	mock.Mock
}

func (m *mockFavoriteUseCase) Favorite(ctx context.Context, userID, designID uuid.UUID) error {
	args := m.Called(ctx, userID, designID)
	return args.Error(0)
}

func (m *mockFavoriteUseCase) Unfavorite(ctx context.Context, userID, designID uuid.UUID) error {
	args := m.Called(ctx, userID, designID)
	return args.Error(0)
}

func (m *mockFavoriteUseCase) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*domain.Design, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Design), args.Int(1), args.Error(2)
}

func (m *mockFavoriteUseCase) CleanOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestDesignUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Get success", func(t *testing.T) {
		mockNext := &mockDesignUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewDesignUseCaseWithMetrics(mockNext, mockMetrics)

		id := uuid.Must(uuid.NewV7())
		design := &domain.Design{ID: id, Title: "Banarasi Silk Lehenga"}

		mockNext.On("Get", ctx, id).Return(design, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "catalog", "design_get", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "catalog", "design_get", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Get(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, design, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Create error", func(t *testing.T) {
		mockNext := &mockDesignUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewDesignUseCaseWithMetrics(mockNext, mockMetrics)

		input := CreateDesignInput{Title: "Banarasi Silk Lehenga"}
		expectedErr := errors.New("category is required")

		mockNext.On("Create", ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "catalog", "design_create", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "catalog", "design_create", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Create(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestFavoriteUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Favorite success", func(t *testing.T) {
		mockNext := &mockFavoriteUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewFavoriteUseCaseWithMetrics(mockNext, mockMetrics)

		userID := uuid.Must(uuid.NewV7())
		designID := uuid.Must(uuid.NewV7())

		mockNext.On("Favorite", ctx, userID, designID).Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "favorites", "favorite", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "favorites", "favorite", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		err := uc.Favorite(ctx, userID, designID)
		assert.NoError(t, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CleanOrphans success", func(t *testing.T) {
		mockNext := &mockFavoriteUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewFavoriteUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("CleanOrphans", ctx).Return(int64(3), nil).Once()
		mockMetrics.On("RecordOperation", ctx, "favorites", "clean_orphans", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "favorites", "clean_orphans", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		count, err := uc.CleanOrphans(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
