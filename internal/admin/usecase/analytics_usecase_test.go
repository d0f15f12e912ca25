package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/gallery/internal/admin/domain"
	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	catalogDomain "github.com/artfolio/gallery/internal/catalog/domain"
	userDomain "github.com/artfolio/gallery/internal/user/domain"
)

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) DesignTotals(ctx context.Context) (domain.DesignTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DesignTotals), args.Error(1)
}

func (m *MockAnalyticsRepository) TopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

// MockUserRepository is a mock implementation of the user repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) ListByApproval(ctx context.Context, approval authDomain.ApprovalState, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, approval, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountByApproval(ctx context.Context, approval authDomain.ApprovalState) (int, error) {
	args := m.Called(ctx, approval)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDesignRepository is a mock implementation of the design repository
type MockDesignRepository struct {
	mock.Mock
}

func (m *MockDesignRepository) Create(ctx context.Context, design *catalogDomain.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalogDomain.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogDomain.Design), args.Error(1)
}

func (m *MockDesignRepository) List(ctx context.Context, filter catalogDomain.Filter, offset, limit int) ([]*catalogDomain.Design, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Design), args.Error(1)
}

func (m *MockDesignRepository) Count(ctx context.Context, filter catalogDomain.Filter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockDesignRepository) ListFeatured(ctx context.Context, limit int) ([]*catalogDomain.Design, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogDomain.Design), args.Error(1)
}

func (m *MockDesignRepository) Update(ctx context.Context, design *catalogDomain.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDesignRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDesignRepository) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

type analyticsMocks struct {
	analyticsRepo *MockAnalyticsRepository
	userRepo      *MockUserRepository
	designRepo    *MockDesignRepository
}

func newAnalyticsUseCase() (AnalyticsUseCase, *analyticsMocks) {
	mocks := &analyticsMocks{
		analyticsRepo: &MockAnalyticsRepository{},
		userRepo:      &MockUserRepository{},
		designRepo:    &MockDesignRepository{},
	}
	uc := NewAnalyticsUseCase(mocks.analyticsRepo, mocks.userRepo, mocks.designRepo, 5, 10)
	return uc, mocks
}

func TestAnalyticsUseCase_Overview(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, mocks := newAnalyticsUseCase()

		mocks.userRepo.On("Count", mock.Anything).Return(120, nil)
		mocks.userRepo.On("CountByApproval", mock.Anything, authDomain.ApprovalPending).Return(8, nil)
		mocks.userRepo.On("CountByApproval", mock.Anything, authDomain.ApprovalApproved).Return(100, nil)
		mocks.analyticsRepo.On("DesignTotals", mock.Anything).Return(domain.DesignTotals{
			Total:      45,
			Featured:   6,
			TotalViews: 1234,
			TotalLikes: 321,
		}, nil)
		mocks.analyticsRepo.On("TopCategories", mock.Anything, 5).Return([]domain.CategoryCount{
			{Category: "lehenga", Count: 20},
			{Category: "saree", Count: 15},
		}, nil)
		recent := []*catalogDomain.Design{{ID: uuid.Must(uuid.NewV7()), Title: "Banarasi Silk Lehenga"}}
		mocks.designRepo.On("List", mock.Anything, catalogDomain.Filter{}, 0, 10).Return(recent, nil)

		analytics, err := uc.Overview(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 120, analytics.TotalUsers)
		assert.Equal(t, 8, analytics.PendingUsers)
		assert.Equal(t, 100, analytics.ApprovedUsers)
		assert.Equal(t, 45, analytics.TotalDesigns)
		assert.Equal(t, 6, analytics.FeaturedDesigns)
		assert.Equal(t, int64(1234), analytics.TotalViews)
		assert.Equal(t, int64(321), analytics.TotalLikes)
		require.Len(t, analytics.TopCategories, 2)
		assert.Equal(t, "lehenga", analytics.TopCategories[0].Category)
		require.Len(t, analytics.RecentDesigns, 1)
	})

	t.Run("Failure_AggregateError", func(t *testing.T) {
		uc, mocks := newAnalyticsUseCase()
		dbErr := errors.New("connection reset")

		mocks.userRepo.On("Count", mock.Anything).Return(0, dbErr)
		mocks.userRepo.On("CountByApproval", mock.Anything, mock.Anything).Return(0, nil)
		mocks.analyticsRepo.On("DesignTotals", mock.Anything).Return(domain.DesignTotals{}, nil)
		mocks.analyticsRepo.On("TopCategories", mock.Anything, 5).Return([]domain.CategoryCount{}, nil)
		mocks.designRepo.On("List", mock.Anything, catalogDomain.Filter{}, 0, 10).
			Return([]*catalogDomain.Design{}, nil)

		_, err := uc.Overview(t.Context())
		assert.ErrorIs(t, err, dbErr)
	})
}
