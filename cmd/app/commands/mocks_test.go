package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/artfolio/gallery/internal/catalog/domain"
	userDomain "github.com/artfolio/gallery/internal/user/domain"
	userUsecase "github.com/artfolio/gallery/internal/user/usecase"
)

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Register(ctx context.Context, input userUsecase.RegisterInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Authenticate(ctx context.Context, input userUsecase.AuthenticateInput) (string, *userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*userDomain.User), args.Error(2)
}

func (m *mockUserUseCase) GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*userDomain.User), args.Int(1), args.Error(2)
}

func (m *mockUserUseCase) ListPending(ctx context.Context, offset, limit int) ([]*userDomain.User, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*userDomain.User), args.Int(1), args.Error(2)
}

func (m *mockUserUseCase) Update(ctx context.Context, id uuid.UUID, input userUsecase.UpdateUserInput) (*userDomain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Approve(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Reject(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

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

func (m *mockFavoriteUseCase) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*catalogDomain.Design, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*catalogDomain.Design), args.Int(1), args.Error(2)
}

func (m *mockFavoriteUseCase) CleanOrphans(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
