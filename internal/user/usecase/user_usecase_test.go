package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/user/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListByApproval(ctx context.Context, approval authDomain.ApprovalState, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, approval, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountByApproval(ctx context.Context, approval authDomain.ApprovalState) (int, error) {
	args := m.Called(ctx, approval)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPasswordService is a mock implementation of authService.PasswordService
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Verify(password string, digest string) bool {
	args := m.Called(password, digest)
	return args.Bool(0)
}

// MockTokenService is a mock implementation of authService.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(identity authDomain.Identity, ttl time.Duration) (string, error) {
	args := m.Called(identity, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (authDomain.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(authDomain.Identity), args.Error(1)
}

type useCaseMocks struct {
	txManager       *MockTxManager
	userRepo        *MockUserRepository
	passwordService *MockPasswordService
	tokenService    *MockTokenService
}

func newUseCase() (*UserUseCase, *useCaseMocks) {
	mocks := &useCaseMocks{
		txManager:       &MockTxManager{},
		userRepo:        &MockUserRepository{},
		passwordService: &MockPasswordService{},
		tokenService:    &MockTokenService{},
	}
	uc := NewUserUseCase(mocks.txManager, mocks.userRepo, mocks.passwordService, mocks.tokenService, time.Hour)
	return uc, mocks
}

func approvedUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "priya",
		PasswordHash: "$argon2id$fake",
		Role:         authDomain.RoleStandard,
		Approval:     authDomain.ApprovalApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, mocks := newUseCase()
		input := RegisterInput{Username: "Priya", Password: "SecurePass123"}

		mocks.passwordService.On("Hash", "SecurePass123").Return("$argon2id$fake", nil)
		mocks.userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := uc.Register(ctx, input)
		require.NoError(t, err)

		// Registration always produces a standard, pending account with a
		// normalized username.
		assert.Equal(t, "priya", user.Username)
		assert.Equal(t, authDomain.RoleStandard, user.Role)
		assert.Equal(t, authDomain.ApprovalPending, user.Approval)
		assert.Equal(t, "$argon2id$fake", user.PasswordHash)
		assert.NotEqual(t, uuid.Nil, user.ID)
		mocks.userRepo.AssertExpectations(t)
	})

	t.Run("Failure_InvalidUsername", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Register(ctx, RegisterInput{Username: "p!", Password: "SecurePass123"})
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Failure_WeakPassword", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Register(ctx, RegisterInput{Username: "priya", Password: "weak"})
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Failure_DuplicateUsername", func(t *testing.T) {
		uc, mocks := newUseCase()

		mocks.passwordService.On("Hash", "SecurePass123").Return("$argon2id$fake", nil)
		mocks.userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(domain.ErrUserAlreadyExists)

		_, err := uc.Register(ctx, RegisterInput{Username: "priya", Password: "SecurePass123"})
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestUserUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()

		mocks.userRepo.On("GetByUsername", ctx, "priya").Return(user, nil)
		mocks.passwordService.On("Verify", "SecurePass123", user.PasswordHash).Return(true)
		mocks.tokenService.On("Issue", user.Identity(), time.Hour).Return("signed-token", nil)

		token, got, err := uc.Authenticate(ctx, AuthenticateInput{Username: "Priya", Password: "SecurePass123"})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, user, got)
	})

	t.Run("Failure_UnknownUsername", func(t *testing.T) {
		uc, mocks := newUseCase()

		mocks.userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrUserNotFound)

		_, _, err := uc.Authenticate(ctx, AuthenticateInput{Username: "ghost", Password: "SecurePass123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Failure_WrongPassword", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()

		mocks.userRepo.On("GetByUsername", ctx, "priya").Return(user, nil)
		mocks.passwordService.On("Verify", "wrong", user.PasswordHash).Return(false)

		_, _, err := uc.Authenticate(ctx, AuthenticateInput{Username: "priya", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Failure_PendingAccount", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()
		user.Approval = authDomain.ApprovalPending

		mocks.userRepo.On("GetByUsername", ctx, "priya").Return(user, nil)
		mocks.passwordService.On("Verify", "SecurePass123", user.PasswordHash).Return(true)

		_, _, err := uc.Authenticate(ctx, AuthenticateInput{Username: "priya", Password: "SecurePass123"})
		assert.ErrorIs(t, err, domain.ErrUserNotApproved)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotApproved))
		mocks.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("Failure_RejectedAccount", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()
		user.Approval = authDomain.ApprovalRejected

		mocks.userRepo.On("GetByUsername", ctx, "priya").Return(user, nil)
		mocks.passwordService.On("Verify", "SecurePass123", user.PasswordHash).Return(true)

		_, _, err := uc.Authenticate(ctx, AuthenticateInput{Username: "priya", Password: "SecurePass123"})
		assert.ErrorIs(t, err, domain.ErrUserNotApproved)
	})
}

func TestUserUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, mocks := newUseCase()
	users := []*domain.User{approvedUser(), approvedUser()}

	mocks.userRepo.On("List", ctx, 0, 20).Return(users, nil)
	mocks.userRepo.On("Count", ctx).Return(12, nil)

	got, total, err := uc.List(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, users, got)
	assert.Equal(t, 12, total)
}

func TestUserUseCase_ListPending(t *testing.T) {
	ctx := context.Background()
	uc, mocks := newUseCase()
	pending := approvedUser()
	pending.Approval = authDomain.ApprovalPending

	mocks.userRepo.On("ListByApproval", ctx, authDomain.ApprovalPending, 0, 20).
		Return([]*domain.User{pending}, nil)
	mocks.userRepo.On("CountByApproval", ctx, authDomain.ApprovalPending).Return(1, nil)

	got, total, err := uc.ListPending(ctx, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, total)
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ApproveAndPromote", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()
		user.Approval = authDomain.ApprovalPending

		role := authDomain.RoleAdmin
		approval := authDomain.ApprovalApproved

		mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		mocks.userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mocks.userRepo.On("Update", ctx, user).Return(nil)

		got, err := uc.Update(ctx, user.ID, UpdateUserInput{Role: &role, Approval: &approval})
		require.NoError(t, err)
		assert.Equal(t, authDomain.RoleAdmin, got.Role)
		assert.Equal(t, authDomain.ApprovalApproved, got.Approval)
	})

	t.Run("Failure_InvalidRole", func(t *testing.T) {
		uc, _ := newUseCase()
		role := authDomain.Role("superuser")

		_, err := uc.Update(ctx, uuid.Must(uuid.NewV7()), UpdateUserInput{Role: &role})
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("Failure_InvalidApprovalState", func(t *testing.T) {
		uc, _ := newUseCase()
		approval := authDomain.ApprovalState("banned")

		_, err := uc.Update(ctx, uuid.Must(uuid.NewV7()), UpdateUserInput{Approval: &approval})
		assert.ErrorIs(t, err, domain.ErrInvalidApprovalState)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		uc, mocks := newUseCase()
		id := uuid.Must(uuid.NewV7())
		approval := authDomain.ApprovalApproved

		mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		mocks.userRepo.On("GetByID", ctx, id).Return(nil, domain.ErrUserNotFound)

		_, err := uc.Update(ctx, id, UpdateUserInput{Approval: &approval})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserUseCase_ApproveReject(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()
		user.Approval = authDomain.ApprovalPending

		mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		mocks.userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mocks.userRepo.On("Update", ctx, user).Return(nil)

		got, err := uc.Approve(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, authDomain.ApprovalApproved, got.Approval)
		assert.Equal(t, authDomain.RoleStandard, got.Role)
	})

	t.Run("Reject", func(t *testing.T) {
		uc, mocks := newUseCase()
		user := approvedUser()
		user.Approval = authDomain.ApprovalPending

		mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		mocks.userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
		mocks.userRepo.On("Update", ctx, user).Return(nil)

		got, err := uc.Reject(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, authDomain.ApprovalRejected, got.Approval)
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, mocks := newUseCase()
		actorID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		mocks.userRepo.On("Delete", ctx, targetID).Return(nil)

		assert.NoError(t, uc.Delete(ctx, actorID, targetID))
	})

	t.Run("Failure_SelfDelete", func(t *testing.T) {
		uc, mocks := newUseCase()
		id := uuid.Must(uuid.NewV7())

		err := uc.Delete(ctx, id, id)
		assert.ErrorIs(t, err, domain.ErrCannotDeleteSelf)
		mocks.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		uc, mocks := newUseCase()
		actorID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		mocks.userRepo.On("Delete", ctx, targetID).Return(domain.ErrUserNotFound)

		assert.ErrorIs(t, uc.Delete(ctx, actorID, targetID), domain.ErrUserNotFound)
	})
}
