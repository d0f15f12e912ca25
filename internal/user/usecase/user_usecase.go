// Package usecase implements the user business logic: registration, login,
// and the administrative approval workflow.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	authService "github.com/artfolio/gallery/internal/auth/service"
	"github.com/artfolio/gallery/internal/database"
	"github.com/artfolio/gallery/internal/user/domain"
	appValidation "github.com/artfolio/gallery/internal/validation"
)

// RegisterInput contains the input data for user registration.
// There is deliberately no role or approval field: every registration
// produces a standard, pending account.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticateInput contains the login credentials.
type AuthenticateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserInput contains the administrative mutations for a user.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Role     *authDomain.Role          `json:"role"`
	Approval *authDomain.ApprovalState `json:"approval_state"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, input AuthenticateInput) (string, *domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, int, error)
	ListPending(ctx context.Context, offset, limit int) ([]*domain.User, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	ListByApproval(ctx context.Context, approval authDomain.ApprovalState, offset, limit int) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
	CountByApproval(ctx context.Context, approval authDomain.ApprovalState) (int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	tokenTTL        time.Duration
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	tokenTTL time.Duration,
) *UserUseCase {
	return &UserUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		tokenTTL:        tokenTTL,
	}
}

// validateRegisterInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 50).Error("username must be between 3 and 50 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new standard account in pending approval state.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	passwordHash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     strings.TrimSpace(strings.ToLower(input.Username)),
		PasswordHash: passwordHash,
		Role:         authDomain.RoleStandard,
		Approval:     authDomain.ApprovalPending,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and issues a signed token.
//
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
// Accounts that are not approved cannot log in at all.
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (string, *domain.User, error) {
	username := strings.TrimSpace(strings.ToLower(input.Username))

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !uc.passwordService.Verify(input.Password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.Approval != authDomain.ApprovalApproved {
		return "", nil, domain.ErrUserNotApproved
	}

	token, err := uc.tokenService.Issue(user.Identity(), uc.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetByID retrieves a user by ID
func (uc *UserUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// List retrieves users with the total count for pagination.
func (uc *UserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, int, error) {
	users, err := uc.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListPending retrieves users awaiting approval, oldest registration first.
func (uc *UserUseCase) ListPending(ctx context.Context, offset, limit int) ([]*domain.User, int, error) {
	users, err := uc.userRepo.ListByApproval(ctx, authDomain.ApprovalPending, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.userRepo.CountByApproval(ctx, authDomain.ApprovalPending)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update applies administrative role/approval changes inside a transaction.
func (uc *UserUseCase) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	if input.Approval != nil && !input.Approval.Valid() {
		return nil, domain.ErrInvalidApprovalState
	}

	var user *domain.User
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.Approval != nil {
			user.Approval = *input.Approval
		}

		return uc.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Approve transitions a user to the approved state.
func (uc *UserUseCase) Approve(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	approval := authDomain.ApprovalApproved
	return uc.Update(ctx, id, UpdateUserInput{Approval: &approval})
}

// Reject transitions a user to the rejected state.
func (uc *UserUseCase) Reject(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	approval := authDomain.ApprovalRejected
	return uc.Update(ctx, id, UpdateUserInput{Approval: &approval})
}

// Delete removes a user account. The acting administrator cannot delete
// their own account, so the system can never lose its last admin by accident.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return domain.ErrCannotDeleteSelf
	}
	return uc.userRepo.Delete(ctx, id)
}
