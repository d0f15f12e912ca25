// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	"github.com/artfolio/gallery/internal/errors"
)

// User represents a registered account.
//
// Role and approval state live in the auth domain: they are the inputs to
// every authorization decision. New accounts always start as standard role
// with pending approval; only an administrator changes either.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         authDomain.Role
	Approval     authDomain.ApprovalState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the identity snapshot embedded in issued tokens.
func (u *User) Identity() authDomain.Identity {
	return authDomain.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		Approval: u.Approval,
	}
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same username already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidCredentials indicates a wrong username or password.
	// Deliberately indistinguishable from an unknown username.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrUserNotApproved indicates the account has not been approved by an
	// administrator, or was rejected.
	ErrUserNotApproved = errors.Wrap(errors.ErrNotApproved, "account is not approved")

	// ErrCannotDeleteSelf indicates an administrator tried to delete their own account.
	ErrCannotDeleteSelf = errors.Wrap(errors.ErrConflict, "administrators cannot delete their own account")

	// ErrInvalidRole indicates a role value outside the known set.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

	// ErrInvalidApprovalState indicates an approval state outside the known set.
	ErrInvalidApprovalState = errors.Wrap(errors.ErrInvalidInput, "invalid approval state")
)
