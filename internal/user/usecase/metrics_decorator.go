package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/metrics"
	"github.com/artfolio/gallery/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration for a finished call.
func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "users", operation, status)
	u.metrics.RecordDuration(ctx, "users", operation, time.Since(start), status)
}

// Register records metrics for registration operations.
func (u *userUseCaseWithMetrics) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)
	u.record(ctx, "register", start, err)
	return user, err
}

// Authenticate records metrics for login operations.
func (u *userUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	input AuthenticateInput,
) (string, *domain.User, error) {
	start := time.Now()
	token, user, err := u.next.Authenticate(ctx, input)
	u.record(ctx, "login", start, err)
	return token, user, err
}

// GetByID records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByID(ctx, id)
	u.record(ctx, "get", start, err)
	return user, err
}

// List records metrics for user list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, int, error) {
	start := time.Now()
	users, total, err := u.next.List(ctx, offset, limit)
	u.record(ctx, "list", start, err)
	return users, total, err
}

// ListPending records metrics for pending user list operations.
func (u *userUseCaseWithMetrics) ListPending(
	ctx context.Context,
	offset, limit int,
) ([]*domain.User, int, error) {
	start := time.Now()
	users, total, err := u.next.ListPending(ctx, offset, limit)
	u.record(ctx, "list_pending", start, err)
	return users, total, err
}

// Update records metrics for administrative user update operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, id, input)
	u.record(ctx, "update", start, err)
	return user, err
}

// Approve records metrics for approval operations.
func (u *userUseCaseWithMetrics) Approve(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Approve(ctx, id)
	u.record(ctx, "approve", start, err)
	return user, err
}

// Reject records metrics for rejection operations.
func (u *userUseCaseWithMetrics) Reject(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Reject(ctx, id)
	u.record(ctx, "reject", start, err)
	return user, err
}

// Delete records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, actorID, id)
	u.record(ctx, "delete", start, err)
	return err
}
