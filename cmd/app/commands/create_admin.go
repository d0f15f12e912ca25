package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/artfolio/gallery/internal/app"
	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	"github.com/artfolio/gallery/internal/config"
	userUsecase "github.com/artfolio/gallery/internal/user/usecase"
)

// RunCreateAdmin creates an approved administrator account.
// Intended for bootstrapping a fresh installation where no admin exists yet
// to approve other accounts.
func RunCreateAdmin(ctx context.Context, username, password string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	return createAdmin(ctx, useCase, logger, os.Stdout, username, password)
}

// createAdmin registers the account and promotes it to an approved admin.
func createAdmin(
	ctx context.Context,
	useCase userUsecase.UseCase,
	logger *slog.Logger,
	out io.Writer,
	username, password string,
) error {
	user, err := useCase.Register(ctx, userUsecase.RegisterInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to register admin user: %w", err)
	}

	role := authDomain.RoleAdmin
	approval := authDomain.ApprovalApproved
	user, err = useCase.Update(ctx, user.ID, userUsecase.UpdateUserInput{
		Role:     &role,
		Approval: &approval,
	})
	if err != nil {
		return fmt.Errorf("failed to promote admin user: %w", err)
	}

	logger.Info("admin user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	fmt.Fprintf(out, "Admin user %q created (id %s)\n", user.Username, user.ID)
	return nil
}
