package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/app"
	"github.com/artfolio/gallery/internal/config"
	userUsecase "github.com/artfolio/gallery/internal/user/usecase"
)

// RunApproveUser approves a pending registration from the command line.
// Useful when the admin panel is unavailable or during initial rollout.
func RunApproveUser(ctx context.Context, rawID string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	return approveUser(ctx, useCase, logger, os.Stdout, rawID)
}

// approveUser parses the identifier and flips the account to approved.
func approveUser(
	ctx context.Context,
	useCase userUsecase.UseCase,
	logger *slog.Logger,
	out io.Writer,
	rawID string,
) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", rawID, err)
	}

	user, err := useCase.Approve(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to approve user: %w", err)
	}

	logger.Info("user approved",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	fmt.Fprintf(out, "User %q approved\n", user.Username)
	return nil
}
