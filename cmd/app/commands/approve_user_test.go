package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	userDomain "github.com/artfolio/gallery/internal/user/domain"
)

func TestApproveUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("success", func(t *testing.T) {
		userID := uuid.Must(uuid.NewV7())
		user := &userDomain.User{ID: userID, Username: "pending-painter"}

		mockUseCase := &mockUserUseCase{}
		mockUseCase.On("Approve", ctx, userID).Return(user, nil)

		var out bytes.Buffer
		err := approveUser(ctx, mockUseCase, logger, &out, userID.String())

		require.NoError(t, err)
		require.Contains(t, out.String(), `User "pending-painter" approved`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-id", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}

		var out bytes.Buffer
		err := approveUser(ctx, mockUseCase, logger, &out, "not-a-uuid")

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid user id")
		mockUseCase.AssertNotCalled(t, "Approve")
	})

	t.Run("approve-fails", func(t *testing.T) {
		userID := uuid.Must(uuid.NewV7())

		mockUseCase := &mockUserUseCase{}
		mockUseCase.On("Approve", ctx, userID).Return(nil, errors.New("user not found"))

		var out bytes.Buffer
		err := approveUser(ctx, mockUseCase, logger, &out, userID.String())

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to approve user")
		mockUseCase.AssertExpectations(t)
	})
}
