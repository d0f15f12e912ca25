package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/artfolio/gallery/internal/auth/http"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/httputil"
	"github.com/artfolio/gallery/internal/user/http/dto"
	"github.com/artfolio/gallery/internal/user/usecase"
)

// AdminUserHandler handles the administrative user management endpoints.
// All routes are registered behind the admin authorization middleware.
type AdminUserHandler struct {
	userUseCase    usecase.UseCase
	defaultPerPage int
	maxPerPage     int
	logger         *slog.Logger
}

// NewAdminUserHandler creates a new AdminUserHandler
func NewAdminUserHandler(userUseCase usecase.UseCase, defaultPerPage, maxPerPage int, logger *slog.Logger) *AdminUserHandler {
	return &AdminUserHandler{
		userUseCase:    userUseCase,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
		logger:         logger,
	}
}

// ListHandler retrieves users with pagination.
// GET /v1/admin/users?page=1&per_page=20
func (h *AdminUserHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c, h.defaultPerPage, h.maxPerPage)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	users, total, err := h.userUseCase.List(c.Request.Context(), page.Offset(), page.PerPage)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users, total, page))
}

// ListPendingHandler retrieves the approval queue, oldest registration first.
// GET /v1/admin/users/pending?page=1&per_page=20
func (h *AdminUserHandler) ListPendingHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c, h.defaultPerPage, h.maxPerPage)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	users, total, err := h.userUseCase.ListPending(c.Request.Context(), page.Offset(), page.PerPage)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users, total, page))
}

// UpdateHandler changes a user's role and/or approval state.
// PUT /v1/admin/users/:id
func (h *AdminUserHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), id, dto.ToUpdateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user updated",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
		slog.String("approval_state", string(user.Approval)))

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ApproveHandler approves a pending user.
// POST /v1/admin/users/:id/approve
func (h *AdminUserHandler) ApproveHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Approve(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user approved", slog.String("user_id", user.ID.String()))

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// RejectHandler rejects a pending user.
// POST /v1/admin/users/:id/reject
func (h *AdminUserHandler) RejectHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Reject(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user rejected", slog.String("user_id", user.ID.String()))

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteHandler removes a user account. Administrators cannot delete themselves.
// DELETE /v1/admin/users/:id
func (h *AdminUserHandler) DeleteHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), identity.UserID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user deleted",
		slog.String("user_id", id.String()),
		slog.String("deleted_by", identity.UserID.String()))

	c.Data(http.StatusNoContent, "application/json", nil)
}
