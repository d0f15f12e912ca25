// Package http provides HTTP handlers for registration, login, and the
// administrative user management endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	authHTTP "github.com/artfolio/gallery/internal/auth/http"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/httputil"
	"github.com/artfolio/gallery/internal/user/http/dto"
	"github.com/artfolio/gallery/internal/user/usecase"
)

// AuthHandler handles registration, login, profile, and logout requests.
type AuthHandler struct {
	userUseCase usecase.UseCase
	expiresIn   int
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. expiresIn is the token lifetime
// in seconds reported to clients in the login response.
func NewAuthHandler(userUseCase usecase.UseCase, expiresIn int, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		expiresIn:   expiresIn,
		logger:      logger,
	}
}

// RegisterHandler creates a new account in pending approval state.
// POST /v1/auth/register - Public (rate limited).
// Returns 201 Created with the user; the account cannot log in until approved.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), dto.ToRegisterInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// LoginHandler verifies credentials and issues a bearer token.
// POST /v1/auth/login - Public (rate limited).
// Returns 200 OK with the token, or 401/403 on bad credentials or an
// unapproved account.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	token, user, err := h.userUseCase.Authenticate(c.Request.Context(), dto.ToAuthenticateInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user logged in", slog.String("user_id", user.ID.String()))

	c.JSON(http.StatusOK, dto.ToLoginResponse(token, h.expiresIn, user))
}

// MeHandler returns the authenticated user's current record.
// GET /v1/auth/me - Requires authentication; allowed while pending so users
// can see their approval status.
// The record comes from a fresh store lookup, not the token snapshot, so an
// approval granted after login is visible immediately.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	decision := authDomain.Decide(identity, authDomain.Request{
		Resource: authDomain.ResourceProfile,
		Action:   authDomain.ActionRead,
		OwnerID:  identity.UserID,
	})
	if !decision.Allowed {
		httputil.HandleErrorGin(c, decision.Err(), h.logger)
		return
	}

	user, err := h.userUseCase.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// LogoutHandler ends the session from the client's perspective.
// POST /v1/auth/logout - Requires authentication; allowed while pending.
// Tokens are stateless, so the server only confirms; the client discards the token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	decision := authDomain.Decide(identity, authDomain.Request{
		Resource: authDomain.ResourceSession,
		Action:   authDomain.ActionDelete,
		OwnerID:  identity.UserID,
	})
	if !decision.Allowed {
		httputil.HandleErrorGin(c, decision.Err(), h.logger)
		return
	}

	h.logger.Info("user logged out", slog.String("user_id", identity.UserID.String()))

	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "logged out"})
}
