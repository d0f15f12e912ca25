package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/artfolio/gallery/internal/auth/domain"
	authHTTP "github.com/artfolio/gallery/internal/auth/http"
	"github.com/artfolio/gallery/internal/catalog/http/dto"
	"github.com/artfolio/gallery/internal/catalog/usecase"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/httputil"
)

// FavoriteHandler handles favorite requests. Favorites are owned by the
// favoriting user, so each handler consults the access policy with the
// caller as owner rather than relying on the routing-layer gate.
type FavoriteHandler struct {
	favoriteUseCase usecase.FavoriteUseCase
	defaultPerPage  int
	maxPerPage      int
	logger          *slog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(
	favoriteUseCase usecase.FavoriteUseCase,
	defaultPerPage, maxPerPage int,
	logger *slog.Logger,
) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
		defaultPerPage:  defaultPerPage,
		maxPerPage:      maxPerPage,
		logger:          logger,
	}
}

// authorize resolves the caller identity and consults the gate with the
// caller as the favorite owner.
func (h *FavoriteHandler) authorize(c *gin.Context, action authDomain.Action) (*authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}

	decision := authDomain.Decide(identity, authDomain.Request{
		Resource: authDomain.ResourceFavorite,
		Action:   action,
		OwnerID:  identity.UserID,
	})
	if !decision.Allowed {
		httputil.HandleErrorGin(c, decision.Err(), h.logger)
		return nil, false
	}
	return identity, true
}

// CreateHandler saves a design to the caller's favorites.
// POST /v1/designs/:id/favorite - Requires an approved account.
// Returns 409 Conflict when the design is already favorited.
func (h *FavoriteHandler) CreateHandler(c *gin.Context) {
	identity, ok := h.authorize(c, authDomain.ActionCreate)
	if !ok {
		return
	}

	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid design id"), h.logger)
		return
	}

	if err := h.favoriteUseCase.Favorite(c.Request.Context(), identity.UserID, designID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("design favorited",
		slog.String("user_id", identity.UserID.String()),
		slog.String("design_id", designID.String()))

	c.JSON(http.StatusCreated, httputil.MessageResponse{Message: "design favorited"})
}

// DeleteHandler removes a design from the caller's favorites.
// DELETE /v1/designs/:id/favorite - Requires an approved account.
// Removing a design that is not favorited succeeds, so clients can retry.
func (h *FavoriteHandler) DeleteHandler(c *gin.Context) {
	identity, ok := h.authorize(c, authDomain.ActionDelete)
	if !ok {
		return
	}

	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid design id"), h.logger)
		return
	}

	if err := h.favoriteUseCase.Unfavorite(c.Request.Context(), identity.UserID, designID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "design unfavorited"})
}

// ListHandler retrieves the caller's favorited designs.
// GET /v1/favorites - Requires an approved account.
func (h *FavoriteHandler) ListHandler(c *gin.Context) {
	identity, ok := h.authorize(c, authDomain.ActionList)
	if !ok {
		return
	}

	page, err := httputil.ParsePage(c, h.defaultPerPage, h.maxPerPage)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	designs, total, err := h.favoriteUseCase.ListByUser(c.Request.Context(), identity.UserID, page.Offset(), page.PerPage)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDesignsResponse(designs, total, page))
}
