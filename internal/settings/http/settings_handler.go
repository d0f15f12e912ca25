// Package http provides HTTP handlers for the application settings.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artfolio/gallery/internal/httputil"
	"github.com/artfolio/gallery/internal/settings/http/dto"
	"github.com/artfolio/gallery/internal/settings/usecase"
)

// SettingsHandler handles application settings requests.
type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
	logger          *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
		logger:          logger,
	}
}

// GetHandler returns the current application settings.
// GET /v1/settings - Public, so clients can check maintenance mode and
// version before login.
func (h *SettingsHandler) GetHandler(c *gin.Context) {
	settings, err := h.settingsUseCase.Get(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// UpdateHandler applies partial changes to the application settings.
// PATCH /v1/admin/settings - Requires admin.
func (h *SettingsHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	settings, err := h.settingsUseCase.Update(c.Request.Context(), dto.ToUpdateSettingsInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("settings updated")

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
