// Package http provides HTTP handlers for browsing the design catalog and
// the administrative design management endpoints.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/catalog/http/dto"
	"github.com/artfolio/gallery/internal/catalog/usecase"
	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/httputil"
)

// DesignHandler handles design catalog requests.
type DesignHandler struct {
	designUseCase  usecase.DesignUseCase
	defaultPerPage int
	maxPerPage     int
	featuredCount  int
	logger         *slog.Logger
}

// NewDesignHandler creates a new DesignHandler. featuredCount caps the
// featured designs endpoint when no limit is given.
func NewDesignHandler(
	designUseCase usecase.DesignUseCase,
	defaultPerPage, maxPerPage, featuredCount int,
	logger *slog.Logger,
) *DesignHandler {
	return &DesignHandler{
		designUseCase:  designUseCase,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
		featuredCount:  featuredCount,
		logger:         logger,
	}
}

// parseFilter reads the catalog filter from query parameters. Listings
// default to active designs; archived ones must be asked for explicitly.
func parseFilter(c *gin.Context) (domain.Filter, error) {
	filter := domain.Filter{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Style:      c.Query("style"),
		Colour:     c.Query("colour"),
		Fabric:     c.Query("fabric"),
		Occasion:   c.Query("occasion"),
		Designer:   c.Query("designer"),
		Collection: c.Query("collection"),
		Season:     c.Query("season"),
		Status:     domain.DesignStatus(c.DefaultQuery("status", string(domain.DesignStatusActive))),
	}
	if !filter.Status.Valid() {
		return domain.Filter{}, domain.ErrInvalidStatus
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			return domain.Filter{}, apperrors.Wrap(apperrors.ErrInvalidInput, "featured must be true or false")
		}
		filter.Featured = &featured
	}
	return filter, nil
}

// ListHandler retrieves designs matching the query filters.
// GET /v1/designs - Requires authentication.
// Supports q, category, style, colour, fabric, occasion, designer,
// collection, season, featured, and status filters plus pagination.
func (h *DesignHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c, h.defaultPerPage, h.maxPerPage)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter, err := parseFilter(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	designs, total, err := h.designUseCase.List(c.Request.Context(), filter, page.Offset(), page.PerPage)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListDesignsResponse(designs, total, page))
}

// FeaturedHandler retrieves the featured designs.
// GET /v1/designs/featured - Requires authentication.
func (h *DesignHandler) FeaturedHandler(c *gin.Context) {
	limit := h.featuredCount
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > h.maxPerPage {
			httputil.HandleErrorGin(c,
				apperrors.Wrap(apperrors.ErrInvalidInput, "invalid limit parameter"), h.logger)
			return
		}
		limit = parsed
	}

	designs, err := h.designUseCase.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToFeaturedDesignsResponse(designs))
}

// GetHandler retrieves a single design and records the view.
// GET /v1/designs/:id - Requires authentication.
func (h *DesignHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid design id"), h.logger)
		return
	}

	design, err := h.designUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDesignResponse(design))
}

// CreateHandler adds a new design to the catalog.
// POST /v1/designs - Requires admin.
func (h *DesignHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	design, err := h.designUseCase.Create(c.Request.Context(), dto.ToCreateDesignInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("design created",
		slog.String("design_id", design.ID.String()),
		slog.String("title", design.Title))

	c.JSON(http.StatusCreated, dto.ToDesignResponse(design))
}

// UpdateHandler applies partial changes to a design.
// PATCH /v1/designs/:id - Requires admin.
func (h *DesignHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid design id"), h.logger)
		return
	}

	var req dto.UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	design, err := h.designUseCase.Update(c.Request.Context(), id, dto.ToUpdateDesignInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("design updated", slog.String("design_id", design.ID.String()))

	c.JSON(http.StatusOK, dto.ToDesignResponse(design))
}

// DeleteHandler removes a design, its favorite links, and its stored image.
// DELETE /v1/designs/:id - Requires admin.
func (h *DesignHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid design id"), h.logger)
		return
	}

	if err := h.designUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("design deleted", slog.String("design_id", id.String()))

	c.Data(http.StatusNoContent, "application/json", nil)
}
