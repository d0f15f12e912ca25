// Package http provides the administrative design image upload endpoints.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/httputil"
	"github.com/artfolio/gallery/internal/upload/usecase"
)

// UploadResponse represents a stored design image in API responses
type UploadResponse struct {
	ObjectKey string `json:"object_key"`
	ImageURL  string `json:"image_url"`
}

// ObjectResponse represents a bucket object in listings
type ObjectResponse struct {
	Key     string    `json:"key"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// ListObjectsResponse represents the bucket listing payload
type ListObjectsResponse struct {
	Objects []ObjectResponse `json:"objects"`
}

// UploadHandler handles design image upload requests. All routes require
// admin; the routing layer enforces that.
type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
	logger        *slog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadUseCase usecase.UploadUseCase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		logger:        logger,
	}
}

// CreateHandler stores a design image from a multipart form.
// POST /v1/admin/uploads - Requires admin.
// Expects a "file" part and an optional "category" form value.
func (h *UploadHandler) CreateHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer file.Close()

	result, err := h.uploadUseCase.Upload(c.Request.Context(), usecase.UploadInput{
		Category:    c.PostForm("category"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("image uploaded",
		slog.String("object_key", result.ObjectKey),
		slog.Int64("size", fileHeader.Size))

	c.JSON(http.StatusCreated, UploadResponse{
		ObjectKey: result.ObjectKey,
		ImageURL:  result.ImageURL,
	})
}

// GetURLHandler returns a fresh URL for a stored object.
// GET /v1/admin/uploads/url?key=... - Requires admin.
func (h *UploadHandler) GetURLHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "key parameter is required"), h.logger)
		return
	}

	url, err := h.uploadUseCase.ResolveURL(c.Request.Context(), key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{ObjectKey: key, ImageURL: url})
}

// ListHandler lists stored objects, optionally under a prefix.
// GET /v1/admin/uploads - Requires admin.
func (h *UploadHandler) ListHandler(c *gin.Context) {
	objects, err := h.uploadUseCase.List(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	items := make([]ObjectResponse, 0, len(objects))
	for _, obj := range objects {
		items = append(items, ObjectResponse{Key: obj.Key, Size: obj.Size, ModTime: obj.ModTime})
	}

	c.JSON(http.StatusOK, ListObjectsResponse{Objects: items})
}

// DeleteHandler removes a stored object.
// DELETE /v1/admin/uploads?key=... - Requires admin.
func (h *UploadHandler) DeleteHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "key parameter is required"), h.logger)
		return
	}

	if err := h.uploadUseCase.Delete(c.Request.Context(), key); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("image deleted", slog.String("object_key", key))

	c.Data(http.StatusNoContent, "application/json", nil)
}
