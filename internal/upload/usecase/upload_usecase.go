// Package usecase implements the design image upload business logic.
package usecase

import (
	"context"
	"io"
	"time"

	"github.com/artfolio/gallery/internal/errors"
	"github.com/artfolio/gallery/internal/storage"
)

// Image uploads are served to mobile clients; only the formats every
// supported device renders are accepted.
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Upload errors.
var (
	ErrUnsupportedFormat = errors.Wrap(errors.ErrInvalidInput, "unsupported image format")
	ErrFileTooLarge      = errors.Wrap(errors.ErrInvalidInput, "file exceeds the maximum upload size")
	ErrEmptyFile         = errors.Wrap(errors.ErrInvalidInput, "file is empty")
)

// UploadInput describes an incoming design image.
type UploadInput struct {
	Category    string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadResult holds the stored object's key and the URL clients use to
// fetch it.
type UploadResult struct {
	ObjectKey string
	ImageURL  string
}

// Store abstracts the blob store operations the upload flow needs.
type Store interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// UploadUseCase defines the interface for upload business logic operations
type UploadUseCase interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	ResolveURL(ctx context.Context, key string) (string, error)
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	Delete(ctx context.Context, key string) error
}

// uploadUseCase handles upload business logic
type uploadUseCase struct {
	store     Store
	maxBytes  int64
	urlExpiry time.Duration
}

// NewUploadUseCase creates a new UploadUseCase. maxBytes caps the accepted
// file size; urlExpiry bounds the lifetime of returned image URLs.
func NewUploadUseCase(store Store, maxBytes int64, urlExpiry time.Duration) UploadUseCase {
	return &uploadUseCase{
		store:     store,
		maxBytes:  maxBytes,
		urlExpiry: urlExpiry,
	}
}

// Upload validates and stores a design image, returning the object key and
// a URL for it. The size check happens before any bytes reach the bucket.
func (uc *uploadUseCase) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if _, ok := allowedContentTypes[input.ContentType]; !ok {
		return nil, ErrUnsupportedFormat
	}
	if input.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if input.Size > uc.maxBytes {
		return nil, ErrFileTooLarge
	}

	key := storage.BuildKey(input.Category, input.Filename)

	// Guard against clients lying about Content-Length.
	limited := io.LimitReader(input.Content, uc.maxBytes+1)
	if err := uc.store.Upload(ctx, key, input.ContentType, limited); err != nil {
		return nil, err
	}

	url, err := uc.store.SignedURL(ctx, key, uc.urlExpiry)
	if err != nil {
		return nil, err
	}

	return &UploadResult{ObjectKey: key, ImageURL: url}, nil
}

// ResolveURL returns a fresh URL for an existing object.
func (uc *uploadUseCase) ResolveURL(ctx context.Context, key string) (string, error) {
	exists, err := uc.store.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errors.Wrap(errors.ErrNotFound, "object not found")
	}
	return uc.store.SignedURL(ctx, key, uc.urlExpiry)
}

// List returns the stored objects under prefix.
func (uc *uploadUseCase) List(ctx context.Context, prefix string) ([]storage.Object, error) {
	return uc.store.List(ctx, prefix)
}

// Delete removes a stored object.
func (uc *uploadUseCase) Delete(ctx context.Context, key string) error {
	return uc.store.Delete(ctx, key)
}
