// Package storage wraps the blob bucket holding design images behind a
// small store interface using gocloud.dev/blob.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/artfolio/gallery/internal/errors"

	// Register the bucket drivers
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Store provides access to the design image bucket.
type Store struct {
	bucket *blob.Bucket
}

// NewStore opens the bucket at bucketURL.
// Supports: s3://, file://, mem://
func NewStore(ctx context.Context, bucketURL string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrConfig, "failed to open bucket %q: %v", bucketURL, err)
	}
	return &Store{bucket: bucket}, nil
}

// Close releases the bucket resources.
func (s *Store) Close() error {
	return s.bucket.Close()
}

// BuildKey produces the object key for a new design image. Keys are
// namespaced by category so bucket listings group related designs.
func BuildKey(category, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "uncategorized"
	}
	return fmt.Sprintf("designs/%s/%s%s", category, uuid.Must(uuid.NewV7()), ext)
}

// Upload writes the object under key with the given content type.
func (s *Store) Upload(ctx context.Context, key, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return apperrors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return apperrors.Wrap(err, "failed to write object")
	}
	return w.Close()
}

// Delete removes the object under key. Deleting a missing object is not
// an error: the caller only cares that the object is gone.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return apperrors.Wrap(err, "failed to delete object")
	}
	return nil
}

// Exists reports whether an object is stored under key.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check object existence")
	}
	return exists, nil
}

// Object describes a stored object.
type Object struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// List returns the objects stored under prefix, in key order.
func (s *Store) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to list objects")
		}
		objects = append(objects, Object{Key: obj.Key, Size: obj.Size, ModTime: obj.ModTime})
	}
	return objects, nil
}

// SignedURL returns a time-limited URL for reading the object. Buckets
// without a signer (local file and in-memory) fall back to the key itself
// so development setups can serve objects through the app.
func (s *Store) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: expiry})
	if err != nil {
		if gcerrors.Code(err) == gcerrors.Unimplemented {
			return "/" + key, nil
		}
		return "", apperrors.Wrap(err, "failed to sign object URL")
	}
	return url, nil
}
