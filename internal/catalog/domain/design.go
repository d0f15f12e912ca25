// Package domain defines the catalog domain entities: designs and the
// favorite links users attach to them.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/errors"
)

// DesignStatus tracks a design's lifecycle in the catalog.
type DesignStatus string

const (
	DesignStatusActive   DesignStatus = "active"
	DesignStatusArchived DesignStatus = "archived"
)

// Valid reports whether the status is one of the known values.
func (s DesignStatus) Valid() bool {
	switch s {
	case DesignStatusActive, DesignStatusArchived:
		return true
	}
	return false
}

// Design is a catalog entry. Designs are created and mutated only by
// administrators; standard users read and favorite them.
type Design struct {
	ID               uuid.UUID
	Title            string
	ShortDescription string
	LongDescription  string
	Category         string
	Style            string
	Colour           string
	Fabric           string
	Occasion         string
	SizesAvailable   string
	PriceRange       string
	Tags             string
	DesignerName     string
	CollectionName   string
	Season           string
	ObjectKey        string
	ImageURL         string
	Featured         bool
	Status           DesignStatus
	ViewCount        int
	LikeCount        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Favorite links a user to a design they saved. Ownership is fixed at
// creation: the owner is always the favoriting user.
type Favorite struct {
	UserID    uuid.UUID
	DesignID  uuid.UUID
	CreatedAt time.Time
}

// Filter narrows design listings. Zero-valued fields are ignored.
type Filter struct {
	// Query matches against title, descriptions, tags, and designer name.
	Query      string
	Category   string
	Style      string
	Colour     string
	Fabric     string
	Occasion   string
	Designer   string
	Collection string
	Season     string
	Featured   *bool
	Status     DesignStatus
}

// Domain-specific errors for catalog operations.
var (
	// ErrDesignNotFound indicates the requested design does not exist.
	ErrDesignNotFound = errors.Wrap(errors.ErrNotFound, "design not found")

	// ErrFavoriteAlreadyExists indicates the user already favorited the design.
	ErrFavoriteAlreadyExists = errors.Wrap(errors.ErrConflict, "design already favorited")

	// ErrInvalidStatus indicates a design status outside the known set.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid design status")
)
