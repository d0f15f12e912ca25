package dto

import (
	"time"

	"github.com/google/uuid"
)

// DesignResponse represents a design in API responses
type DesignResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Category         string    `json:"category"`
	Style            string    `json:"style"`
	Colour           string    `json:"colour"`
	Fabric           string    `json:"fabric"`
	Occasion         string    `json:"occasion"`
	SizesAvailable   string    `json:"sizes_available"`
	PriceRange       string    `json:"price_range"`
	Tags             string    `json:"tags"`
	DesignerName     string    `json:"designer_name"`
	CollectionName   string    `json:"collection_name"`
	Season           string    `json:"season"`
	ImageURL         string    `json:"image_url"`
	Featured         bool      `json:"featured"`
	Status           string    `json:"status"`
	ViewCount        int       `json:"view_count"`
	LikeCount        int       `json:"like_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ListDesignsResponse represents a paginated list of designs
type ListDesignsResponse struct {
	Designs    []DesignResponse `json:"designs"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}

// FeaturedDesignsResponse represents the featured designs payload
type FeaturedDesignsResponse struct {
	Designs []DesignResponse `json:"designs"`
}
