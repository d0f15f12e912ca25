package dto

import (
	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/httputil"
)

// ToDesignResponse converts a domain Design model to a DesignResponse DTO.
// The object key stays internal; clients only ever see the image URL.
func ToDesignResponse(design *domain.Design) DesignResponse {
	return DesignResponse{
		ID:               design.ID,
		Title:            design.Title,
		ShortDescription: design.ShortDescription,
		LongDescription:  design.LongDescription,
		Category:         design.Category,
		Style:            design.Style,
		Colour:           design.Colour,
		Fabric:           design.Fabric,
		Occasion:         design.Occasion,
		SizesAvailable:   design.SizesAvailable,
		PriceRange:       design.PriceRange,
		Tags:             design.Tags,
		DesignerName:     design.DesignerName,
		CollectionName:   design.CollectionName,
		Season:           design.Season,
		ImageURL:         design.ImageURL,
		Featured:         design.Featured,
		Status:           string(design.Status),
		ViewCount:        design.ViewCount,
		LikeCount:        design.LikeCount,
		CreatedAt:        design.CreatedAt,
		UpdatedAt:        design.UpdatedAt,
	}
}

// ToListDesignsResponse builds a paginated design list payload.
func ToListDesignsResponse(designs []*domain.Design, total int, page httputil.Page) ListDesignsResponse {
	items := make([]DesignResponse, 0, len(designs))
	for _, design := range designs {
		items = append(items, ToDesignResponse(design))
	}
	return ListDesignsResponse{
		Designs:    items,
		Total:      total,
		Page:       page.Number,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages(total),
	}
}

// ToFeaturedDesignsResponse builds the featured designs payload.
func ToFeaturedDesignsResponse(designs []*domain.Design) FeaturedDesignsResponse {
	items := make([]DesignResponse, 0, len(designs))
	for _, design := range designs {
		items = append(items, ToDesignResponse(design))
	}
	return FeaturedDesignsResponse{Designs: items}
}
