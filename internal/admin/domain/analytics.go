// Package domain defines the administrative analytics entities.
package domain

import (
	catalogDomain "github.com/artfolio/gallery/internal/catalog/domain"
)

// CategoryCount is the number of designs in a category.
type CategoryCount struct {
	Category string
	Count    int
}

// DesignTotals aggregates the catalog counters.
type DesignTotals struct {
	Total      int
	Featured   int
	TotalViews int64
	TotalLikes int64
}

// Analytics is the admin dashboard snapshot.
type Analytics struct {
	TotalUsers      int
	PendingUsers    int
	ApprovedUsers   int
	TotalDesigns    int
	FeaturedDesigns int
	TotalViews      int64
	TotalLikes      int64
	TopCategories   []CategoryCount
	RecentDesigns   []*catalogDomain.Design
}
