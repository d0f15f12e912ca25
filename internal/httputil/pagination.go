package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page holds parsed pagination parameters for list endpoints.
type Page struct {
	Number  int
	PerPage int
}

// Offset returns the SQL offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// TotalPages returns the number of pages needed for total items.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	pages := total / p.PerPage
	if total%p.PerPage != 0 {
		pages++
	}
	return pages
}

// ParsePage safely parses and validates page and per_page query parameters.
// The per_page value cannot exceed maxPerPage.
func ParsePage(c *gin.Context, defaultPerPage, maxPerPage int) (Page, error) {
	pageStr := c.DefaultQuery("page", "1")
	number, err := strconv.Atoi(pageStr)
	if err != nil || number < 1 {
		return Page{}, fmt.Errorf("invalid page parameter: must be a positive integer")
	}

	perPageStr := c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage))
	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 || perPage > maxPerPage {
		return Page{}, fmt.Errorf("invalid per_page parameter: must be between 1 and %d", maxPerPage)
	}

	return Page{Number: number, PerPage: perPage}, nil
}
