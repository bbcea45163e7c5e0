package pagination

import (
	"fmt"
	"math"
)

// Meta describes where a printed page sits inside the dataset.
type Meta struct {
	CurrentPage int `json:"current_page" yaml:"current_page"`
	PageSize    int `json:"page_size"    yaml:"page_size"`
	TotalPages  int `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int `json:"total_items"  yaml:"total_items"`

	// FirstItem and LastItem are the 1-based bounds of the rows actually
	// shown; both are zero when the page is past the end.
	FirstItem int `json:"first_item" yaml:"first_item"`
	LastItem  int `json:"last_item"  yaml:"last_item"`

	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates page metadata from the parameters and the number of rows
// the page actually showed.
func NewMeta(params Params, totalCount, shown int) Meta {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = totalCount
	}
	page := max(params.Page, MinPage)

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	m := Meta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
	if shown > 0 {
		m.FirstItem = params.Offset() + 1
		m.LastItem = params.Offset() + shown
	}
	return m
}

// Paged reports whether the dataset spans more than one page.
func (m Meta) Paged() bool {
	return m.TotalPages > 1 || m.CurrentPage > 1
}

// String renders the footer printed under a page.
func (m Meta) String() string {
	if m.LastItem == 0 {
		return fmt.Sprintf("page %d of %d, no rows (%d total)", m.CurrentPage, m.TotalPages, m.TotalItems)
	}
	return fmt.Sprintf("page %d of %d, rows %d-%d of %d",
		m.CurrentPage, m.TotalPages, m.FirstItem, m.LastItem, m.TotalItems)
}
