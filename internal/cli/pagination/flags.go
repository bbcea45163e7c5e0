package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Paging defaults and sort orders.
const (
	DefaultPage      = 1
	MinPage          = 1
	DefaultSortOrder = SortOrderAsc
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be >= 0")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'cost:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// Params holds the paging and sort flags.
type Params struct {
	// Page is the 1-based page to print.
	Page int

	// PageSize is the number of rows per page. Zero prints every row on a
	// single page.
	PageSize int

	// Sort is a sort expression, "field" or "field:order". Empty keeps the
	// input order.
	Sort string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{Page: DefaultPage}
}

// Validate checks the flag values (value receiver).
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if _, _, err := ParseSort(p.Sort); err != nil {
		return err
	}
	return nil
}

// Offset returns the index of the first row of the page.
func (p Params) Offset() int {
	if p.PageSize <= 0 || p.Page <= MinPage {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// An empty string means no sorting and returns an empty field.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
