package pagination

import (
	"github.com/rshade/userdir/internal/listing"
)

// Meta contains metadata about a rendered page.
type Meta struct {
	CurrentPage int    `json:"current_page"    yaml:"current_page"`
	PageSize    int    `json:"page_size"       yaml:"page_size"`
	TotalPages  int    `json:"total_pages"     yaml:"total_pages"`
	TotalItems  int    `json:"total_items"     yaml:"total_items"`
	HasPrevious bool   `json:"has_previous"    yaml:"has_previous"`
	HasNext     bool   `json:"has_next"        yaml:"has_next"`
	Query       string `json:"query,omitempty" yaml:"query,omitempty"`
}

// NewMeta describes view for output. CurrentPage is 1-based, and 0 when
// there are no pages.
func NewMeta[T any](view listing.PageView[T], pageSize int, query string) Meta {
	current := 0
	if !view.IsEmpty() {
		current = view.PageIndex + 1
	}

	return Meta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  view.TotalPages,
		TotalItems:  view.TotalRecords,
		HasPrevious: view.HasPrevious,
		HasNext:     view.HasNext,
		Query:       query,
	}
}
