package listing

import (
	"fmt"
	"slices"
)

// FilterFunc reports whether record matches query. It must be pure.
type FilterFunc[T any] func(record T, query string) bool

// IDFunc extracts the unique identifier of a record.
type IDFunc[T any, K comparable] func(record T) K

// Controller owns a record collection and its filtered, paginated views.
// All state transitions go through SetFilter, GoToPage, NextPage,
// PreviousPage and DeleteRecord.
type Controller[T any, K comparable] struct {
	records  []T
	query    string
	pageSize int
	filterFn FilterFunc[T]
	idFn     IDFunc[T, K]

	// derived from (records, query, pageSize) by recompute
	filtered []T
	pages    [][]T
	current  int
}

// New builds a controller over a copy of records, positioned on the first
// page with no active query. It returns an error wrapping ErrConfig when
// pageSize is not positive or a function argument is nil.
func New[T any, K comparable](
	records []T,
	pageSize int,
	filterFn FilterFunc[T],
	idFn IDFunc[T, K],
) (*Controller[T, K], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrConfig, pageSize)
	}
	if filterFn == nil {
		return nil, fmt.Errorf("%w: filter function is required", ErrConfig)
	}
	if idFn == nil {
		return nil, fmt.Errorf("%w: id function is required", ErrConfig)
	}

	c := &Controller[T, K]{
		records:  slices.Clone(records),
		pageSize: pageSize,
		filterFn: filterFn,
		idFn:     idFn,
	}
	c.recompute()
	return c, nil
}

// View returns the current page without changing any state.
func (c *Controller[T, K]) View() PageView[T] {
	return newPageView(c.pages, c.current, len(c.filtered))
}

// SetFilter replaces the active query and returns to the first page.
// An empty query disables filtering.
func (c *Controller[T, K]) SetFilter(query string) PageView[T] {
	c.query = query
	c.recompute()
	c.current = 0
	return c.View()
}

// GoToPage moves to the page at index. With zero pages every index yields the
// empty view; otherwise an index outside [0, TotalPages) returns an error
// wrapping ErrOutOfRange and leaves the current page unchanged.
func (c *Controller[T, K]) GoToPage(index int) (PageView[T], error) {
	if len(c.pages) == 0 {
		return c.View(), nil
	}
	if index < 0 || index >= len(c.pages) {
		return c.View(), fmt.Errorf("%w: page %d requested, %d pages available",
			ErrOutOfRange, index, len(c.pages))
	}

	c.current = index
	return c.View(), nil
}

// NextPage advances one page, staying on the last page at the boundary.
func (c *Controller[T, K]) NextPage() PageView[T] {
	if c.current < len(c.pages)-1 {
		c.current++
	}
	return c.View()
}

// PreviousPage goes back one page, staying on the first page at the boundary.
func (c *Controller[T, K]) PreviousPage() PageView[T] {
	if c.current > 0 {
		c.current--
	}
	return c.View()
}

// DeleteRecord removes the record identified by id, re-applies the active
// query and clamps the current page. Unknown ids are ignored.
func (c *Controller[T, K]) DeleteRecord(id K) PageView[T] {
	c.records = slices.DeleteFunc(c.records, func(r T) bool {
		return c.idFn(r) == id
	})
	c.recompute()
	c.current = max(0, min(c.current, len(c.pages)-1))
	return c.View()
}

// Query returns the active query.
func (c *Controller[T, K]) Query() string {
	return c.query
}

// PageSize returns the fixed page size.
func (c *Controller[T, K]) PageSize() int {
	return c.pageSize
}

// Len returns the number of records, ignoring the query.
func (c *Controller[T, K]) Len() int {
	return len(c.records)
}

// FilteredLen returns the number of records matching the active query.
func (c *Controller[T, K]) FilteredLen() int {
	return len(c.filtered)
}

func (c *Controller[T, K]) recompute() {
	c.filtered = filter(c.records, c.query, c.filterFn)
	c.pages = Paginate(c.filtered, c.pageSize)
}
