package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/users"
)

// Pagination defaults and validation limits.
const (
	DefaultPage      = 1
	MinPage          = 1
	MinPageSize      = 1
	MaxPageSize      = config.MaxPageSize
	DefaultSortOrder = users.SortOrderAsc
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidMatch      = errors.New("match must be 'prefix' or 'contains'")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'last:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the list flags.
//
//nolint:revive // Params is read as pagination.Params at call sites.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of users per page; 0 means use the config.
	PageSize int

	// Query is the search text applied before paginating.
	Query string

	// Match is the search mode, "prefix" or "contains"; "" means use the config.
	Match string

	// Sort is a "field[:order]" expression; "" keeps arrival order.
	Sort string
}

// NewParams returns Params with default values.
func NewParams() *Params {
	return &Params{Page: DefaultPage}
}

// AddFlags registers the pagination flags on cmd, bound to p.
func (p *Params) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.Page, "page", DefaultPage, "page number to show (1-based)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "users per page (0 = use config list.page_size)")
	cmd.Flags().StringVarP(&p.Query, "query", "q", "", "search text; empty shows everyone")
	cmd.Flags().StringVar(&p.Match, "match", "", "search mode: prefix (first name) or contains (name and email)")
	cmd.Flags().StringVar(&p.Sort, "sort", "", "sort before paging: "+strings.Join(users.SortFields(), ", ")+
		" with optional :asc or :desc")
}

// Validate checks the flags for values that can never succeed.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize != 0 && (p.PageSize < MinPageSize || p.PageSize > MaxPageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Match != "" && p.Match != config.MatchPrefix && p.Match != config.MatchContains {
		return fmt.Errorf("%w: got %q", ErrInvalidMatch, p.Match)
	}
	if p.Sort != "" {
		field, _, err := ParseSort(p.Sort)
		if err != nil {
			return err
		}
		if !users.IsValidSortField(field) {
			return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(users.SortFields(), ", "))
		}
	}
	return nil
}

// PageIndex returns the 0-based page index.
func (p Params) PageIndex() int {
	return p.Page - 1
}

// EffectivePageSize returns PageSize, or fallback when it is unset.
func (p Params) EffectivePageSize(fallback int) int {
	if p.PageSize > 0 {
		return p.PageSize
	}
	return fallback
}

// EffectiveMatch returns Match, or fallback when it is unset.
func (p Params) EffectiveMatch(fallback string) string {
	if p.Match != "" {
		return p.Match
	}
	return fallback
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "last", "email:desc", "first:asc".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
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

	if order != users.SortOrderAsc && order != users.SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
