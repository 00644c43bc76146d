package users

import (
	"slices"
	"sort"
	"strings"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortKeys maps a sort field name to the value compared for it.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sortKeys = map[string]func(User) string{
	"first": FirstNameOf,
	"last":  LastNameOf,
	"email": EmailOf,
	"name":  FullNameOf,
}

// IsValidSortField reports whether users can be sorted by field.
func IsValidSortField(field string) bool {
	_, ok := sortKeys[field]
	return ok
}

// SortFields returns the valid sort field names in a stable order.
func SortFields() []string {
	fields := make([]string, 0, len(sortKeys))
	for field := range sortKeys {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of users. Comparison ignores case and is
// stable, so equal keys keep arrival order. An empty or unknown field
// returns the input unchanged.
func Sort(users []User, field, order string) []User {
	key, ok := sortKeys[field]
	if !ok {
		return users
	}

	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b User) int {
		c := strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted
}
