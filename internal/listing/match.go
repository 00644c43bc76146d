package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// PrefixFold matches records whose field starts with the query, ignoring
// case. Both sides are Unicode case folded.
func PrefixFold[T any](field func(T) string) FilterFunc[T] {
	return func(record T, query string) bool {
		return strings.HasPrefix(fold(field(record)), fold(query))
	}
}

// ContainsFold matches records where any of the fields contains the query,
// ignoring case.
func ContainsFold[T any](fields ...func(T) string) FilterFunc[T] {
	return func(record T, query string) bool {
		q := fold(query)
		for _, field := range fields {
			if strings.Contains(fold(field(record)), q) {
				return true
			}
		}
		return false
	}
}

// fold builds a fresh caser per call; cases.Caser is stateful and not safe
// for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
