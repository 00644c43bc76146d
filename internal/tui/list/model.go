package listview

import (
	"strings"
)

// RenderFunc is a function that renders an item.
// The selected parameter indicates whether this item is under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a cursor over a small list of rows.
type Model[T any] struct {
	// items contains the rows currently shown
	items []T

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// selected is the cursor position (0-based)
	selected int
}

// New creates an empty list that renders rows with renderFunc.
func New[T any](renderFunc RenderFunc[T]) *Model[T] {
	return &Model[T]{renderFunc: renderFunc}
}

// SetItems replaces the rows, keeping the cursor on the same position when
// it still exists and on the last row otherwise.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.Select(m.selected)
}

// Select moves the cursor to index, capping to valid bounds.
func (m *Model[T]) Select(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
}

// MoveUp moves the cursor up one row, stopping at the first row.
func (m *Model[T]) MoveUp() {
	m.Select(m.selected - 1)
}

// MoveDown moves the cursor down one row, stopping at the last row.
func (m *Model[T]) MoveDown() {
	m.Select(m.selected + 1)
}

// Selected returns the cursor position.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the row under the cursor.
// The boolean is false when the list is empty.
func (m *Model[T]) SelectedItem() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.selected], true
}

// ItemCount returns the number of rows.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// View renders every row, one per line.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, item := range m.items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderFunc(item, i == m.selected))
	}
	return sb.String()
}
