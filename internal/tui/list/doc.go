// Package listview provides a selectable row list for Bubble Tea views.
//
// The list holds the records of a single page, keeps a cursor clamped to
// the available rows across item replacements, and renders each row through
// a caller-supplied function.
package listview
