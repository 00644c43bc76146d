// Package logging builds the zerolog loggers used across userdir.
//
// Loggers are configured from a Config (level, console or JSON format,
// stderr or file output), carried through a context.Context, and tagged with
// a per-invocation trace ID so all lines of one command can be correlated.
package logging
