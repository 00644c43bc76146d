// Package users fetches the mock user directory that backs the list views.
//
// A Source is fetched exactly once, before any list controller is built.
// Sources never fail: transport errors, non-success statuses and malformed
// bodies are logged and reported as an empty directory.
package users
