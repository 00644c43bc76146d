// Package tui implements the interactive user directory browser.
//
// BrowseModel is a Bubble Tea model that fetches the directory once, builds
// a listing.Controller over it and renders the controller's PageView: a
// search box, one page of users and previous/next affordances that are
// dimmed exactly when the view reports no previous or next page.
package tui
