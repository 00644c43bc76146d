// Package listing provides a paginated, filterable list controller.
//
// A Controller owns an ordered collection of records and derives two views
// from it: the records matching the active query, and that filtered slice
// split into fixed-size pages. Every mutating operation returns a PageView,
// the snapshot a presentation layer renders:
//   - SetFilter: replace the query and start again at the first page
//   - GoToPage: explicit navigation, rejecting out-of-range indices
//   - NextPage / PreviousPage: saturating navigation
//   - DeleteRecord: idempotent removal that keeps the active query
//
// Pages are recomputed from (records, query, page size) on every change, so
// the paginated view never drifts from the underlying records. The controller
// is synchronous and not safe for concurrent use.
package listing
