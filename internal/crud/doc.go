// Package crud implements the generic resource-management controller every
// console view is built on.
//
// # Overview
//
// A Controller binds one resource's four REST operations (list, create,
// update, delete) to the interaction state a management view needs:
//
//   - the listing state: items, total, page, page size, filters
//   - the edit session: mode, draft, open/submitting flags
//
// Views construct a Controller with closures over a service from
// internal/services and optional hooks (default draft, validation, payload
// shaping, post-fetch transform), then drive it with FetchList, Search,
// ResetFilters, OpenCreate, OpenEdit, Submit, and Remove.
//
// # Guarantees
//
//   - FetchList replaces items and total atomically; a failed fetch leaves
//     the previous page visible.
//   - Search always lands on page 1 of the new filter results.
//   - The edit mode is fixed when the session opens: a create session never
//     calls update and vice versa.
//   - A failed submit keeps the session open with the draft exactly as the
//     user left it.
//   - Each list fetch carries a generation number; a response that arrives
//     after a newer fetch has started is discarded, so stale filters can
//     never overwrite fresh results.
//   - Every terminal outcome of FetchList, Submit, and Remove emits exactly
//     one notification, except FetchList success which is silent.
package crud
