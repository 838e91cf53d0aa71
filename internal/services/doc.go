// Package services contains one thin client per push-notify resource.
//
// Each service is a flat set of methods mapping a verb and path onto the
// API client: repos, targets, templates, prompts, models, users, pushes,
// logs, and auth. Services hold no state beyond the client reference and
// perform no validation — the server is the source of truth and the CRUD
// controller owns the interaction flow.
//
// List endpoints share the uniform page shape:
//
//	{"list": [...], "pagination": {"page": 1, "size": 10, "total": 42, "total_pages": 5}}
//
// which decodes into ListPage[T].
package services
