// Package domain contains the entities served by the API (posts and comments)
// and the error values that classify failures. AppError carries the status,
// title and detail needed to render a problem detail response without any
// further lookup, so the HTTP edge never parses error strings.
package domain
