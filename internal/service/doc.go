// Package service implements the application layer between the HTTP handlers
// and the upstream client. It is a pass-through: the only decision it makes is
// whether a post is fetched with its comments expanded. Errors from the client
// are returned unchanged so their status, title and detail reach the HTTP edge
// intact.
package service
