// Package api handles incoming HTTP requests for posts and comments. It
// parses and validates path and query parameters, calls the post service,
// and is the only layer that turns errors into problem detail responses.
package api
