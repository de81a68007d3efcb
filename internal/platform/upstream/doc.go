// Package upstream implements the client for the REST API that posts and
// comments are read from. It is the only package that performs outbound HTTP
// calls, and it is where upstream outcomes are classified: a 404 becomes a
// not-found domain.AppError for the requested post, and every other failure
// (non-success status, transport error, undecodable body) becomes the generic
// internal error. No call is retried.
package upstream
