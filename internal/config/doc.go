// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env and config files). It provides
// type-safe access to the server, upstream and rate limiting settings while keeping
// configuration details separate from request handling.
package config
