package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"   validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// UpstreamConfig describes the REST API that posts and comments are read from.
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// TimeoutSeconds of zero keeps the transport default (no client timeout).
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Timeout returns the outbound request timeout as a duration.
func (c UpstreamConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RateLimitConfig controls per-client inbound request throttling.
// A RequestsPerSecond of zero disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst"               validate:"gte=1"`
}

// Enabled reports whether inbound rate limiting is switched on.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}
