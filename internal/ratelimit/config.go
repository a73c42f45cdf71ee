package ratelimit

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataKey is the key used to store rate limit config in operation
// metadata.
const MetadataKey = "rateLimit"

// LimitConfig defines one rate limit window.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// EndpointConfig defines per-endpoint rate limit configuration,
// attached to Huma operations via the Metadata field.
type EndpointConfig struct {
	// Limits defines custom rate limits for this endpoint. When empty,
	// the middleware falls back to the default limiter.
	Limits []LimitConfig

	// Disabled skips rate limiting entirely for this endpoint.
	Disabled bool
}

// GetEndpointConfig extracts the EndpointConfig from operation
// metadata, if present.
func GetEndpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}
