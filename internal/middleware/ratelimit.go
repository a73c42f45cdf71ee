package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ostrab/linkgate/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimiter returns a Huma middleware that limits requests per
// client. Endpoints can override behavior via ratelimit.MetadataKey
// operation metadata: disable limiting entirely, or declare custom
// per-window limits checked against the store. Without an override the
// default limiter applies.
func RateLimiter(
	api huma.API,
	limiter ratelimit.Limiter,
	store ratelimit.Store,
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if cfg := ratelimit.GetEndpointConfig(ctx); cfg != nil {
			if cfg.Disabled {
				next(ctx)

				return
			}

			if len(cfg.Limits) > 0 {
				if !checkEndpointLimits(api, ctx, store, cfg.Limits, logger) {
					return
				}

				next(ctx)

				return
			}
		}

		allowed, err := limiter.Allow(ctx.Context(), clientKey(ctx))
		if err != nil {
			logger.Error("rate limit check failed", zap.Error(err))
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

			return
		}

		if !allowed {
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "rate limit exceeded")

			return
		}

		next(ctx)
	}
}

// checkEndpointLimits applies the custom limits from endpoint config.
// Returns true if the request is allowed.
//
// The rate limit key uses the operation's route template (e.g.
// "/{code}"), so all requests matching the same route share counters
// per client regardless of specific path values.
func checkEndpointLimits(
	api huma.API,
	ctx huma.Context,
	store ratelimit.Store,
	limits []ratelimit.LimitConfig,
	logger *zap.Logger,
) bool {
	op := ctx.Operation()
	if op == nil {
		logger.Error("missing operation in context for rate limiting")
		_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error")

		return false
	}

	client := clientKey(ctx)

	for _, limit := range limits {
		key := fmt.Sprintf("%s:%s:%d", client, op.Path, limit.Window.Milliseconds())

		count, err := store.Record(ctx.Context(), key, limit.Window)
		if err != nil {
			logger.Error("rate limit check failed",
				zap.String("path", op.Path),
				zap.Error(err),
			)
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

			return false
		}

		if count > limit.Max {
			logger.Warn("rate limit exceeded",
				zap.String("path", op.Path),
				zap.String("method", ctx.Method()),
				zap.Int64("count", count),
				zap.Int64("max", limit.Max),
				zap.Duration("window", limit.Window),
			)

			msg := fmt.Sprintf("rate limit exceeded: %d/%d requests in %s",
				count, limit.Max, limit.Window)
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, msg)

			return false
		}
	}

	return true
}

// clientKey generates a rate limiting key from the client IP and
// User-Agent.
func clientKey(ctx huma.Context) string {
	ip := clientIP(ctx)
	ua := ctx.Header("User-Agent")

	hash := sha256.Sum256([]byte(ip + "|" + ua))

	return hex.EncodeToString(hash[:])
}

// clientIP extracts the client IP considering proxies, falling back to
// the host so direct connections still get distinct keys.
func clientIP(ctx huma.Context) string {
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	return ctx.Host()
}
