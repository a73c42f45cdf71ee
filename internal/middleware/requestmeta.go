package middleware

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ostrab/linkgate/internal/handlers"
)

// RequestMeta is a middleware that adds client IP, user-agent, and
// referrer to the request context for the resolve pipeline.
func RequestMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := handlers.RequestMeta{
			ClientIP:  extractClientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
			Referrer:  ctx.Header("Referer"),
		}

		newCtx := handlers.ContextWithRequestMeta(ctx.Context(), meta)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

// extractClientIP resolves the client address behind proxies: the first
// X-Forwarded-For entry, then X-Real-IP, then empty. No fallback to the
// socket address; an unknown client stays unknown in analytics.
func extractClientIP(ctx huma.Context) string {
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	return ""
}
