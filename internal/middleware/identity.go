package middleware

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/ostrab/linkgate/internal/handlers"
	"github.com/ostrab/linkgate/internal/shortener"
)

const (
	userHeader = "X-Auth-User"
	tierHeader = "X-Auth-Tier"
)

// Identity is a middleware that reads the identity asserted by the
// upstream authentication gateway. The gateway strips these headers
// from client traffic, so their presence means the identity is
// verified. Unknown tier values degrade to FREE.
func Identity(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		userID := ctx.Header(userHeader)
		if userID == "" {
			next(ctx)

			return
		}

		id := handlers.Identity{
			UserID: userID,
			Tier:   parseTier(ctx.Header(tierHeader)),
		}

		newCtx := handlers.ContextWithIdentity(ctx.Context(), id)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

func parseTier(raw string) shortener.Tier {
	if shortener.Tier(raw) == shortener.TierPremium {
		return shortener.TierPremium
	}

	return shortener.TierFree
}
