package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ostrab/linkgate/internal/ratelimit"
)

// RegisterRoutes registers all link routes with per-endpoint rate limit
// configuration.
func RegisterRoutes(api huma.API, linkHandler *LinkHandler, resolveHandler *ResolveHandler) {
	// POST /shorten - stricter limits for write operations
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/shorten",
		Summary:     "Create short link",
		Description: "Creates a shortened link, optionally password-protected or expiring.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
					{Window: time.Hour, Max: 100},
					{Window: 24 * time.Hour, Max: 500},
				},
			},
		},
	}, linkHandler.CreateLink)

	// GET /{code} - relaxed limits for the high-traffic resolve path
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Resolve short link",
		Description: "Redirects to the original URL, renders the interstitial payload, or prompts for a password.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, resolveHandler.Resolve)

	huma.Register(api, huma.Operation{
		Method:        http.MethodDelete,
		Path:          "/links/{code}",
		Summary:       "Delete link",
		Description:   "Permanently deletes a link. Owner only.",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusNoContent,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 30},
				},
			},
		},
	}, linkHandler.DeleteLink)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/links/{code}/stats",
		Summary:     "Link click statistics",
		Description: "Returns the click count and last click time for a link.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 60},
				},
			},
		},
	}, linkHandler.LinkStats)
}
