package handlers

import (
	"context"

	"github.com/ostrab/linkgate/internal/shortener"
)

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata for analytics.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

type identityKey struct{}

// Identity is the authenticated account asserted by the upstream
// gateway. A zero UserID means the request is anonymous.
type Identity struct {
	UserID string
	Tier   shortener.Tier
}

// Anonymous reports whether no verified identity accompanies the request.
func (id Identity) Anonymous() bool {
	return id.UserID == ""
}

// ContextWithIdentity adds the caller identity to context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the caller identity from context.
func IdentityFromContext(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey{}).(Identity); ok {
		return v
	}

	return Identity{}
}
