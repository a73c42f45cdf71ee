package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ostrab/linkgate/internal/resolver"
	"github.com/ostrab/linkgate/internal/shortener"
)

// ResolveHandler maps pipeline outcomes onto HTTP renderings.
type ResolveHandler struct {
	pipeline     *resolver.Pipeline
	delaySeconds int
}

// NewResolveHandler creates a new resolve handler.
func NewResolveHandler(pipeline *resolver.Pipeline, delaySeconds int) *ResolveHandler {
	return &ResolveHandler{
		pipeline:     pipeline,
		delaySeconds: delaySeconds,
	}
}

// Resolve classifies a visit to a short code. The pipeline never
// returns an error; every visit resolves to one of four renderings.
func (h *ResolveHandler) Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResponse, error) {
	meta := RequestMetaFromContext(ctx)

	outcome := h.pipeline.Resolve(ctx, resolver.Request{
		Code:      shortener.Code(req.Code),
		Password:  req.Password,
		Direct:    req.Direct == "true",
		UserAgent: meta.UserAgent,
		IPAddress: meta.ClientIP,
		Referer:   meta.Referrer,
	})

	switch outcome.Kind {
	case resolver.OutcomeNotFound:
		return nil, huma.Error404NotFound("short link not found")

	case resolver.OutcomeExpired:
		return nil, huma.NewError(http.StatusGone, "short link expired")

	case resolver.OutcomePasswordRequired:
		resp := &ResolveResponse{Status: http.StatusUnauthorized}
		resp.Body.PasswordRequired = true
		resp.Body.Error = outcome.PasswordError

		return resp, nil
	}

	if !outcome.ViaInterstitial {
		resp := &ResolveResponse{Status: http.StatusFound}
		resp.Headers.Location = outcome.URL

		return resp, nil
	}

	resp := &ResolveResponse{Status: http.StatusOK}
	resp.Body.TargetURL = outcome.URL
	resp.Body.DelaySeconds = h.delaySeconds
	resp.Body.Title = outcome.Title
	resp.Body.Description = outcome.Description

	return resp, nil
}
