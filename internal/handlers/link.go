package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ostrab/linkgate/internal/analytics"
	"github.com/ostrab/linkgate/internal/shortener"
	"go.uber.org/zap"
)

// LinkHandler handles link creation, deletion, and stats.
type LinkHandler struct {
	store           shortener.Repository
	clicks          analytics.Store
	strategies      map[Strategy]shortener.Strategy
	baseURL         string
	defaultStrategy Strategy
	logger          *zap.Logger
}

// NewLinkHandler creates a new link handler with injected strategies.
func NewLinkHandler(
	store shortener.Repository,
	clicks analytics.Store,
	strategies map[Strategy]shortener.Strategy,
	baseURL string,
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		store:           store,
		clicks:          clicks,
		strategies:      strategies,
		baseURL:         baseURL,
		defaultStrategy: StrategyToken,
		logger:          logger,
	}
}

func (h *LinkHandler) CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error) {
	strategyName := req.Body.Strategy
	if strategyName == "" {
		strategyName = h.defaultStrategy
	}

	strategy, ok := h.strategies[strategyName]
	if !ok {
		return nil, huma.Error400BadRequest("invalid strategy: must be 'token' or 'hash'")
	}

	if req.Body.ExpiresAt != nil && req.Body.ExpiresAt.Before(time.Now()) {
		return nil, huma.Error400BadRequest("expiresAt must be in the future")
	}

	params := shortener.CreateParams{
		Password:    req.Body.Password,
		ExpiresAt:   req.Body.ExpiresAt,
		Title:       req.Body.Title,
		Description: req.Body.Description,
	}

	identity := IdentityFromContext(ctx)
	if !identity.Anonymous() {
		userID := identity.UserID
		params.OwnerID = &userID
		params.OwnerTier = identity.Tier
	}

	link, err := strategy.Shorten(ctx, req.Body.URL, params)
	if err != nil {
		h.logger.Error("failed to create link", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to save link")
	}

	fullShortURL := fmt.Sprintf("%s/%s", h.baseURL, link.Code)

	resp := &CreateLinkResponse{}
	resp.Headers.Location = fullShortURL
	resp.Body.Code = string(link.Code)
	resp.Body.ShortURL = fullShortURL
	resp.Body.OriginalURL = link.OriginalURL
	resp.Body.ExpiresAt = link.ExpiresAt
	resp.Body.PasswordProtected = link.PasswordHash != nil

	return resp, nil
}

// DeleteLink permanently removes a link. Only the owner may delete;
// anonymous links have no owner and cannot be deleted through the API.
func (h *LinkHandler) DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*struct{}, error) {
	link, err := h.store.GetByCode(ctx, shortener.Code(req.Code))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short link not found")
		}

		return nil, huma.Error500InternalServerError("failed to get link")
	}

	identity := IdentityFromContext(ctx)
	if link.OwnerID == nil || identity.Anonymous() || *link.OwnerID != identity.UserID {
		return nil, huma.Error403Forbidden("not the link owner")
	}

	if err := h.store.Delete(ctx, link.Code); err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short link not found")
		}

		h.logger.Error("failed to delete link",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to delete link")
	}

	return &struct{}{}, nil
}

func (h *LinkHandler) LinkStats(ctx context.Context, req *LinkStatsRequest) (*LinkStatsResponse, error) {
	if _, err := h.store.GetByCode(ctx, shortener.Code(req.Code)); err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short link not found")
		}

		return nil, huma.Error500InternalServerError("failed to get link")
	}

	count, err := h.clicks.CountClicks(ctx, req.Code)
	if err != nil {
		h.logger.Error("failed to count clicks",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to load stats")
	}

	last, err := h.clicks.LastClick(ctx, req.Code)
	if err != nil {
		h.logger.Error("failed to load last click",
			zap.String("code", req.Code),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to load stats")
	}

	resp := &LinkStatsResponse{}
	resp.Body.Code = req.Code
	resp.Body.TotalClicks = count
	resp.Body.LastClickAt = last

	return resp, nil
}
