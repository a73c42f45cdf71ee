package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ostrab/linkgate/internal/analytics"
	"github.com/ostrab/linkgate/internal/messaging"
	"github.com/ostrab/linkgate/internal/shortener"
	"go.uber.org/zap"
)

// Pipeline resolves a short code into a single Outcome: one lookup, one
// evaluation, and at most one click record attempt. It holds no state
// between visits.
type Pipeline struct {
	repo   shortener.Repository
	record messaging.Publish[analytics.ClickEvent]
	now    func() time.Time
	logger *zap.Logger
}

// NewPipeline creates a new redirect decision pipeline. A nil clock
// defaults to time.Now.
func NewPipeline(
	repo shortener.Repository,
	record messaging.Publish[analytics.ClickEvent],
	clock func() time.Time,
	logger *zap.Logger,
) *Pipeline {
	if clock == nil {
		clock = time.Now
	}

	return &Pipeline{
		repo:   repo,
		record: record,
		now:    clock,
		logger: logger,
	}
}

// Resolve classifies the visit and, if and only if the outcome is a
// redirect, records one click. A failed record is logged and dropped:
// the redirect is never blocked on analytics. Lookup failures resolve
// as NotFound rather than surfacing a storage error to the visitor.
func (p *Pipeline) Resolve(ctx context.Context, req Request) Outcome {
	link, err := p.repo.GetByCode(ctx, req.Code)
	if err != nil {
		if !errors.Is(err, shortener.ErrNotFound) {
			p.logger.Error("link lookup failed",
				zap.String("code", string(req.Code)),
				zap.Error(err),
			)
		}

		link = nil
	}

	outcome := Evaluate(link, p.now(), req)
	if outcome.Kind != OutcomeRedirect {
		return outcome
	}

	event := &analytics.ClickEvent{
		ID:        uuid.NewString(),
		Code:      string(req.Code),
		Timestamp: p.now(),
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
	}

	if err := p.record(event); err != nil {
		p.logger.Error("failed to record click",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	return outcome
}
