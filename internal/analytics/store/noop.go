package store

import (
	"context"
	"time"

	"github.com/ostrab/linkgate/internal/analytics"
	"go.uber.org/zap"
)

// Noop is an analytics.Store that only logs events. Useful for local
// runs without a database.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveClick(_ context.Context, event *analytics.ClickEvent) error {
	n.logger.Info("click event received",
		zap.String("code", event.Code),
		zap.Time("timestamp", event.Timestamp),
		zap.String("referer", event.Referer),
	)

	return nil
}

func (n *Noop) CountClicks(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (n *Noop) LastClick(_ context.Context, _ string) (*time.Time, error) {
	return nil, nil
}
