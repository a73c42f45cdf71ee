package analytics

import (
	"context"
	"time"
)

// Store persists and aggregates click events. Events are insert-only;
// nothing in this module mutates or deletes them.
type Store interface {
	SaveClick(ctx context.Context, event *ClickEvent) error
	CountClicks(ctx context.Context, code string) (int64, error)

	// LastClick returns the time of the most recent click for a code,
	// or nil when the code has never been clicked.
	LastClick(ctx context.Context, code string) (*time.Time, error)
}
