package shortener

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("link not found")

// Repository defines the interface for link storage operations.
type Repository interface {
	Save(ctx context.Context, link *Link) error
	GetByCode(ctx context.Context, code Code) (*Link, error)

	// GetByHash retrieves an existing link for a given URL hash.
	// Used by the hash strategy to enable deduplication.
	GetByHash(ctx context.Context, hash URLHash) (*Link, error)

	// Delete removes a link permanently. Returns ErrNotFound when no
	// link with the given code exists.
	Delete(ctx context.Context, code Code) error
}
