package shortener

import "time"

// Code represents a short link code. Lookups are case-sensitive.
type Code string

// URLHash represents a hash of a normalized URL.
type URLHash string

// Tier classifies the account that owns a link.
type Tier string

const (
	TierFree    Tier = "FREE"
	TierPremium Tier = "PREMIUM"
)

// Link represents a shortened link and its access constraints.
type Link struct {
	ID           string
	Code         Code
	OriginalURL  string
	URLHash      URLHash // empty for token-strategy and constrained links
	IsActive     bool
	ExpiresAt    *time.Time
	PasswordHash *string
	Title        string
	Description  string
	OwnerID      *string // nil for anonymous links
	OwnerTier    Tier    // empty for anonymous links
	CreatedAt    time.Time
}
