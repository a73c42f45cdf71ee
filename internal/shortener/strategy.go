package shortener

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Strategy defines the interface for link creation strategies.
type Strategy interface {
	Shorten(ctx context.Context, url string, params CreateParams) (*Link, error)
}

// CodeGenerator generates unique short codes.
type CodeGenerator func() string

// PasswordHasher hashes a plaintext link password for storage.
type PasswordHasher func(plaintext string) (string, error)

// CreateParams carries the optional attributes of a new link.
type CreateParams struct {
	Password    string // plaintext; hashed before storage
	ExpiresAt   *time.Time
	Title       string
	Description string
	OwnerID     *string
	OwnerTier   Tier
}

// constrained reports whether the link carries access constraints that
// make it unsafe to share a code with other creations of the same URL.
func (p CreateParams) constrained() bool {
	return p.Password != "" || p.ExpiresAt != nil
}

func newLink(code Code, url string, hash URLHash, params CreateParams, hashPassword PasswordHasher) (*Link, error) {
	link := &Link{
		ID:          uuid.NewString(),
		Code:        code,
		OriginalURL: url,
		URLHash:     hash,
		IsActive:    true,
		ExpiresAt:   params.ExpiresAt,
		Title:       params.Title,
		Description: params.Description,
		OwnerID:     params.OwnerID,
		OwnerTier:   params.OwnerTier,
		CreatedAt:   time.Now(),
	}

	if params.Password != "" {
		hashed, err := hashPassword(params.Password)
		if err != nil {
			return nil, err
		}

		link.PasswordHash = &hashed
	}

	return link, nil
}

// TokenStrategy always generates a new code for each link.
type TokenStrategy struct {
	store        Repository
	generateCode CodeGenerator
	hashPassword PasswordHasher
}

// NewTokenStrategy creates a new token-based creation strategy.
func NewTokenStrategy(store Repository, generator CodeGenerator, hasher PasswordHasher) *TokenStrategy {
	return &TokenStrategy{
		store:        store,
		generateCode: generator,
		hashPassword: hasher,
	}
}

func (s *TokenStrategy) Shorten(ctx context.Context, url string, params CreateParams) (*Link, error) {
	link, err := newLink(Code(s.generateCode()), url, "", params, s.hashPassword)
	if err != nil {
		return nil, err
	}

	if err = s.store.Save(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// HashStrategy deduplicates plain links by returning the same code for
// identical URLs. Links with a password or expiry never share a code,
// so they skip the hash index entirely.
type HashStrategy struct {
	store        Repository
	generateCode CodeGenerator
	hashPassword PasswordHasher
}

// NewHashStrategy creates a new hash-based creation strategy.
func NewHashStrategy(store Repository, generator CodeGenerator, hasher PasswordHasher) *HashStrategy {
	return &HashStrategy{
		store:        store,
		generateCode: generator,
		hashPassword: hasher,
	}
}

func (s *HashStrategy) Shorten(ctx context.Context, rawURL string, params CreateParams) (*Link, error) {
	var urlHash URLHash

	if !params.constrained() {
		normalizedURL, err := NormalizeURL(rawURL)
		if err != nil {
			return nil, err
		}

		urlHash = URLHash(HashURL(normalizedURL))

		existing, err := s.store.GetByHash(ctx, urlHash)
		if err == nil {
			return existing, nil
		}

		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	link, err := newLink(Code(s.generateCode()), rawURL, urlHash, params, s.hashPassword)
	if err != nil {
		return nil, err
	}

	if err = s.store.Save(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}
