package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrab/linkgate/internal/shortener"
)

const linkColumns = `id, code, original_url, url_hash, is_active, expires_at,
	password_hash, title, description, owner_id, owner_tier, created_at`

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
//
// Expected schema:
//
//	CREATE TABLE links (
//	    id            UUID PRIMARY KEY,
//	    code          TEXT NOT NULL UNIQUE,
//	    original_url  TEXT NOT NULL,
//	    url_hash      TEXT,
//	    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
//	    expires_at    TIMESTAMPTZ,
//	    password_hash TEXT,
//	    title         TEXT NOT NULL DEFAULT '',
//	    description   TEXT NOT NULL DEFAULT '',
//	    owner_id      TEXT,
//	    owner_tier    TEXT,
//	    created_at    TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX links_url_hash_idx ON links (url_hash) WHERE url_hash IS NOT NULL;
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Save(ctx context.Context, link *shortener.Link) error {
	query := `
		INSERT INTO links (` + linkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (code) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		link.ID,
		string(link.Code),
		link.OriginalURL,
		nullableHash(link.URLHash),
		link.IsActive,
		link.ExpiresAt,
		link.PasswordHash,
		link.Title,
		link.Description,
		link.OwnerID,
		nullableTier(link.OwnerTier),
		link.CreatedAt,
	)

	return err
}

func (p *PostgresStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE code = $1`

	return p.scanLink(p.pool.QueryRow(ctx, query, string(code)))
}

func (p *PostgresStore) GetByHash(ctx context.Context, hash shortener.URLHash) (*shortener.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE url_hash = $1`

	return p.scanLink(p.pool.QueryRow(ctx, query, string(hash)))
}

func (p *PostgresStore) Delete(ctx context.Context, code shortener.Code) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM links WHERE code = $1`, string(code))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrNotFound
	}

	return nil
}

func (p *PostgresStore) scanLink(row pgx.Row) (*shortener.Link, error) {
	var (
		link    shortener.Link
		urlHash *string
		tier    *string
	)

	err := row.Scan(
		&link.ID,
		&link.Code,
		&link.OriginalURL,
		&urlHash,
		&link.IsActive,
		&link.ExpiresAt,
		&link.PasswordHash,
		&link.Title,
		&link.Description,
		&link.OwnerID,
		&tier,
		&link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	if urlHash != nil {
		link.URLHash = shortener.URLHash(*urlHash)
	}

	if tier != nil {
		link.OwnerTier = shortener.Tier(*tier)
	}

	return &link, nil
}

func nullableHash(h shortener.URLHash) *string {
	if h == "" {
		return nil
	}

	s := string(h)

	return &s
}

func nullableTier(t shortener.Tier) *string {
	if t == "" {
		return nil
	}

	s := string(t)

	return &s
}

// Compile-time check.
var _ shortener.Repository = (*PostgresStore)(nil)
