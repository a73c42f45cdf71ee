package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrab/linkgate/internal/analytics"
)

// Postgres is a PostgreSQL implementation of analytics.Store.
//
// Expected schema:
//
//	CREATE TABLE click_events (
//	    id         UUID PRIMARY KEY,
//	    code       TEXT NOT NULL,
//	    clicked_at TIMESTAMPTZ NOT NULL,
//	    ip_address TEXT NOT NULL DEFAULT '',
//	    user_agent TEXT NOT NULL DEFAULT '',
//	    referer    TEXT NOT NULL DEFAULT '',
//	    country    TEXT,
//	    city       TEXT
//	);
//	CREATE INDEX click_events_code_idx ON click_events (code, clicked_at);
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveClick(ctx context.Context, event *analytics.ClickEvent) error {
	query := `
		INSERT INTO click_events (id, code, clicked_at, ip_address, user_agent, referer, country, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Code,
		event.Timestamp,
		event.IPAddress,
		event.UserAgent,
		event.Referer,
		event.Country,
		event.City,
	)

	return err
}

func (p *Postgres) CountClicks(ctx context.Context, code string) (int64, error) {
	var count int64

	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM click_events WHERE code = $1`, code,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (p *Postgres) LastClick(ctx context.Context, code string) (*time.Time, error) {
	var last *time.Time

	err := p.pool.QueryRow(ctx,
		`SELECT MAX(clicked_at) FROM click_events WHERE code = $1`, code,
	).Scan(&last)
	if err != nil {
		return nil, err
	}

	return last, nil
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
