package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ostrab/linkgate/internal/shortener"
	"github.com/redis/go-redis/v9"
)

// RedisCacheRepository wraps a Repository with Redis caching for
// code lookups, the hot path of the resolve endpoint. Hash lookups
// only happen at creation time and always go to the backing store.
type RedisCacheRepository struct {
	store  shortener.Repository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCacheRepository creates a new Redis-cached repository decorator.
func NewRedisCacheRepository(
	store shortener.Repository, client *redis.Client, ttl time.Duration,
) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:  store,
		client: client,
		prefix: "link:",
		ttl:    ttl,
	}
}

// Save stores a link in the underlying store and writes through to the
// cache.
func (r *RedisCacheRepository) Save(ctx context.Context, link *shortener.Link) error {
	if err := r.store.Save(ctx, link); err != nil {
		return err
	}

	r.cacheLink(ctx, link)

	return nil
}

// GetByCode retrieves a link by its code, checking the cache first.
func (r *RedisCacheRepository) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Link, error) {
	if link, err := r.getFromCache(ctx, code); err == nil {
		return link, nil
	}

	link, err := r.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	r.cacheLink(ctx, link)

	return link, nil
}

// GetByHash delegates to the backing store.
func (r *RedisCacheRepository) GetByHash(ctx context.Context, hash shortener.URLHash) (*shortener.Link, error) {
	return r.store.GetByHash(ctx, hash)
}

// Delete removes the link from the backing store and invalidates the
// cache entry.
func (r *RedisCacheRepository) Delete(ctx context.Context, code shortener.Code) error {
	if err := r.store.Delete(ctx, code); err != nil {
		return err
	}

	_ = r.client.Del(ctx, r.prefix+string(code)).Err()

	return nil
}

func (r *RedisCacheRepository) getFromCache(ctx context.Context, code shortener.Code) (*shortener.Link, error) {
	payload, err := r.client.Get(ctx, r.prefix+string(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	var link shortener.Link
	if err := json.Unmarshal(payload, &link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *RedisCacheRepository) cacheLink(ctx context.Context, link *shortener.Link) {
	payload, err := json.Marshal(link)
	if err != nil {
		return
	}

	_ = r.client.Set(ctx, r.prefix+string(link.Code), payload, r.ttl).Err()
}

// Compile-time check.
var _ shortener.Repository = (*RedisCacheRepository)(nil)
