package store

import (
	"context"
	"sync"

	"github.com/ostrab/linkgate/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
type MemoryStore struct {
	mu     sync.RWMutex
	links  map[shortener.Code]*shortener.Link
	hashes map[shortener.URLHash]shortener.Code
}

// NewMemoryStore creates a new in-memory link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:  make(map[shortener.Code]*shortener.Link),
		hashes: make(map[shortener.URLHash]shortener.Code),
	}
}

func (m *MemoryStore) Save(_ context.Context, link *shortener.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *link
	m.links[link.Code] = &stored

	if link.URLHash != "" {
		m.hashes[link.URLHash] = link.Code
	}

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	copied := *link

	return &copied, nil
}

func (m *MemoryStore) GetByHash(_ context.Context, hash shortener.URLHash) (*shortener.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	code, ok := m.hashes[hash]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	link, ok := m.links[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	copied := *link

	return &copied, nil
}

func (m *MemoryStore) Delete(_ context.Context, code shortener.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[code]
	if !ok {
		return shortener.ErrNotFound
	}

	delete(m.links, code)

	if link.URLHash != "" {
		delete(m.hashes, link.URLHash)
	}

	return nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
