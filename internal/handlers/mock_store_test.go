package handlers_test

import (
	"context"
	"errors"
	"time"

	"github.com/ostrab/linkgate/internal/analytics"
	"github.com/ostrab/linkgate/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/very/long/path"

// mockStore is a shortener.Repository whose operations can be forced to
// fail.
type mockStore struct {
	saveErr      error
	getByCodeErr error
	getByHashErr error
	deleteErr    error
	link         *shortener.Link
}

func (m *mockStore) Save(_ context.Context, _ *shortener.Link) error {
	return m.saveErr
}

func (m *mockStore) GetByCode(_ context.Context, _ shortener.Code) (*shortener.Link, error) {
	if m.getByCodeErr != nil {
		return nil, m.getByCodeErr
	}

	return m.link, nil
}

func (m *mockStore) GetByHash(_ context.Context, _ shortener.URLHash) (*shortener.Link, error) {
	if m.getByHashErr != nil {
		return nil, m.getByHashErr
	}

	return m.link, nil
}

func (m *mockStore) Delete(_ context.Context, _ shortener.Code) error {
	return m.deleteErr
}

// mockClicks is an analytics.Store with canned aggregates.
type mockClicks struct {
	count     int64
	last      *time.Time
	countErr  error
	lastErr   error
	saveCalls int
}

func (m *mockClicks) SaveClick(_ context.Context, _ *analytics.ClickEvent) error {
	m.saveCalls++

	return nil
}

func (m *mockClicks) CountClicks(_ context.Context, _ string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}

	return m.count, nil
}

func (m *mockClicks) LastClick(_ context.Context, _ string) (*time.Time, error) {
	if m.lastErr != nil {
		return nil, m.lastErr
	}

	return m.last, nil
}
