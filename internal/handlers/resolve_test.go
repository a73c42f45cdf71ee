package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ostrab/linkgate/internal/analytics"
	"github.com/ostrab/linkgate/internal/handlers"
	"github.com/ostrab/linkgate/internal/messaging"
	"github.com/ostrab/linkgate/internal/resolver"
	"github.com/ostrab/linkgate/internal/shortener"
	"github.com/ostrab/linkgate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

func newResolveHandler(s shortener.Repository) *handlers.ResolveHandler {
	pipeline := resolver.NewPipeline(s, noopPublish[analytics.ClickEvent](), nil, zap.NewNop())

	return handlers.NewResolveHandler(pipeline, 5)
}

func seedLink(t *testing.T, s shortener.Repository, link *shortener.Link) {
	t.Helper()
	require.NoError(t, s.Save(context.Background(), link))
}

func metaCtx(userAgent string) context.Context {
	return handlers.ContextWithRequestMeta(context.Background(), handlers.RequestMeta{
		ClientIP:  "203.0.113.7",
		UserAgent: userAgent,
		Referrer:  "https://referrer.example",
	})
}

func TestResolve(t *testing.T) {
	t.Run("interstitial payload for plain visit", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:        "abc123",
			OriginalURL: testURL,
			IsActive:    true,
			Title:       "Example",
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "abc123"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, testURL, resp.Body.TargetURL)
		assert.Equal(t, 5, resp.Body.DelaySeconds)
		assert.Equal(t, "Example", resp.Body.Title)
		assert.Empty(t, resp.Headers.Location)
	})

	t.Run("direct flag issues immediate redirect", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:        "abc123",
			OriginalURL: testURL,
			IsActive:    true,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"),
			&handlers.ResolveRequest{Code: "abc123", Direct: "true"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status)
		assert.Equal(t, testURL, resp.Headers.Location)
	})

	t.Run("anything but literal true keeps the interstitial", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:        "abc123",
			OriginalURL: testURL,
			IsActive:    true,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"),
			&handlers.ResolveRequest{Code: "abc123", Direct: "1"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("bot user agent issues immediate redirect", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:        "abc123",
			OriginalURL: testURL,
			IsActive:    true,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0 (compatible; Googlebot/2.1)"),
			&handlers.ResolveRequest{Code: "abc123"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status)
	})

	t.Run("404 for missing code", func(t *testing.T) {
		handler := newResolveHandler(store.NewMemoryStore())

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "missing"})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("404 for inactive code", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:        "off",
			OriginalURL: testURL,
			IsActive:    false,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "off"})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("expired link", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:        "old",
			OriginalURL: testURL,
			IsActive:    true,
			ExpiresAt:   &expired,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "old"})

		assert.Nil(t, resp)
		require.Error(t, err)
	})

	t.Run("password prompt without error", func(t *testing.T) {
		hash, err := resolver.HashPassword("secret")
		require.NoError(t, err)

		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:         "locked",
			OriginalURL:  testURL,
			IsActive:     true,
			PasswordHash: &hash,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "locked"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
		assert.True(t, resp.Body.PasswordRequired)
		assert.Empty(t, resp.Body.Error)
	})

	t.Run("wrong password carries error message", func(t *testing.T) {
		hash, err := resolver.HashPassword("secret")
		require.NoError(t, err)

		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:         "locked",
			OriginalURL:  testURL,
			IsActive:     true,
			PasswordHash: &hash,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"),
			&handlers.ResolveRequest{Code: "locked", Password: "wrong"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
		assert.True(t, resp.Body.PasswordRequired)
		assert.Equal(t, "Invalid password", resp.Body.Error)
	})

	t.Run("correct password resolves", func(t *testing.T) {
		hash, err := resolver.HashPassword("secret")
		require.NoError(t, err)

		memStore := store.NewMemoryStore()
		seedLink(t, memStore, &shortener.Link{
			Code:         "locked",
			OriginalURL:  testURL,
			IsActive:     true,
			PasswordHash: &hash,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"),
			&handlers.ResolveRequest{Code: "locked", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, testURL, resp.Body.TargetURL)
	})

	t.Run("premium owner skips interstitial", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		owner := "user-1"
		seedLink(t, memStore, &shortener.Link{
			Code:        "prem",
			OriginalURL: testURL,
			IsActive:    true,
			OwnerID:     &owner,
			OwnerTier:   shortener.TierPremium,
		})
		handler := newResolveHandler(memStore)

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "prem"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status)
	})

	t.Run("storage error renders as 404", func(t *testing.T) {
		handler := newResolveHandler(&mockStore{getByCodeErr: errMock})

		resp, err := handler.Resolve(metaCtx("Mozilla/5.0"), &handlers.ResolveRequest{Code: "abc123"})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
