package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop/internal/httpx"
	"bookshop/internal/platform/crypto"
)

func TestService_Revoke(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryBlacklist())

	assert.ErrorIs(t, svc.Revoke(ctx, "", time.Now().Add(time.Hour)), ErrMissingTokenID)

	require.NoError(t, svc.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	revoked, err := svc.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestService_RunCleanup(t *testing.T) {
	b := NewMemoryBlacklist()
	svc := NewService(b)
	require.NoError(t, b.AddToken(context.Background(), "gone", time.Now().Add(-time.Second)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunCleanup(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return b.size() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestHTTPHandler_Logout(t *testing.T) {
	const secret = "test-secret"
	svc := NewService(NewMemoryBlacklist())
	handler := httpx.AuthMiddleware(secret, svc)(http.HandlerFunc(NewHTTPHandler(svc).Logout))

	token, jti, err := crypto.GenerateToken(secret, "alice", time.Hour)
	require.NoError(t, err)

	logout := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	w := logout()
	assert.Equal(t, http.StatusNoContent, w.Code)
	revoked, _ := svc.IsRevoked(context.Background(), jti)
	assert.True(t, revoked)

	w = logout()
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	t.Run("without auth middleware", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewHTTPHandler(svc).Logout(w, httptest.NewRequest(http.MethodPost, "/users/logout", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
