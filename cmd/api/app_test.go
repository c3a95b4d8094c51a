package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshop/internal/testutil"
)

func testConfig() config {
	return config{
		Addr:         ":0",
		JWTSecret:    testutil.TestSecret,
		TokenTTL:     time.Hour,
		ProjectLink:  defaultProjectLink,
		CORSOrigins:  []string{"http://localhost:5173"},
		MaxBodyBytes: 1 << 20,
	}
}

func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	app, err := buildApp(t.Context(), testConfig())
	require.NoError(t, err)
	return app
}

func do(app http.Handler, r *http.Request) testutil.RecordResponse {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	return testutil.RecordHTTPResponse(w)
}

func TestApp_CatalogQueries(t *testing.T) {
	app := newTestApp(t)

	t.Run("list", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodGet, "/books", nil))
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []any{
			map[string]any{"isbn": "123456789", "title": "Book 1"},
			map[string]any{"isbn": "987654321", "title": "Book 2"},
		}, resp.Data())
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	})

	t.Run("by isbn", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodGet, "/books/987654321", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		book := resp.Data().(map[string]any)
		assert.Equal(t, "Book 2", book["title"])
		assert.Equal(t, "Author 2", book["author"])
	})

	t.Run("unknown isbn", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodGet, "/books/000", nil))
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "NOT_FOUND", resp.ErrorCode())
	})

	t.Run("by author", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodGet, "/books/author/Author%201", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		books := resp.Data().([]any)
		require.Len(t, books, 1)
		assert.Equal(t, "123456789", books[0].(map[string]any)["isbn"])

		resp = do(app, testutil.NewRequest(http.MethodGet, "/books/author/Nobody", nil))
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []any{}, resp.Data())
	})

	t.Run("by title", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodGet, "/books/title/BOOK%202", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, resp.Data(), 1)

		resp = do(app, testutil.NewRequest(http.MethodGet, "/books/title/", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, resp.Data(), 2)
	})

	t.Run("reviews", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodGet, "/books/reviews/123456789", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, resp.Data(), 2)

		resp = do(app, testutil.NewRequest(http.MethodGet, "/books/reviews/000", nil))
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		resp := do(app, testutil.NewRequest(http.MethodPost, "/books", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	})
}

func TestApp_ReviewLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp := do(app, testutil.NewRequest(http.MethodPost, "/users/Shreyas/reviews/123456789",
		map[string]string{"comment": "Still great!"}))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(app, testutil.NewRequest(http.MethodDelete, "/users/User2/reviews/123456789", nil))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = do(app, testutil.NewRequest(http.MethodGet, "/books/reviews/123456789", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []any{
		map[string]any{"username": "Shreyas", "comment": "Still great!"},
	}, resp.Data())

	resp = do(app, testutil.NewRequest(http.MethodDelete, "/users/User2/reviews/123456789", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = do(app, testutil.NewRequest(http.MethodPost, "/users/New/reviews/987654321",
		map[string]string{"comment": "Nice"}))
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = do(app, testutil.NewRequest(http.MethodPost, "/users/New/reviews/000",
		map[string]string{"comment": "Nice"}))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestApp_Accounts(t *testing.T) {
	app := newTestApp(t)
	creds := map[string]string{"username": "alice", "password": "password123"}

	resp := do(app, testutil.NewRequest(http.MethodPost, "/users/register", creds))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = do(app, testutil.NewRequest(http.MethodPost, "/users/register", creds))
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = do(app, testutil.NewRequest(http.MethodPost, "/users/login", creds))
	require.Equal(t, http.StatusOK, resp.Code)
	token, _ := resp.Data().(map[string]any)["token"].(string)
	require.NotEmpty(t, token)

	resp = do(app, testutil.NewRequestWithAuth(http.MethodGet, "/me", nil, token))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "alice", resp.Data().(map[string]any)["username"])

	resp = do(app, testutil.NewRequestWithAuth(http.MethodPost, "/users/logout", nil, token))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = do(app, testutil.NewRequestWithAuth(http.MethodGet, "/me", nil, token))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "TOKEN_REVOKED", resp.ErrorCode())

	resp = do(app, testutil.NewRequestWithAuth(http.MethodGet, "/me", nil, testutil.GenerateExpiredToken(testutil.TestSecret, "alice")))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = do(app, testutil.NewRequestWithAuth(http.MethodGet, "/me", nil, testutil.GenerateTestToken("other-secret", "alice")))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestApp_ProjectLinkAndHealth(t *testing.T) {
	app := newTestApp(t)

	resp := do(app, testutil.NewRequest(http.MethodGet, "/project-link", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, map[string]any{"link": defaultProjectLink}, resp.Data())

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestApp_BodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 8
	app, err := buildApp(t.Context(), cfg)
	require.NoError(t, err)

	resp := do(app, testutil.NewRequest(http.MethodPost, "/users/Shreyas/reviews/123456789",
		map[string]string{"comment": "far longer than eight bytes"}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}

func TestBuildApp_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
books:
  - isbn: "111"
    title: Only Book
    author: Solo
`), 0o644))

	cfg := testConfig()
	cfg.SeedFile = path
	app, err := buildApp(t.Context(), cfg)
	require.NoError(t, err)

	resp := do(app, testutil.NewRequest(http.MethodGet, "/books/111", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []any{}, resp.Data().(map[string]any)["reviews"])

	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = buildApp(t.Context(), cfg)
	assert.Error(t, err)
}
