package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docregistry/internal/auth"
	"docregistry/internal/config"
)

func newAuthTestApp(tokens auth.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", BearerAuth(tokens), func(c *fiber.Ctx) error {
		return c.SendString(Subject(c))
	})
	return app
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["detail"]
}

func TestBearerAuth(t *testing.T) {
	tokens := auth.NewJWTService(config.AuthConfig{
		JWTSecret:         "test-secret",
		AccessTokenTTLMin: 30,
	})
	app := newAuthTestApp(tokens)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Not authenticated", decodeDetail(t, resp))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Basic abc123")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Not authenticated", decodeDetail(t, resp))
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := tokens.Issue("alice")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token[:len(token)-2]+"xx")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid token", decodeDetail(t, resp))
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid token", decodeDetail(t, resp))
	})

	t.Run("valid token reaches handler with subject", func(t *testing.T) {
		token, err := tokens.Issue("alice")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		buf := make([]byte, 64)
		n, _ := resp.Body.Read(buf)
		assert.Equal(t, "alice", string(buf[:n]))
	})
}
