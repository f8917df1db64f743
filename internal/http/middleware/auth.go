package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"docregistry/internal/auth"
)

// SubjectLocalKey is the key used to store the authenticated token subject
// (the username) in Fiber's context locals.
const SubjectLocalKey = "auth_subject"

// BearerAuth is a middleware that gates handlers behind bearer-token
// authentication.
//
// Behavior:
// - No Authorization header, or one without the Bearer scheme, is rejected
//   with 401 {"detail": "Not authenticated"}.
// - A present token that fails verification (malformed, tampered, or expired)
//   is rejected with 401 {"detail": "Invalid token"}.
// - On success the token subject is stored under SubjectLocalKey.
func BearerAuth(tokens auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Not authenticated",
			})
		}

		subject, err := tokens.Verify(strings.TrimPrefix(raw, "Bearer "))
		if err != nil {
			// Expired, tampered, and malformed tokens are indistinguishable
			// to the client.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid token",
			})
		}

		c.Locals(SubjectLocalKey, subject)
		return c.Next()
	}
}

// Subject extracts the authenticated subject stored by BearerAuth.
func Subject(c *fiber.Ctx) string {
	if v := c.Locals(SubjectLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
