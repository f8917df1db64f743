package handler

import (
	"github.com/gofiber/fiber/v2"
)

// detailPayload is the fixed-shape error body exposed to clients.
// No stack traces or internal details ever cross this boundary.
type detailPayload struct {
	Detail string `json:"detail"`
}

// writeError writes the standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - detail: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(detailPayload{Detail: detail})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
