package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docregistry/internal/service"
)

type createTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateType handles POST /types.
func CreateType(svc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createTypeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		dt, err := svc.Create(c.UserContext(), req.Name)
		if err != nil {
			if errors.Is(err, service.ErrTypeExists) {
				return writeError(c, fiber.StatusBadRequest, "Document type already exists")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(dt)
	}
}

// ListTypes handles GET /types.
func ListTypes(svc service.DocumentTypeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(items)
	}
}
