package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docregistry/internal/service"
)

type createDocumentRequest struct {
	TypeID int64  `json:"type_id" validate:"required"`
	Link   string `json:"link" validate:"required"`
}

// CreateDocument handles POST /documents.
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		doc, err := svc.Create(c.UserContext(), req.TypeID, req.Link)
		if err != nil {
			if errors.Is(err, service.ErrTypeNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document type not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(doc)
	}
}

// ListDocuments handles GET /documents.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(items)
	}
}
