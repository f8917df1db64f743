package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"docregistry/internal/auth"
	"docregistry/internal/http/middleware"
	"docregistry/internal/service"
)

// validate checks request body shape before anything reaches a service.
var validate = validator.New()

// credentialsRequest is the body for both register and login.
type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is the login success payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterUser handles POST /users/register.
func RegisterUser(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		user, err := svc.Register(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrUsernameTaken) {
				return writeError(c, fiber.StatusBadRequest, "Username already exists")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(user)
	}
}

// Login handles POST /users/login.
func Login(svc service.AccountService, tokens auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		user, err := svc.Authenticate(c.UserContext(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, "Invalid credentials")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		token, err := tokens.Issue(user.Username)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// Me handles GET /users/me. The subject comes from the bearer middleware.
func Me(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.FindByUsername(c.UserContext(), middleware.Subject(c))
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return writeError(c, fiber.StatusNotFound, "User not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(user)
	}
}
