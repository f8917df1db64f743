package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docregistry/internal/auth"
	"docregistry/internal/http/middleware"
	"docregistry/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; services own the semantics.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	tokens auth.TokenService,
	accounts service.AccountService,
	types service.DocumentTypeService,
	documents service.DocumentService,
) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Public account routes
	app.Post("/users/register", RegisterUser(accounts))
	app.Post("/users/login", Login(accounts, tokens))

	// Everything below requires a valid bearer token
	authed := middleware.BearerAuth(tokens)

	app.Get("/users/me", authed, Me(accounts))

	app.Post("/types", authed, CreateType(types))
	app.Get("/types", authed, ListTypes(types))

	app.Post("/documents", authed, CreateDocument(documents))
	app.Get("/documents", authed, ListDocuments(documents))
}
