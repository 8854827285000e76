package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"corpsite/internal/service"
)

// Services bundles the use-case implementations the HTTP layer exposes.
type Services struct {
	Home      service.HomeService
	Documents service.DocumentService
	Purchases service.PurchaseService
	News      service.NewsService
	Portfolio service.PortfolioService
	Contacts  service.ContactService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parse, delegate, translate errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, loginURL string) {
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

	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	registerHomeRoutes(app, svcs.Home)
	registerDocumentRoutes(app, svcs.Documents, svcs.Purchases, loginURL)
	registerNewsRoutes(app, svcs.News)
	registerPortfolioRoutes(app, svcs.Portfolio)
	registerContactRoutes(app, svcs.Contacts)
}
