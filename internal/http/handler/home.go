package handler

import (
	"github.com/gofiber/fiber/v2"

	"corpsite/internal/http/middleware"
	"corpsite/internal/service"
)

func registerHomeRoutes(app *fiber.App, homeSvc service.HomeService) {
	app.Get("/", func(c *fiber.Ctx) error {
		user := middleware.UserFromCtx(c)
		page, err := homeSvc.Home(c.UserContext(), user, c.Path())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(page)
	})
}
