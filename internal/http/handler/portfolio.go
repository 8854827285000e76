package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"corpsite/internal/http/middleware"
	"corpsite/internal/service"
)

func registerPortfolioRoutes(app *fiber.App, portfolioSvc service.PortfolioService) {
	app.Get("/portfolio", func(c *fiber.Ctx) error {
		pages, err := portfolioSvc.ListPages(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": pages})
	})

	app.Get("/portfolio/:slug", func(c *fiber.Ctx) error {
		user := middleware.UserFromCtx(c)
		detail, err := portfolioSvc.GetPage(c.UserContext(), c.Params("slug"), user, c.Path())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "page not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(detail)
	})

	app.Get("/cases/:slug", func(c *fiber.Ctx) error {
		user := middleware.UserFromCtx(c)
		detail, err := portfolioSvc.GetCase(c.UserContext(), c.Params("slug"), user, c.Path())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "case not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(detail)
	})
}
