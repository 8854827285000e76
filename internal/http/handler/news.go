package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"corpsite/internal/http/middleware"
	"corpsite/internal/service"
)

func registerNewsRoutes(app *fiber.App, newsSvc service.NewsService) {
	// News index, optionally filtered by ?category=<slug>
	app.Get("/news", func(c *fiber.Ctx) error {
		listing, err := newsSvc.List(c.UserContext(), c.Query("category"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(listing)
	})

	app.Get("/news/:slug", func(c *fiber.Ctx) error {
		post, err := newsSvc.Get(c.UserContext(), c.Params("slug"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(post)
	})

	// Publication lifecycle (staff only)
	app.Post("/news/:slug/publish", middleware.RequireStaff(), func(c *fiber.Ctx) error {
		post, err := newsSvc.Publish(c.UserContext(), c.Params("slug"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(post)
	})

	app.Post("/news/:slug/unpublish", middleware.RequireStaff(), func(c *fiber.Ctx) error {
		post, err := newsSvc.Unpublish(c.UserContext(), c.Params("slug"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(post)
	})
}
