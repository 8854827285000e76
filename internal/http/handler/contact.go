package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"corpsite/internal/http/middleware"
	"corpsite/internal/service"
)

// isXHR reports whether the request came from a script rather than a
// plain form post.
func isXHR(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Get("X-Requested-With"), "XMLHttpRequest")
}

func registerContactRoutes(app *fiber.App, contactSvc service.ContactService) {
	app.Get("/contacts", func(c *fiber.Ctx) error {
		page, err := contactSvc.Page(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(page)
	})

	// Lead capture. Accepts both form posts and JSON; a script caller
	// gets the stored row back, a form post bounces to the home page.
	app.Post("/contacts", func(c *fiber.Ctx) error {
		var in service.ContactSubmission
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		req, err := contactSvc.Submit(c.UserContext(), in)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if isXHR(c) {
			return c.Status(fiber.StatusCreated).JSON(req)
		}
		return c.Redirect("/", fiber.StatusFound)
	})

	admin := app.Group("/admin/contact-requests", middleware.RequireStaff())

	admin.Get("/", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "20"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		listing, err := contactSvc.ListRequests(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(listing)
	})

	admin.Post("/process", func(c *fiber.Ctx) error {
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		n, err := contactSvc.MarkProcessed(c.UserContext(), body.IDs)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"processed": n})
	})
}
