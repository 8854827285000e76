package handler

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"corpsite/internal/http/middleware"
	"corpsite/internal/model"
	"corpsite/internal/service"
)

// loginRedirect sends the client to the sign-in page with the current
// path as the return target.
func loginRedirect(c *fiber.Ctx, loginURL string) error {
	return c.Redirect(loginURL+"?next="+url.QueryEscape(c.Path()), fiber.StatusFound)
}

func registerDocumentRoutes(app *fiber.App, docSvc service.DocumentService, purchaseSvc service.PurchaseService, loginURL string) {
	// Library listing, optionally filtered by ?category=<slug>
	app.Get("/documents", func(c *fiber.Ctx) error {
		user := middleware.UserFromCtx(c)
		listing, err := docSvc.List(c.UserContext(), user, c.Query("category"), c.Path())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(listing)
	})

	// Upload document (staff only, multipart/form-data, field name: file)
	app.Post("/documents", middleware.RequireStaff(), func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		in := service.UploadInput{
			Title:       c.FormValue("title"),
			Slug:        c.FormValue("slug"),
			Description: c.FormValue("description"),
			AccessType:  model.AccessType(c.FormValue("access_type", string(model.AccessFree))),
			Currency:    c.FormValue("currency"),
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Reader:      f,
		}
		if v := c.FormValue("category_id"); v != "" {
			in.CategoryID = &v
		}
		if v := c.FormValue("price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_PRICE", "invalid price")
			}
			in.Price = &price
		}

		doc, err := docSvc.Upload(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, model.ErrPaidPriceRequired) {
				return writeError(c, fiber.StatusBadRequest, "PRICE_REQUIRED", "paid document requires a price")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	})

	// Document detail with entitlement flags for the current user
	app.Get("/documents/:slug", func(c *fiber.Ctx) error {
		user := middleware.UserFromCtx(c)
		view, err := docSvc.Get(c.UserContext(), c.Params("slug"), user, c.Path())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(view)
	})

	// Download gate. A granted request redirects to a short-lived
	// presigned URL; an ungranted one always redirects, never 403.
	app.Get("/documents/:slug/download", func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		user := middleware.UserFromCtx(c)

		grant, err := docSvc.Download(c.UserContext(), slug, user)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, service.ErrLoginRequired):
				return loginRedirect(c, loginURL)
			case errors.Is(err, service.ErrPaymentRequired):
				return c.Redirect("/documents/"+slug+"/pay", fiber.StatusFound)
			case errors.Is(err, service.ErrDocumentClosed):
				return c.Redirect("/documents/"+slug, fiber.StatusFound)
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Redirect(grant.URL, fiber.StatusFound)
	})

	// Initiate a purchase for a paid document. Repeat calls return the
	// existing ledger row unchanged.
	app.Post("/documents/:slug/pay", func(c *fiber.Ctx) error {
		user := middleware.UserFromCtx(c)

		purchase, created, err := purchaseSvc.Initiate(c.UserContext(), user, c.Params("slug"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrLoginRequired):
				return loginRedirect(c, loginURL)
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, service.ErrFreeDocument):
				return writeError(c, fiber.StatusBadRequest, "FREE_DOCUMENT", "document does not require payment")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(purchase)
	})

	// Delete document (staff only)
	app.Delete("/documents/:slug", middleware.RequireStaff(), func(c *fiber.Ctx) error {
		if err := docSvc.Delete(c.UserContext(), c.Params("slug")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	registerPurchaseAdminRoutes(app, purchaseSvc)
}

func registerPurchaseAdminRoutes(app *fiber.App, purchaseSvc service.PurchaseService) {
	admin := app.Group("/admin/purchases", middleware.RequireStaff())

	admin.Get("/:id", func(c *fiber.Ctx) error {
		purchase, err := purchaseSvc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "purchase not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(purchase)
	})

	admin.Post("/:id/paid", func(c *fiber.Ctx) error {
		purchase, err := purchaseSvc.MarkPaid(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "purchase not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(purchase)
	})

	admin.Post("/:id/status", func(c *fiber.Ctx) error {
		var body struct {
			Status model.PurchaseStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		purchase, err := purchaseSvc.SetStatus(c.UserContext(), c.Params("id"), body.Status)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "purchase not found")
			case errors.Is(err, service.ErrInvalidStatus):
				return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "unknown purchase status")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(purchase)
	})
}
