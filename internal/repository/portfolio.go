package repository

import (
	"context"

	"corpsite/internal/model"
)

// PortfolioRepository defines data access for portfolio pages, cases
// and the records hanging off a case.
type PortfolioRepository interface {
	// ListPages returns published pages in listing order.
	ListPages(ctx context.Context) ([]model.PortfolioPage, error)

	// FindPageBySlug returns a published page by slug.
	FindPageBySlug(ctx context.Context, slug string) (*model.PortfolioPage, error)

	// ListCasesByPage returns published cases linked to the page in
	// listing order.
	ListCasesByPage(ctx context.Context, pageID string) ([]model.Case, error)

	// FindCaseBySlug returns a published case by slug.
	FindCaseBySlug(ctx context.Context, slug string) (*model.Case, error)

	// ListImages returns the active images of a case in link order.
	ListImages(ctx context.Context, caseID string) ([]model.CaseImage, error)

	// ListAttachments returns the active attachments of a case in link
	// order.
	ListAttachments(ctx context.Context, caseID string) ([]model.CaseAttachment, error)

	// ListCaseDocuments returns the active document links of a case in
	// link order.
	ListCaseDocuments(ctx context.Context, caseID string) ([]model.CaseDocument, error)

	// FindDocumentByID returns a library document referenced by a case
	// link.
	FindDocumentByID(ctx context.Context, id string) (*model.Document, error)
}
