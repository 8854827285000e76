package repository

import (
	"context"

	"corpsite/internal/model"
)

// DocumentRepository defines data access for the document library and
// its taxonomy. No business logic here — strictly persistence
// operations. Missing rows surface as sql.ErrNoRows; the service layer
// translates them.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindBySlug returns a document by slug. When publishedOnly is set,
	// unpublished documents are treated as missing.
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Document, error)

	// ListPublished returns all published documents in listing order.
	ListPublished(ctx context.Context) ([]model.Document, error)

	// ListByCategory returns published documents of one category in
	// listing order.
	ListByCategory(ctx context.Context, categoryID string) ([]model.Document, error)

	// ListLatestOpen returns the newest published and open documents,
	// capped at limit. Used by the home page.
	ListLatestOpen(ctx context.Context, limit int) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// FindCategoryBySlug returns an active category by slug. Inactive
	// categories are treated as missing.
	FindCategoryBySlug(ctx context.Context, slug string) (*model.DocumentCategory, error)

	// ListCategories returns active categories in listing order.
	ListCategories(ctx context.Context) ([]model.DocumentCategory, error)

	// ListRecommendations returns home-page recommendations in listing
	// order.
	ListRecommendations(ctx context.Context) ([]model.Recommendation, error)
}
