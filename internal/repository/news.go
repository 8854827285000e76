package repository

import (
	"context"

	"corpsite/internal/model"
)

// NewsRepository defines data access for news posts and their
// categories.
type NewsRepository interface {
	// ListPublished returns published posts in listing order.
	ListPublished(ctx context.Context) ([]model.NewsPost, error)

	// ListByCategory returns published posts of one category in listing
	// order.
	ListByCategory(ctx context.Context, categoryID string) ([]model.NewsPost, error)

	// ListLatest returns the newest published posts, capped at limit.
	ListLatest(ctx context.Context, limit int) ([]model.NewsPost, error)

	// FindBySlug returns a post by slug. When publishedOnly is set,
	// unpublished posts are treated as missing.
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.NewsPost, error)

	// SavePublication persists the publish-lifecycle fields
	// (is_published, published_at) of the post.
	SavePublication(ctx context.Context, post *model.NewsPost) error

	// FindCategoryBySlug returns an active category by slug. Inactive
	// categories are treated as missing.
	FindCategoryBySlug(ctx context.Context, slug string) (*model.NewsCategory, error)

	// ListCategories returns active categories in listing order.
	ListCategories(ctx context.Context) ([]model.NewsCategory, error)
}
