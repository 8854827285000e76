package postgres

import (
	"context"
	"database/sql"

	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// NewsPostgres is a PostgreSQL implementation of
// repository.NewsRepository.
type NewsPostgres struct {
	db *sql.DB
}

// NewNewsPostgres creates a new NewsPostgres repository.
func NewNewsPostgres(db *sql.DB) *NewsPostgres {
	return &NewsPostgres{db: db}
}

var _ repository.NewsRepository = (*NewsPostgres)(nil)

const newsColumns = `id, title, slug, category_id, preview_text, body, is_published, published_at, created_at, updated_at`

func scanNewsPost(row rowScanner) (*model.NewsPost, error) {
	var p model.NewsPost
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.CategoryID,
		&p.PreviewText,
		&p.Body,
		&p.IsPublished,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublished returns published posts in listing order.
func (r *NewsPostgres) ListPublished(ctx context.Context) ([]model.NewsPost, error) {
	q := `SELECT ` + newsColumns + ` FROM news_posts WHERE is_published = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityNewsPost)
	return r.queryPosts(ctx, q)
}

// ListByCategory returns published posts of one category in listing
// order.
func (r *NewsPostgres) ListByCategory(ctx context.Context, categoryID string) ([]model.NewsPost, error) {
	q := `SELECT ` + newsColumns + ` FROM news_posts WHERE is_published = TRUE AND category_id = $1 ORDER BY ` +
		repository.OrderBy(repository.EntityNewsPost)
	return r.queryPosts(ctx, q, categoryID)
}

// ListLatest returns the newest published posts.
func (r *NewsPostgres) ListLatest(ctx context.Context, limit int) ([]model.NewsPost, error) {
	q := `SELECT ` + newsColumns + ` FROM news_posts WHERE is_published = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityNewsPost) + ` LIMIT $1`
	return r.queryPosts(ctx, q, limit)
}

func (r *NewsPostgres) queryPosts(ctx context.Context, q string, args ...any) ([]model.NewsPost, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsPost, 0)
	for rows.Next() {
		p, err := scanNewsPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySlug fetches a single post by its slug.
func (r *NewsPostgres) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.NewsPost, error) {
	q := `SELECT ` + newsColumns + ` FROM news_posts WHERE slug = $1`
	if publishedOnly {
		q += ` AND is_published = TRUE`
	}
	return scanNewsPost(r.db.QueryRowContext(ctx, q, slug))
}

// SavePublication persists the publish-lifecycle fields only.
func (r *NewsPostgres) SavePublication(ctx context.Context, post *model.NewsPost) error {
	const q = `UPDATE news_posts SET is_published = $2, published_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, post.ID, post.IsPublished, post.PublishedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindCategoryBySlug fetches an active category by slug.
func (r *NewsPostgres) FindCategoryBySlug(ctx context.Context, slug string) (*model.NewsCategory, error) {
	const q = `
		SELECT id, title, slug, ord, is_active
		FROM news_categories
		WHERE slug = $1 AND is_active = TRUE
	`
	var c model.NewsCategory
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&c.ID, &c.Title, &c.Slug, &c.Order, &c.IsActive); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns active categories in listing order.
func (r *NewsPostgres) ListCategories(ctx context.Context) ([]model.NewsCategory, error) {
	q := `SELECT id, title, slug, ord, is_active FROM news_categories WHERE is_active = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityNewsCategory)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsCategory, 0)
	for rows.Next() {
		var c model.NewsCategory
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Order, &c.IsActive); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
