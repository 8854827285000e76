package postgres

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of
// repository.DocumentRepository. It uses database/sql with
// parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, slug, description, category_id, storage_key, filename, size, content_type, is_published, is_open, access_type, price, currency, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var (
		d          model.Document
		price      decimal.NullDecimal
		accessType string
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Slug,
		&d.Description,
		&d.CategoryID,
		&d.StorageKey,
		&d.Filename,
		&d.Size,
		&d.ContentType,
		&d.IsPublished,
		&d.IsOpen,
		&accessType,
		&price,
		&d.Currency,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.AccessType = model.AccessType(accessType)
	if price.Valid {
		d.Price = &price.Decimal
	}
	return &d, nil
}

func nullPrice(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, slug, description, category_id, storage_key, filename, size, content_type, is_published, is_open, access_type, price, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Slug,
		doc.Description,
		doc.CategoryID,
		doc.StorageKey,
		doc.Filename,
		doc.Size,
		doc.ContentType,
		doc.IsPublished,
		doc.IsOpen,
		string(doc.AccessType),
		nullPrice(doc.Price),
		doc.Currency,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return scanDocument(row)
}

// FindBySlug fetches a single document by its slug.
func (r *DocumentPostgres) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE slug = $1`
	if publishedOnly {
		q += ` AND is_published = TRUE`
	}
	return scanDocument(r.db.QueryRowContext(ctx, q, slug))
}

// ListPublished returns all published documents in listing order.
func (r *DocumentPostgres) ListPublished(ctx context.Context) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE is_published = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityDocument)
	return r.queryDocuments(ctx, q)
}

// ListByCategory returns published documents of one category in
// listing order.
func (r *DocumentPostgres) ListByCategory(ctx context.Context, categoryID string) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE is_published = TRUE AND category_id = $1 ORDER BY ` +
		repository.OrderBy(repository.EntityDocument)
	return r.queryDocuments(ctx, q, categoryID)
}

// ListLatestOpen returns the newest published and open documents.
func (r *DocumentPostgres) ListLatestOpen(ctx context.Context, limit int) ([]model.Document, error) {
	q := `SELECT ` + documentColumns + ` FROM documents WHERE is_published = TRUE AND is_open = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityDocument) + ` LIMIT $1`
	return r.queryDocuments(ctx, q, limit)
}

func (r *DocumentPostgres) queryDocuments(ctx context.Context, q string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the
// row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// FindCategoryBySlug fetches an active category by slug.
func (r *DocumentPostgres) FindCategoryBySlug(ctx context.Context, slug string) (*model.DocumentCategory, error) {
	const q = `
		SELECT id, title, slug, ord, is_active
		FROM document_categories
		WHERE slug = $1 AND is_active = TRUE
	`
	var c model.DocumentCategory
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&c.ID, &c.Title, &c.Slug, &c.Order, &c.IsActive); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns active categories in listing order.
func (r *DocumentPostgres) ListCategories(ctx context.Context) ([]model.DocumentCategory, error) {
	q := `SELECT id, title, slug, ord, is_active FROM document_categories WHERE is_active = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityDocumentCategory)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentCategory, 0)
	for rows.Next() {
		var c model.DocumentCategory
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

// ListRecommendations returns home-page recommendations in listing
// order.
func (r *DocumentPostgres) ListRecommendations(ctx context.Context) ([]model.Recommendation, error) {
	q := `SELECT id, title, storage_key, ord, created_at FROM recommendations ORDER BY ` +
		repository.OrderBy(repository.EntityRecommendation)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Recommendation, 0)
	for rows.Next() {
		var rec model.Recommendation
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.StorageKey, &rec.Order, &rec.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
