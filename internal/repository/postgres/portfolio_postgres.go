package postgres

import (
	"context"
	"database/sql"

	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// PortfolioPostgres is a PostgreSQL implementation of
// repository.PortfolioRepository.
type PortfolioPostgres struct {
	db *sql.DB
}

// NewPortfolioPostgres creates a new PortfolioPostgres repository.
func NewPortfolioPostgres(db *sql.DB) *PortfolioPostgres {
	return &PortfolioPostgres{db: db}
}

var _ repository.PortfolioRepository = (*PortfolioPostgres)(nil)

const caseColumns = `id, title, slug, short_text, body, is_published, created_at, updated_at`

func scanCase(row rowScanner) (*model.Case, error) {
	var c model.Case
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Slug,
		&c.ShortText,
		&c.Body,
		&c.IsPublished,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPages returns published pages in listing order.
func (r *PortfolioPostgres) ListPages(ctx context.Context) ([]model.PortfolioPage, error) {
	q := `SELECT id, title, slug, description, ord, is_published FROM portfolio_pages WHERE is_published = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityPortfolioPage)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PortfolioPage, 0)
	for rows.Next() {
		var p model.PortfolioPage
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Order, &p.IsPublished); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindPageBySlug fetches a published page by slug.
func (r *PortfolioPostgres) FindPageBySlug(ctx context.Context, slug string) (*model.PortfolioPage, error) {
	const q = `
		SELECT id, title, slug, description, ord, is_published
		FROM portfolio_pages
		WHERE slug = $1 AND is_published = TRUE
	`
	var p model.PortfolioPage
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Order, &p.IsPublished); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCasesByPage returns published cases linked to the page.
func (r *PortfolioPostgres) ListCasesByPage(ctx context.Context, pageID string) ([]model.Case, error) {
	q := `
		SELECT c.id, c.title, c.slug, c.short_text, c.body, c.is_published, c.created_at, c.updated_at
		FROM cases c
		JOIN case_pages cp ON cp.case_id = c.id
		WHERE cp.page_id = $1 AND c.is_published = TRUE
		ORDER BY c.` + repository.OrderBy(repository.EntityCase)
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindCaseBySlug fetches a published case by slug.
func (r *PortfolioPostgres) FindCaseBySlug(ctx context.Context, slug string) (*model.Case, error) {
	const q = `SELECT ` + caseColumns + ` FROM cases WHERE slug = $1 AND is_published = TRUE`
	return scanCase(r.db.QueryRowContext(ctx, q, slug))
}

// ListImages returns the active images of a case.
func (r *PortfolioPostgres) ListImages(ctx context.Context, caseID string) ([]model.CaseImage, error) {
	q := `SELECT id, case_id, storage_key, caption, ord, is_active FROM case_images WHERE case_id = $1 AND is_active = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityCaseImage)
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseImage, 0)
	for rows.Next() {
		var img model.CaseImage
		if err := rows.Scan(&img.ID, &img.CaseID, &img.StorageKey, &img.Caption, &img.Order, &img.IsActive); err != nil {
			return nil, err
		}
		items = append(items, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListAttachments returns the active attachments of a case.
func (r *PortfolioPostgres) ListAttachments(ctx context.Context, caseID string) ([]model.CaseAttachment, error) {
	q := `SELECT id, case_id, title, storage_key, ord, is_active FROM case_attachments WHERE case_id = $1 AND is_active = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityCaseAttachment)
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseAttachment, 0)
	for rows.Next() {
		var a model.CaseAttachment
		if err := rows.Scan(&a.ID, &a.CaseID, &a.Title, &a.StorageKey, &a.Order, &a.IsActive); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListCaseDocuments returns the active document links of a case.
func (r *PortfolioPostgres) ListCaseDocuments(ctx context.Context, caseID string) ([]model.CaseDocument, error) {
	q := `SELECT id, case_id, document_id, ord, title_override, is_active FROM case_documents WHERE case_id = $1 AND is_active = TRUE ORDER BY ` +
		repository.OrderBy(repository.EntityCaseDocument)
	rows, err := r.db.QueryContext(ctx, q, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CaseDocument, 0)
	for rows.Next() {
		var cd model.CaseDocument
		if err := rows.Scan(&cd.ID, &cd.CaseID, &cd.DocumentID, &cd.Order, &cd.TitleOverride, &cd.IsActive); err != nil {
			return nil, err
		}
		items = append(items, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindDocumentByID fetches a library document referenced by a case
// link.
func (r *PortfolioPostgres) FindDocumentByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}
