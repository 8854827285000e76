package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioPostgres_ListPages(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPortfolioPostgres(db)

	rows := sqlmock.NewRows([]string{"id", "title", "slug", "description", "ord", "is_published"}).
		AddRow("pp1", "Energy audits", "energy-audits", "", 1, true).
		AddRow("pp2", "Consulting", "consulting", "", 2, true)
	mock.ExpectQuery(`SELECT id, title, slug, description, ord, is_published FROM portfolio_pages WHERE is_published = TRUE ORDER BY ord ASC, title ASC`).
		WillReturnRows(rows)

	pages, err := repo.ListPages(context.Background())

	assert.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "energy-audits", pages[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioPostgres_ListCasesByPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPortfolioPostgres(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "title", "slug", "short_text", "body", "is_published", "created_at", "updated_at"}).
		AddRow("c1", "Warehouse retrofit", "warehouse-retrofit", "", "", true, now, now)
	mock.ExpectQuery(`JOIN case_pages cp ON cp.case_id = c.id`).
		WithArgs("pp1").
		WillReturnRows(rows)

	cases, err := repo.ListCasesByPage(context.Background(), "pp1")

	assert.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "warehouse-retrofit", cases[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioPostgres_ListCaseDocumentsOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPortfolioPostgres(db)

	rows := sqlmock.NewRows([]string{"id", "case_id", "document_id", "ord", "title_override", "is_active"}).
		AddRow("cd1", "c1", "d1", 1, "", true).
		AddRow("cd2", "c1", "d2", 2, "Summary", true)
	mock.ExpectQuery(`FROM case_documents WHERE case_id = \$1 AND is_active = TRUE ORDER BY ord ASC, id ASC`).
		WithArgs("c1").
		WillReturnRows(rows)

	links, err := repo.ListCaseDocuments(context.Background(), "c1")

	assert.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Summary", links[1].TitleOverride)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioPostgres_FindCaseBySlugMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPortfolioPostgres(db)

	mock.ExpectQuery(`FROM cases WHERE slug = \$1 AND is_published = TRUE`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindCaseBySlug(context.Background(), "ghost")

	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
