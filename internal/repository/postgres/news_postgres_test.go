package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"corpsite/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newsColumnNames = []string{
	"id", "title", "slug", "category_id", "preview_text", "body",
	"is_published", "published_at", "created_at", "updated_at",
}

func newsRow(rows *sqlmock.Rows, p *model.NewsPost) *sqlmock.Rows {
	return rows.AddRow(
		p.ID, p.Title, p.Slug, p.CategoryID, p.PreviewText, p.Body,
		p.IsPublished, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
}

func TestNewsPostgres_ListPublishedOrdering(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewNewsPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	post := &model.NewsPost{
		ID: "n1", Title: "Launch", Slug: "launch", Body: "text",
		IsPublished: true, PublishedAt: &now, CreatedAt: now, UpdatedAt: now,
	}

	// News order by publication date first, creation date as tiebreak.
	mock.ExpectQuery(`SELECT (.+) FROM news_posts WHERE is_published = TRUE ORDER BY published_at DESC, created_at DESC`).
		WillReturnRows(newsRow(sqlmock.NewRows(newsColumnNames), post))

	posts, err := repo.ListPublished(ctx)

	assert.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "launch", posts[0].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsPostgres_SavePublication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewNewsPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	post := &model.NewsPost{ID: "n1", IsPublished: true, PublishedAt: &now}

	t.Run("updates lifecycle fields", func(t *testing.T) {
		mock.ExpectExec(`UPDATE news_posts SET is_published = \$2, published_at = \$3 WHERE id = \$1`).
			WithArgs("n1", true, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SavePublication(ctx, post))
	})

	t.Run("missing post surfaces as no rows", func(t *testing.T) {
		mock.ExpectExec(`UPDATE news_posts SET is_published = \$2, published_at = \$3 WHERE id = \$1`).
			WithArgs("n1", true, now).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SavePublication(ctx, post)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})
}

func TestNewsPostgres_FindCategoryBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewNewsPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "title", "slug", "ord", "is_active"}).
		AddRow("c1", "Company", "company", 0, true)
	mock.ExpectQuery(`SELECT (.+) FROM news_categories\s+WHERE slug = \$1 AND is_active = TRUE`).
		WithArgs("company").
		WillReturnRows(rows)

	cat, err := repo.FindCategoryBySlug(ctx, "company")

	assert.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "Company", cat.Title)
}
