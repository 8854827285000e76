package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	repomocks "corpsite/internal/repository/mocks"
)

func TestNewsPublishStampsTimestampOnce(t *testing.T) {
	news := new(repomocks.MockNewsRepository)
	svc := NewNewsService(news)

	post := &model.NewsPost{ID: "n1", Slug: "launch", IsPublished: false}
	news.On("FindBySlug", mock.Anything, "launch", false).Return(post, nil)
	news.On("SavePublication", mock.Anything, mock.MatchedBy(func(p *model.NewsPost) bool {
		return p.IsPublished && p.PublishedAt != nil
	})).Return(nil)

	got, err := svc.Publish(context.Background(), "launch")

	assert.NoError(t, err)
	assert.True(t, got.IsPublished)
	assert.NotNil(t, got.PublishedAt)
}

func TestNewsRepublishKeepsOriginalTimestamp(t *testing.T) {
	news := new(repomocks.MockNewsRepository)
	svc := NewNewsService(news)

	original := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	post := &model.NewsPost{ID: "n1", Slug: "launch", IsPublished: false, PublishedAt: &original}
	news.On("FindBySlug", mock.Anything, "launch", false).Return(post, nil)
	news.On("SavePublication", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Publish(context.Background(), "launch")

	assert.NoError(t, err)
	assert.Equal(t, &original, got.PublishedAt)
}

func TestNewsUnpublishKeepsTimestamp(t *testing.T) {
	news := new(repomocks.MockNewsRepository)
	svc := NewNewsService(news)

	original := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	post := &model.NewsPost{ID: "n1", Slug: "launch", IsPublished: true, PublishedAt: &original}
	news.On("FindBySlug", mock.Anything, "launch", false).Return(post, nil)
	news.On("SavePublication", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.Unpublish(context.Background(), "launch")

	assert.NoError(t, err)
	assert.False(t, got.IsPublished)
	assert.Equal(t, &original, got.PublishedAt)
}

func TestNewsGetUnpublishedIsNotFound(t *testing.T) {
	news := new(repomocks.MockNewsRepository)
	svc := NewNewsService(news)

	news.On("FindBySlug", mock.Anything, "draft", true).Return(nil, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), "draft")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsListUnknownCategory(t *testing.T) {
	news := new(repomocks.MockNewsRepository)
	svc := NewNewsService(news)

	news.On("ListCategories", mock.Anything).Return([]model.NewsCategory{}, nil)
	news.On("FindCategoryBySlug", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	_, err := svc.List(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsListByCategory(t *testing.T) {
	news := new(repomocks.MockNewsRepository)
	svc := NewNewsService(news)

	cat := &model.NewsCategory{ID: "c1", Slug: "press", IsActive: true}
	news.On("ListCategories", mock.Anything).Return([]model.NewsCategory{*cat}, nil)
	news.On("FindCategoryBySlug", mock.Anything, "press").Return(cat, nil)
	news.On("ListByCategory", mock.Anything, "c1").Return([]model.NewsPost{{ID: "n1"}}, nil)

	listing, err := svc.List(context.Background(), "press")

	assert.NoError(t, err)
	assert.Len(t, listing.Posts, 1)
	assert.Equal(t, "press", listing.ActiveCategory.Slug)
}
