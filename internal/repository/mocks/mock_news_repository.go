package mocks

import (
	"context"

	"corpsite/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) ListPublished(ctx context.Context) ([]model.NewsPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsPost), args.Error(1)
}

func (m *MockNewsRepository) ListByCategory(ctx context.Context, categoryID string) ([]model.NewsPost, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsPost), args.Error(1)
}

func (m *MockNewsRepository) ListLatest(ctx context.Context, limit int) ([]model.NewsPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsPost), args.Error(1)
}

func (m *MockNewsRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.NewsPost, error) {
	args := m.Called(ctx, slug, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsPost), args.Error(1)
}

func (m *MockNewsRepository) SavePublication(ctx context.Context, post *model.NewsPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockNewsRepository) FindCategoryBySlug(ctx context.Context, slug string) (*model.NewsCategory, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsCategory), args.Error(1)
}

func (m *MockNewsRepository) ListCategories(ctx context.Context) ([]model.NewsCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsCategory), args.Error(1)
}
