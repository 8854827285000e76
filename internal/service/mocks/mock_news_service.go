package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	"corpsite/internal/service"
)

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) List(ctx context.Context, categorySlug string) (*service.NewsListing, error) {
	args := m.Called(ctx, categorySlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NewsListing), args.Error(1)
}

func (m *MockNewsService) Get(ctx context.Context, slug string) (*model.NewsPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsPost), args.Error(1)
}

func (m *MockNewsService) Publish(ctx context.Context, slug string) (*model.NewsPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsPost), args.Error(1)
}

func (m *MockNewsService) Unpublish(ctx context.Context, slug string) (*model.NewsPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsPost), args.Error(1)
}
