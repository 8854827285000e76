package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corpsite/internal/access"
	"corpsite/internal/model"
	"corpsite/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, user *model.User, categorySlug, requestPath string) (*service.DocumentListing, error) {
	args := m.Called(ctx, user, categorySlug, requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListing), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, slug string, user *model.User, requestPath string) (*access.DocumentView, error) {
	args := m.Called(ctx, slug, user, requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.DocumentView), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, slug string, user *model.User) (*service.DownloadGrant, error) {
	args := m.Called(ctx, slug, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadGrant), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
