package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	"corpsite/internal/service"
)

type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) ListPages(ctx context.Context) ([]model.PortfolioPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioPage), args.Error(1)
}

func (m *MockPortfolioService) GetPage(ctx context.Context, slug string, user *model.User, requestPath string) (*service.PageDetail, error) {
	args := m.Called(ctx, slug, user, requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageDetail), args.Error(1)
}

func (m *MockPortfolioService) GetCase(ctx context.Context, slug string, user *model.User, requestPath string) (*service.CaseDetail, error) {
	args := m.Called(ctx, slug, user, requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CaseDetail), args.Error(1)
}
