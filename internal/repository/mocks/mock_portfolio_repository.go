package mocks

import (
	"context"

	"corpsite/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) ListPages(ctx context.Context) ([]model.PortfolioPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PortfolioPage), args.Error(1)
}

func (m *MockPortfolioRepository) FindPageBySlug(ctx context.Context, slug string) (*model.PortfolioPage, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PortfolioPage), args.Error(1)
}

func (m *MockPortfolioRepository) ListCasesByPage(ctx context.Context, pageID string) ([]model.Case, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Case), args.Error(1)
}

func (m *MockPortfolioRepository) FindCaseBySlug(ctx context.Context, slug string) (*model.Case, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockPortfolioRepository) ListImages(ctx context.Context, caseID string) ([]model.CaseImage, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseImage), args.Error(1)
}

func (m *MockPortfolioRepository) ListAttachments(ctx context.Context, caseID string) ([]model.CaseAttachment, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseAttachment), args.Error(1)
}

func (m *MockPortfolioRepository) ListCaseDocuments(ctx context.Context, caseID string) ([]model.CaseDocument, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockPortfolioRepository) FindDocumentByID(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}
