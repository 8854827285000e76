package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"corpsite/internal/model"
	repomocks "corpsite/internal/repository/mocks"
)

func newPortfolioFixture() (*repomocks.MockPortfolioRepository, *repomocks.MockDocumentRepository, PortfolioService) {
	portfolio := new(repomocks.MockPortfolioRepository)
	docs := new(repomocks.MockDocumentRepository)
	purchases := new(repomocks.MockPurchaseRepository)
	svc := NewPortfolioService(portfolio, docs, newTestEvaluator(purchases))
	return portfolio, docs, svc
}

func TestPortfolioGetPageIncludesCategoryDocuments(t *testing.T) {
	portfolio, docs, svc := newPortfolioFixture()

	page := &model.PortfolioPage{ID: "pp1", Slug: "energy-audits", IsPublished: true}
	portfolio.On("FindPageBySlug", mock.Anything, "energy-audits").Return(page, nil)
	portfolio.On("ListCasesByPage", mock.Anything, "pp1").Return([]model.Case{{ID: "c1"}}, nil)
	docs.On("FindCategoryBySlug", mock.Anything, "energy-audits").
		Return(&model.DocumentCategory{ID: "cat1", Slug: "energy-audits", IsActive: true}, nil)
	docs.On("ListByCategory", mock.Anything, "cat1").Return([]model.Document{*freeDoc("prices")}, nil)

	detail, err := svc.GetPage(context.Background(), "energy-audits", nil, "/portfolio/energy-audits")

	assert.NoError(t, err)
	assert.Len(t, detail.Cases, 1)
	assert.Len(t, detail.Documents, 1)
	assert.True(t, detail.Documents[0].CanAccess)
}

func TestPortfolioGetPageWithoutMatchingCategory(t *testing.T) {
	portfolio, docs, svc := newPortfolioFixture()

	page := &model.PortfolioPage{ID: "pp1", Slug: "consulting", IsPublished: true}
	portfolio.On("FindPageBySlug", mock.Anything, "consulting").Return(page, nil)
	portfolio.On("ListCasesByPage", mock.Anything, "pp1").Return([]model.Case{}, nil)
	docs.On("FindCategoryBySlug", mock.Anything, "consulting").Return(nil, sql.ErrNoRows)

	detail, err := svc.GetPage(context.Background(), "consulting", nil, "/portfolio/consulting")

	assert.NoError(t, err)
	assert.Empty(t, detail.Documents)
	docs.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
}

func TestPortfolioGetPageMissing(t *testing.T) {
	portfolio, _, svc := newPortfolioFixture()

	portfolio.On("FindPageBySlug", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	_, err := svc.GetPage(context.Background(), "ghost", nil, "/portfolio/ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolioGetCaseAppliesTitleOverride(t *testing.T) {
	portfolio, _, svc := newPortfolioFixture()

	c := &model.Case{ID: "c1", Slug: "warehouse", IsPublished: true}
	portfolio.On("FindCaseBySlug", mock.Anything, "warehouse").Return(c, nil)
	portfolio.On("ListImages", mock.Anything, "c1").Return([]model.CaseImage{}, nil)
	portfolio.On("ListAttachments", mock.Anything, "c1").Return([]model.CaseAttachment{}, nil)
	portfolio.On("ListCaseDocuments", mock.Anything, "c1").Return([]model.CaseDocument{
		{ID: "cd1", CaseID: "c1", DocumentID: "d2", TitleOverride: "Project summary", IsActive: true},
	}, nil)
	portfolio.On("FindDocumentByID", mock.Anything, "d2").Return(freeDoc("prices"), nil)

	detail, err := svc.GetCase(context.Background(), "warehouse", nil, "/cases/warehouse")

	assert.NoError(t, err)
	assert.Len(t, detail.Documents, 1)
	assert.Equal(t, "Project summary", detail.Documents[0].Link.DisplayTitle)
	assert.True(t, detail.Documents[0].Link.CanAccess)
}

func TestPortfolioGetCaseSkipsStaleAndUnpublishedLinks(t *testing.T) {
	portfolio, _, svc := newPortfolioFixture()

	c := &model.Case{ID: "c1", Slug: "warehouse", IsPublished: true}
	unpublished := freeDoc("draft")
	unpublished.ID = "d9"
	unpublished.IsPublished = false

	portfolio.On("FindCaseBySlug", mock.Anything, "warehouse").Return(c, nil)
	portfolio.On("ListImages", mock.Anything, "c1").Return([]model.CaseImage{}, nil)
	portfolio.On("ListAttachments", mock.Anything, "c1").Return([]model.CaseAttachment{}, nil)
	portfolio.On("ListCaseDocuments", mock.Anything, "c1").Return([]model.CaseDocument{
		{ID: "cd1", CaseID: "c1", DocumentID: "gone", IsActive: true},
		{ID: "cd2", CaseID: "c1", DocumentID: "d9", IsActive: true},
	}, nil)
	portfolio.On("FindDocumentByID", mock.Anything, "gone").Return(nil, sql.ErrNoRows)
	portfolio.On("FindDocumentByID", mock.Anything, "d9").Return(unpublished, nil)

	detail, err := svc.GetCase(context.Background(), "warehouse", nil, "/cases/warehouse")

	assert.NoError(t, err)
	assert.Empty(t, detail.Documents)
}
