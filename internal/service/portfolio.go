package service

import (
	"context"
	"database/sql"
	"errors"

	"corpsite/internal/access"
	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// PageDetail is a portfolio page with its cases and the library
// documents of the category sharing the page's slug, if one exists.
type PageDetail struct {
	Page      model.PortfolioPage   `json:"page"`
	Cases     []model.Case          `json:"cases"`
	Documents []access.DocumentView `json:"documents"`
}

// CaseDocumentView pairs a case-to-document link with the entitlement
// projection of the linked document. DisplayTitle already has the
// link's title override applied.
type CaseDocumentView struct {
	Link access.DocumentView `json:"link"`
	Ord  int                 `json:"order"`
}

// CaseDetail aggregates everything shown on a case page.
type CaseDetail struct {
	Case        model.Case             `json:"case"`
	Images      []model.CaseImage      `json:"images"`
	Attachments []model.CaseAttachment `json:"attachments"`
	Documents   []CaseDocumentView     `json:"documents"`
}

// PortfolioService defines the use cases of the portfolio section.
type PortfolioService interface {
	// ListPages returns published portfolio pages in listing order.
	ListPages(ctx context.Context) ([]model.PortfolioPage, error)

	// GetPage returns a page with its published cases and the
	// documents of the matching library category, projected for the
	// given user.
	GetPage(ctx context.Context, slug string, user *model.User, requestPath string) (*PageDetail, error)

	// GetCase returns a case with its images, attachments and linked
	// documents. Document links are projected for the given user so
	// the page can render lock badges.
	GetCase(ctx context.Context, slug string, user *model.User, requestPath string) (*CaseDetail, error)
}

type portfolioService struct {
	portfolio repository.PortfolioRepository
	docs      repository.DocumentRepository
	evaluator *access.Evaluator
}

// NewPortfolioService constructs a PortfolioService.
func NewPortfolioService(portfolio repository.PortfolioRepository, docs repository.DocumentRepository, evaluator *access.Evaluator) PortfolioService {
	return &portfolioService{portfolio: portfolio, docs: docs, evaluator: evaluator}
}

func (s *portfolioService) ListPages(ctx context.Context) ([]model.PortfolioPage, error) {
	return s.portfolio.ListPages(ctx)
}

func (s *portfolioService) GetPage(ctx context.Context, slug string, user *model.User, requestPath string) (*PageDetail, error) {
	if slug == "" {
		return nil, ErrIDRequired
	}
	page, err := s.portfolio.FindPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cases, err := s.portfolio.ListCasesByPage(ctx, page.ID)
	if err != nil {
		return nil, err
	}

	// The library category with the page's slug, when present, feeds
	// the page's document block.
	views := []access.DocumentView{}
	category, err := s.docs.FindCategoryBySlug(ctx, page.Slug)
	switch {
	case err == nil:
		docs, err := s.docs.ListByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		views, err = s.evaluator.Project(ctx, docs, user, requestPath)
		if err != nil {
			return nil, err
		}
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	return &PageDetail{Page: *page, Cases: cases, Documents: views}, nil
}

func (s *portfolioService) GetCase(ctx context.Context, slug string, user *model.User, requestPath string) (*CaseDetail, error) {
	if slug == "" {
		return nil, ErrIDRequired
	}
	c, err := s.portfolio.FindCaseBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	images, err := s.portfolio.ListImages(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	attachments, err := s.portfolio.ListAttachments(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	links, err := s.portfolio.ListCaseDocuments(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	docs := make([]CaseDocumentView, 0, len(links))
	for _, link := range links {
		doc, err := s.portfolio.FindDocumentByID(ctx, link.DocumentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Stale link, the document was removed. Skip it.
				continue
			}
			return nil, err
		}
		if !doc.IsPublished {
			continue
		}
		view, err := s.evaluator.View(ctx, doc, user, requestPath)
		if err != nil {
			return nil, err
		}
		if link.TitleOverride != "" {
			view.DisplayTitle = link.TitleOverride
		}
		docs = append(docs, CaseDocumentView{Link: view, Ord: link.Order})
	}

	return &CaseDetail{Case: *c, Images: images, Attachments: attachments, Documents: docs}, nil
}
