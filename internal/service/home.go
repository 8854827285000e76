package service

import (
	"context"

	"corpsite/internal/access"
	"corpsite/internal/model"
	"corpsite/internal/repository"
)

const (
	homeDocumentLimit = 3
	homeNewsLimit     = 3
)

// HomePage aggregates the blocks of the landing page.
type HomePage struct {
	LatestDocuments []access.DocumentView  `json:"latest_documents"`
	LatestNews      []model.NewsPost       `json:"latest_news"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// HomeService builds the landing page.
type HomeService interface {
	Home(ctx context.Context, user *model.User, requestPath string) (*HomePage, error)
}

type homeService struct {
	docs      repository.DocumentRepository
	news      repository.NewsRepository
	evaluator *access.Evaluator
}

// NewHomeService constructs a HomeService.
func NewHomeService(docs repository.DocumentRepository, news repository.NewsRepository, evaluator *access.Evaluator) HomeService {
	return &homeService{docs: docs, news: news, evaluator: evaluator}
}

func (s *homeService) Home(ctx context.Context, user *model.User, requestPath string) (*HomePage, error) {
	docs, err := s.docs.ListLatestOpen(ctx, homeDocumentLimit)
	if err != nil {
		return nil, err
	}
	views, err := s.evaluator.Project(ctx, docs, user, requestPath)
	if err != nil {
		return nil, err
	}

	posts, err := s.news.ListLatest(ctx, homeNewsLimit)
	if err != nil {
		return nil, err
	}

	recs, err := s.docs.ListRecommendations(ctx)
	if err != nil {
		return nil, err
	}

	return &HomePage{LatestDocuments: views, LatestNews: posts, Recommendations: recs}, nil
}
