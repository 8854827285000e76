package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// NewsListing is the service-level DTO for the news index.
type NewsListing struct {
	Posts          []model.NewsPost     `json:"data"`
	Categories     []model.NewsCategory `json:"categories"`
	ActiveCategory *model.NewsCategory  `json:"active_category,omitempty"`
}

// NewsService defines the use cases for news articles.
type NewsService interface {
	// List returns published posts, optionally narrowed to one
	// category by slug. An unknown or inactive category slug yields
	// ErrNotFound for the whole listing.
	List(ctx context.Context, categorySlug string) (*NewsListing, error)

	// Get returns a single published post by slug.
	Get(ctx context.Context, slug string) (*model.NewsPost, error)

	// Publish makes the post visible. The publication timestamp is
	// stamped only on first publish; republishing keeps the original.
	Publish(ctx context.Context, slug string) (*model.NewsPost, error)

	// Unpublish hides the post from listings without clearing its
	// publication timestamp.
	Unpublish(ctx context.Context, slug string) (*model.NewsPost, error)
}

type newsService struct {
	news repository.NewsRepository
}

// NewNewsService constructs a NewsService.
func NewNewsService(news repository.NewsRepository) NewsService {
	return &newsService{news: news}
}

func (s *newsService) List(ctx context.Context, categorySlug string) (*NewsListing, error) {
	categories, err := s.news.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	var active *model.NewsCategory
	var posts []model.NewsPost
	if categorySlug != "" {
		active, err = s.news.FindCategoryBySlug(ctx, categorySlug)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		posts, err = s.news.ListByCategory(ctx, active.ID)
	} else {
		posts, err = s.news.ListPublished(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &NewsListing{Posts: posts, Categories: categories, ActiveCategory: active}, nil
}

func (s *newsService) Get(ctx context.Context, slug string) (*model.NewsPost, error) {
	if slug == "" {
		return nil, ErrIDRequired
	}
	post, err := s.news.FindBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *newsService) Publish(ctx context.Context, slug string) (*model.NewsPost, error) {
	return s.savePublication(ctx, slug, func(post *model.NewsPost) {
		post.Publish(time.Now().UTC())
	})
}

func (s *newsService) Unpublish(ctx context.Context, slug string) (*model.NewsPost, error) {
	return s.savePublication(ctx, slug, func(post *model.NewsPost) {
		post.Unpublish()
	})
}

func (s *newsService) savePublication(ctx context.Context, slug string, mutate func(*model.NewsPost)) (*model.NewsPost, error) {
	if slug == "" {
		return nil, ErrIDRequired
	}
	post, err := s.news.FindBySlug(ctx, slug, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	mutate(post)
	if err := s.news.SavePublication(ctx, post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}
