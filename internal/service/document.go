package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"corpsite/internal/access"
	"corpsite/internal/ids"
	"corpsite/internal/model"
	"corpsite/internal/repository"
	"corpsite/internal/storage"
)

// presignExpiry bounds how long a generated download URL stays valid.
const presignExpiry = 15 * time.Minute

// UploadInput carries the metadata and content of a new library
// document.
type UploadInput struct {
	Title       string
	Slug        string
	Description string
	CategoryID  *string
	AccessType  model.AccessType
	Price       *decimal.Decimal
	Currency    string
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// DocumentListing is the service-level DTO for the library listing.
// Items are projections carrying per-user entitlement flags.
type DocumentListing struct {
	Items          []access.DocumentView    `json:"data"`
	Categories     []model.DocumentCategory `json:"categories"`
	ActiveCategory *model.DocumentCategory  `json:"active_category,omitempty"`
}

// DownloadGrant is a short-lived URL granting access to the document
// content.
type DownloadGrant struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// DocumentService defines the use cases of the document library.
type DocumentService interface {
	// Upload stores the content in object storage, saves metadata to
	// the database, and rolls the object back if the DB save fails.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)

	// List returns published documents, optionally narrowed to one
	// category by slug, projected for the given user. An unknown or
	// inactive category slug yields ErrNotFound for the whole listing.
	List(ctx context.Context, user *model.User, categorySlug, requestPath string) (*DocumentListing, error)

	// Get returns the projection of a single published document.
	Get(ctx context.Context, slug string, user *model.User, requestPath string) (*access.DocumentView, error)

	// Download gates the content behind the entitlement rules and
	// returns a presigned URL when access is granted.
	Download(ctx context.Context, slug string, user *model.User) (*DownloadGrant, error)

	// Delete removes a document from storage and then its record.
	// Unpublished documents can be deleted too.
	Delete(ctx context.Context, slug string) error
}

type documentService struct {
	store     storage.FileStore
	docs      repository.DocumentRepository
	evaluator *access.Evaluator
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(store storage.FileStore, docs repository.DocumentRepository, evaluator *access.Evaluator) DocumentService {
	return &documentService{store: store, docs: docs, evaluator: evaluator}
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	if in.Reader == nil {
		return nil, ErrReaderNil
	}
	if !in.AccessType.Valid() {
		return nil, fmt.Errorf("unknown access type %q", in.AccessType)
	}

	doc := &model.Document{
		ID:          ids.New(),
		Title:       strings.TrimSpace(in.Title),
		Slug:        strings.TrimSpace(in.Slug),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.CategoryID,
		Filename:    in.Filename,
		Size:        in.Size,
		ContentType: in.ContentType,
		IsPublished: true,
		IsOpen:      true,
		AccessType:  in.AccessType,
		Price:       in.Price,
		Currency:    in.Currency,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if doc.Currency == "" {
		doc.Currency = "KZT"
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	// Object key is the generated ID plus the original extension, so
	// collisions are impossible and the original name survives only in
	// metadata.
	ext := filepath.Ext(in.Filename)
	key := filepath.ToSlash(filepath.Join("documents", doc.ID+ext))

	objInfo, err := s.store.Put(ctx, key, in.Reader, storage.PutOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	doc.StorageKey = objInfo.Key
	doc.Size = objInfo.Size

	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, user *model.User, categorySlug, requestPath string) (*DocumentListing, error) {
	categories, err := s.docs.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	var active *model.DocumentCategory
	var docs []model.Document
	if categorySlug != "" {
		active, err = s.docs.FindCategoryBySlug(ctx, categorySlug)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		docs, err = s.docs.ListByCategory(ctx, active.ID)
	} else {
		docs, err = s.docs.ListPublished(ctx)
	}
	if err != nil {
		return nil, err
	}

	views, err := s.evaluator.Project(ctx, docs, user, requestPath)
	if err != nil {
		return nil, err
	}
	return &DocumentListing{Items: views, Categories: categories, ActiveCategory: active}, nil
}

func (s *documentService) Get(ctx context.Context, slug string, user *model.User, requestPath string) (*access.DocumentView, error) {
	if slug == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view, err := s.evaluator.View(ctx, doc, user, requestPath)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Download decides first and presigns second, so storage is never
// touched for a request that fails the gate.
func (s *documentService) Download(ctx context.Context, slug string, user *model.User) (*DownloadGrant, error) {
	if slug == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindBySlug(ctx, slug, true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	can, err := s.evaluator.CanAccess(ctx, doc, user)
	if err != nil {
		return nil, err
	}
	if !can {
		switch {
		case !doc.IsOpen:
			return nil, ErrDocumentClosed
		case !user.Authenticated():
			return nil, ErrLoginRequired
		default:
			return nil, ErrPaymentRequired
		}
	}

	url, err := s.store.PresignGet(ctx, doc.StorageKey, presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}
	return &DownloadGrant{URL: url, Filename: doc.Filename}, nil
}

// Delete removes the object first; if that fails the DB row stays so
// the storage reference is not lost.
func (s *documentService) Delete(ctx context.Context, slug string) error {
	if slug == "" {
		return ErrIDRequired
	}
	doc, err := s.docs.FindBySlug(ctx, slug, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.docs.Delete(ctx, doc.ID)
}
