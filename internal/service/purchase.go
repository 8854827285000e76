package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"corpsite/internal/ids"
	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// PurchaseService defines the use cases of the purchase ledger. The
// ledger only records intent and settlement; money movement happens
// elsewhere.
type PurchaseService interface {
	// Initiate records the user's intent to buy a paid document. If a
	// ledger row for the (user, document) pair already exists it is
	// returned unchanged, whatever its status. The second return value
	// reports whether a new row was created.
	Initiate(ctx context.Context, user *model.User, documentSlug string) (*model.DocumentPurchase, bool, error)

	// Get returns a purchase by ID.
	Get(ctx context.Context, id string) (*model.DocumentPurchase, error)

	// MarkPaid settles a purchase. Calling it again is a no-op: the
	// first settlement time wins.
	MarkPaid(ctx context.Context, id string) (*model.DocumentPurchase, error)

	// SetStatus is the administrative override. It never touches
	// paid_at, so a canceled-then-restored purchase keeps its original
	// settlement time.
	SetStatus(ctx context.Context, id string, status model.PurchaseStatus) (*model.DocumentPurchase, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	docs      repository.DocumentRepository
}

// NewPurchaseService constructs a PurchaseService.
func NewPurchaseService(purchases repository.PurchaseRepository, docs repository.DocumentRepository) PurchaseService {
	return &purchaseService{purchases: purchases, docs: docs}
}

func (s *purchaseService) Initiate(ctx context.Context, user *model.User, documentSlug string) (*model.DocumentPurchase, bool, error) {
	if !user.Authenticated() {
		return nil, false, ErrLoginRequired
	}
	if documentSlug == "" {
		return nil, false, ErrIDRequired
	}

	doc, err := s.docs.FindBySlug(ctx, documentSlug, true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	// A closed document cannot be bought either.
	if !doc.IsAvailable() {
		return nil, false, ErrNotFound
	}
	if !doc.IsPaid() {
		return nil, false, ErrFreeDocument
	}

	purchase := &model.DocumentPurchase{
		ID:         ids.New(),
		UserID:     user.ID,
		DocumentID: doc.ID,
		Status:     model.PurchasePending,
		CreatedAt:  time.Now().UTC(),
	}
	return s.purchases.GetOrCreate(ctx, purchase)
}

func (s *purchaseService) Get(ctx context.Context, id string) (*model.DocumentPurchase, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *purchaseService) MarkPaid(ctx context.Context, id string) (*model.DocumentPurchase, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == model.PurchasePaid {
		return p, nil
	}
	updated, err := s.purchases.MarkPaid(ctx, id, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *purchaseService) SetStatus(ctx context.Context, id string, status model.PurchaseStatus) (*model.DocumentPurchase, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	updated, err := s.purchases.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}
