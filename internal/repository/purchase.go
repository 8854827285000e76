package repository

import (
	"context"
	"time"

	"corpsite/internal/model"
)

// PurchaseRepository defines data access for the purchase ledger. The
// database enforces at most one row per (user, document) pair;
// GetOrCreate resolves insert races by merging on conflict.
type PurchaseRepository interface {
	// GetOrCreate inserts the purchase unless a row for its
	// (user, document) pair already exists, in which case that row is
	// returned unchanged. The second return value reports whether a new
	// row was created.
	GetOrCreate(ctx context.Context, purchase *model.DocumentPurchase) (*model.DocumentPurchase, bool, error)

	// FindByID returns a purchase by its ID.
	FindByID(ctx context.Context, id string) (*model.DocumentPurchase, error)

	// MarkPaid sets status=paid and paid_at in a single UPDATE and
	// returns the stored row.
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (*model.DocumentPurchase, error)

	// SetStatus is the administrative status override. It does not
	// touch paid_at.
	SetStatus(ctx context.Context, id string, status model.PurchaseStatus) (*model.DocumentPurchase, error)

	// HasPaidPurchase reports whether a PAID purchase exists for the
	// (user, document) pair.
	HasPaidPurchase(ctx context.Context, userID, documentID string) (bool, error)
}
