package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// PurchasePostgres is a PostgreSQL implementation of
// repository.PurchaseRepository. The (user_id, document_id) pair is
// unique at the schema level; concurrent inserts for the same pair
// merge on conflict instead of producing duplicates.
type PurchasePostgres struct {
	db *sql.DB
}

// NewPurchasePostgres creates a new PurchasePostgres repository.
func NewPurchasePostgres(db *sql.DB) *PurchasePostgres {
	return &PurchasePostgres{db: db}
}

var _ repository.PurchaseRepository = (*PurchasePostgres)(nil)

const purchaseColumns = `id, user_id, document_id, status, created_at, paid_at`

func scanPurchase(row rowScanner) (*model.DocumentPurchase, error) {
	var (
		p      model.DocumentPurchase
		status string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.DocumentID, &status, &p.CreatedAt, &p.PaidAt); err != nil {
		return nil, err
	}
	p.Status = model.PurchaseStatus(status)
	return &p, nil
}

// GetOrCreate inserts the purchase; a conflicting row for the same
// (user, document) pair wins and is returned unchanged. Two statements
// suffice: the insert is conflict-safe, and the follow-up select only
// runs when the insert inserted nothing.
func (r *PurchasePostgres) GetOrCreate(ctx context.Context, purchase *model.DocumentPurchase) (*model.DocumentPurchase, bool, error) {
	const qInsert = `
		INSERT INTO document_purchases (id, user_id, document_id, status, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, document_id) DO NOTHING
		RETURNING ` + purchaseColumns
	row := r.db.QueryRowContext(ctx, qInsert,
		purchase.ID,
		purchase.UserID,
		purchase.DocumentID,
		string(purchase.Status),
		purchase.CreatedAt,
		purchase.PaidAt,
	)
	created, err := scanPurchase(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	const qSelect = `
		SELECT ` + purchaseColumns + `
		FROM document_purchases
		WHERE user_id = $1 AND document_id = $2
	`
	existing, err := scanPurchase(r.db.QueryRowContext(ctx, qSelect, purchase.UserID, purchase.DocumentID))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByID fetches a single purchase by its ID.
func (r *PurchasePostgres) FindByID(ctx context.Context, id string) (*model.DocumentPurchase, error) {
	const q = `SELECT ` + purchaseColumns + ` FROM document_purchases WHERE id = $1`
	return scanPurchase(r.db.QueryRowContext(ctx, q, id))
}

// MarkPaid sets status and paid_at atomically in one UPDATE.
func (r *PurchasePostgres) MarkPaid(ctx context.Context, id string, paidAt time.Time) (*model.DocumentPurchase, error) {
	const q = `
		UPDATE document_purchases
		SET status = $2, paid_at = $3
		WHERE id = $1
		RETURNING ` + purchaseColumns
	return scanPurchase(r.db.QueryRowContext(ctx, q, id, string(model.PurchasePaid), paidAt))
}

// SetStatus overrides the status without touching paid_at.
func (r *PurchasePostgres) SetStatus(ctx context.Context, id string, status model.PurchaseStatus) (*model.DocumentPurchase, error) {
	const q = `
		UPDATE document_purchases
		SET status = $2
		WHERE id = $1
		RETURNING ` + purchaseColumns
	return scanPurchase(r.db.QueryRowContext(ctx, q, id, string(status)))
}

// HasPaidPurchase reports whether a PAID purchase exists for the pair.
func (r *PurchasePostgres) HasPaidPurchase(ctx context.Context, userID, documentID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM document_purchases
			WHERE user_id = $1 AND document_id = $2 AND status = $3
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, userID, documentID, string(model.PurchasePaid)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
