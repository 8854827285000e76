package model

import "time"

// PurchaseStatus is the lifecycle state of a document purchase.
type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "pending"
	PurchasePaid     PurchaseStatus = "paid"
	PurchaseCanceled PurchaseStatus = "canceled"
)

// Valid reports whether the value is a known purchase status.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchasePaid, PurchaseCanceled:
		return true
	}
	return false
}

// DocumentPurchase is the ledger record tying a user to a paid
// document. At most one row exists per (user, document) pair; the
// constraint is enforced by the database, not by application locking.
type DocumentPurchase struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	DocumentID string         `json:"document_id"`
	Status     PurchaseStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	PaidAt     *time.Time     `json:"paid_at,omitempty"`
}
