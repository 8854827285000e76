package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AccessType discriminates free documents from paid ones.
type AccessType string

const (
	AccessFree AccessType = "free"
	AccessPaid AccessType = "paid"
)

// Valid reports whether the value is a known access type.
func (a AccessType) Valid() bool {
	switch a {
	case AccessFree, AccessPaid:
		return true
	}
	return false
}

// ErrPaidPriceRequired is returned by Document.Validate when a paid
// document carries no price. The check runs on the write path; the
// storage layer does not enforce it.
var ErrPaidPriceRequired = errors.New("paid document requires a price")

// DocumentCategory is a flat taxonomy for the document library.
type DocumentCategory struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// Document represents an item of the document library. The binary
// content lives in object storage under StorageKey; this struct is a
// pure domain model shared across layers.
type Document struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	StorageKey  string           `json:"-"`
	Filename    string           `json:"filename"`
	Size        int64            `json:"size"`
	ContentType string           `json:"content_type"`
	IsPublished bool             `json:"is_published"`
	IsOpen      bool             `json:"is_open"`
	AccessType  AccessType       `json:"access_type"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Currency    string           `json:"currency"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// IsPaid reports whether the document requires payment.
func (d *Document) IsPaid() bool {
	return d.AccessType == AccessPaid
}

// IsAvailable reports whether the document is reachable at all:
// published and administratively open.
func (d *Document) IsAvailable() bool {
	return d.IsPublished && d.IsOpen
}

// Validate checks invariants that must hold before the document is
// persisted. A paid document must have a price; a free one may keep
// whatever price is set, it is simply ignored.
func (d *Document) Validate() error {
	if d.AccessType == AccessPaid && d.Price == nil {
		return ErrPaidPriceRequired
	}
	return nil
}

// Recommendation is a standalone downloadable document pinned to the
// home page, ordered by an explicit position.
type Recommendation struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StorageKey string    `json:"-"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
}
