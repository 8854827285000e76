// Package service implements the use cases of the site: the document
// library with its download gate, the purchase ledger, news
// publication, portfolio pages and contact intake. Services own the
// business rules; repositories stay dumb.
package service

import "errors"

// Sentinel errors shared by the services. Handlers translate them to
// HTTP responses or redirects.
var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("not found")
	ErrReaderNil  = errors.New("reader is nil")

	// ErrLoginRequired means the operation needs a signed-in user.
	// For downloads the handler redirects to the login page with a
	// return path.
	ErrLoginRequired = errors.New("login required")

	// ErrPaymentRequired means an authenticated user lacks a PAID
	// purchase for a paid document. The handler redirects to the
	// payment route, never answers 403.
	ErrPaymentRequired = errors.New("payment required")

	// ErrDocumentClosed means the document is published but closed for
	// download by an administrative flag.
	ErrDocumentClosed = errors.New("document closed")

	// ErrFreeDocument is returned when a purchase is initiated for a
	// document that does not require payment.
	ErrFreeDocument = errors.New("document is free")

	// ErrInvalidStatus is returned for unknown purchase status values.
	ErrInvalidStatus = errors.New("invalid purchase status")
)
