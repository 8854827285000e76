package access

import (
	"context"
	"net/url"

	"corpsite/internal/model"
)

// LockedReason explains to the view layer why a document cannot be
// downloaded by the current user. Exactly one reason applies, picked
// by priority: not published, then closed, then unpaid.
type LockedReason string

const (
	LockedNone         LockedReason = ""
	LockedNotPublished LockedReason = "not_published"
	LockedClosed       LockedReason = "closed"
	LockedNeedPay      LockedReason = "need_pay"
)

// PurchaseChecker resolves whether a user holds a PAID purchase for a
// document. Implemented by the purchase repository.
type PurchaseChecker interface {
	HasPaidPurchase(ctx context.Context, userID, documentID string) (bool, error)
}

// Decide is the pure entitlement predicate. It answers whether user
// may view/download doc given the already-resolved paid-purchase fact.
//
// Rules:
//   - unpublished or closed documents are inaccessible to everyone
//   - free documents are accessible to everyone, anonymous included
//   - paid documents require authentication and either elevated
//     privileges or a PAID purchase
func Decide(doc *model.Document, user *model.User, hasPaidPurchase bool) bool {
	if !doc.IsAvailable() {
		return false
	}
	switch doc.AccessType {
	case model.AccessFree:
		return true
	case model.AccessPaid:
		if !user.Authenticated() {
			return false
		}
		if user.Privileged() {
			return true
		}
		return hasPaidPurchase
	}
	// Unknown access type: treat as locked.
	return false
}

// LockedReasonFor picks the display reason for an inaccessible
// document. canAccess must be the result of Decide for the same
// document and user.
func LockedReasonFor(doc *model.Document, canAccess bool) LockedReason {
	switch {
	case !doc.IsPublished:
		return LockedNotPublished
	case !doc.IsOpen:
		return LockedClosed
	case doc.IsPaid() && !canAccess:
		return LockedNeedPay
	}
	return LockedNone
}

// DocumentView is the read-only projection handed to the view layer.
// Derived per request, never persisted, so transient flags cannot leak
// back into storage.
type DocumentView struct {
	Document     model.Document `json:"document"`
	DisplayTitle string         `json:"display_title"`
	CanAccess    bool           `json:"can_access"`
	NeedsLogin   bool           `json:"needs_login"`
	LockedReason LockedReason   `json:"locked_reason,omitempty"`
	LoginURL     string         `json:"login_url,omitempty"`
}

// Evaluator computes entitlement against live purchase state. Results
// are never cached: purchases and publication flags can change between
// requests.
type Evaluator struct {
	purchases PurchaseChecker
	loginURL  string
}

// NewEvaluator constructs an Evaluator. loginURL is the sign-in entry
// point used to build return-path links for anonymous users.
func NewEvaluator(purchases PurchaseChecker, loginURL string) *Evaluator {
	return &Evaluator{purchases: purchases, loginURL: loginURL}
}

// CanAccess evaluates the entitlement predicate for one document.
func (e *Evaluator) CanAccess(ctx context.Context, doc *model.Document, user *model.User) (bool, error) {
	// The purchase lookup is only relevant for paid documents and
	// ordinary authenticated users; skip the query otherwise.
	hasPaid := false
	if doc.IsPaid() && user.Authenticated() && !user.Privileged() {
		var err error
		hasPaid, err = e.purchases.HasPaidPurchase(ctx, user.ID, doc.ID)
		if err != nil {
			return false, err
		}
	}
	return Decide(doc, user, hasPaid), nil
}

// View builds the projection for a single document. requestPath is
// appended as the return path of the login link when the user needs to
// sign in first.
func (e *Evaluator) View(ctx context.Context, doc *model.Document, user *model.User, requestPath string) (DocumentView, error) {
	can, err := e.CanAccess(ctx, doc, user)
	if err != nil {
		return DocumentView{}, err
	}
	v := DocumentView{
		Document:     *doc,
		DisplayTitle: doc.Title,
		CanAccess:    can,
		NeedsLogin:   doc.IsPaid() && !user.Authenticated(),
		LockedReason: LockedReasonFor(doc, can),
	}
	if v.NeedsLogin {
		v.LoginURL = e.loginLink(requestPath)
	}
	return v, nil
}

// Project builds projections for a listing, preserving input order.
func (e *Evaluator) Project(ctx context.Context, docs []model.Document, user *model.User, requestPath string) ([]DocumentView, error) {
	views := make([]DocumentView, 0, len(docs))
	for i := range docs {
		v, err := e.View(ctx, &docs[i], user, requestPath)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (e *Evaluator) loginLink(next string) string {
	if next == "" {
		return e.loginURL
	}
	return e.loginURL + "?next=" + url.QueryEscape(next)
}
