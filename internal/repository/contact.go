package repository

import (
	"context"

	"corpsite/internal/model"
)

// ContactRepository defines data access for the contact page content
// and inbound contact requests.
type ContactRepository interface {
	// ActiveProfile returns the currently active contact profile.
	ActiveProfile(ctx context.Context) (*model.ContactProfile, error)

	// ListItems returns the active items of a profile in listing order.
	ListItems(ctx context.Context, profileID string) ([]model.ContactItem, error)

	// CreateRequest inserts an inbound contact request and returns the
	// stored row.
	CreateRequest(ctx context.Context, req *model.ContactRequest) (*model.ContactRequest, error)

	// ListRequests returns a page of contact requests, newest first,
	// with the total row count. Used for administrative triage.
	ListRequests(ctx context.Context, pq PageQuery) (*PageResult[model.ContactRequest], error)

	// MarkProcessed flags the given requests as processed and returns
	// the number of rows updated.
	MarkProcessed(ctx context.Context, ids []string) (int64, error)
}
