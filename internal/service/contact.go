package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"corpsite/internal/ids"
	"corpsite/internal/model"
	"corpsite/internal/repository"
)

// ContactPage is the public contact page content. Profile is nil when
// no profile is active; the page still renders.
type ContactPage struct {
	Profile *model.ContactProfile `json:"profile,omitempty"`
	Items   []model.ContactItem   `json:"items"`
}

// ContactSubmission is an inbound contact form payload.
type ContactSubmission struct {
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Message  string `json:"message" form:"message"`
}

// ContactRequestListing is a page of stored contact requests.
type ContactRequestListing struct {
	Items []model.ContactRequest `json:"data"`
	Total int                    `json:"total"`
}

// ContactService defines the use cases of the contact page and the
// lead-capture inbox.
type ContactService interface {
	// Page returns the active contact profile with its items.
	Page(ctx context.Context) (*ContactPage, error)

	// Submit stores an inbound contact request. Fields are trimmed but
	// never validated: an empty submission is stored too, leads must
	// not be lost to format checks.
	Submit(ctx context.Context, in ContactSubmission) (*model.ContactRequest, error)

	// ListRequests returns stored requests newest first, for triage.
	ListRequests(ctx context.Context, limit, offset int) (*ContactRequestListing, error)

	// MarkProcessed flags the given requests as handled and returns
	// the number of rows updated.
	MarkProcessed(ctx context.Context, requestIDs []string) (int64, error)
}

type contactService struct {
	contacts repository.ContactRepository
}

// NewContactService constructs a ContactService.
func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) Page(ctx context.Context) (*ContactPage, error) {
	profile, err := s.contacts.ActiveProfile(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ContactPage{Items: []model.ContactItem{}}, nil
		}
		return nil, err
	}
	items, err := s.contacts.ListItems(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return &ContactPage{Profile: profile, Items: items}, nil
}

func (s *contactService) Submit(ctx context.Context, in ContactSubmission) (*model.ContactRequest, error) {
	req := &model.ContactRequest{
		ID:        ids.New(),
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: time.Now().UTC(),
	}
	return s.contacts.CreateRequest(ctx, req)
}

func (s *contactService) ListRequests(ctx context.Context, limit, offset int) (*ContactRequestListing, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.contacts.ListRequests(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ContactRequestListing{Items: res.Items, Total: res.Total}, nil
}

func (s *contactService) MarkProcessed(ctx context.Context, requestIDs []string) (int64, error) {
	return s.contacts.MarkProcessed(ctx, requestIDs)
}
