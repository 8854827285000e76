package model

import "time"

// PortfolioPage is a section of the portfolio, e.g. a service line.
type PortfolioPage struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	IsPublished bool   `json:"is_published"`
}

// Case is a portfolio case study. It aggregates ordered images,
// attachments, and links to library documents.
type Case struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ShortText   string    `json:"short_text,omitempty"`
	Body        string    `json:"body,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CaseImage is a photo attached to a case.
type CaseImage struct {
	ID         string `json:"id"`
	CaseID     string `json:"case_id"`
	StorageKey string `json:"-"`
	Caption    string `json:"caption,omitempty"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"is_active"`
}

// CaseAttachment is an arbitrary file attached to a case.
type CaseAttachment struct {
	ID         string `json:"id"`
	CaseID     string `json:"case_id"`
	Title      string `json:"title"`
	StorageKey string `json:"-"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"is_active"`
}

// CaseDocument links a library document into a case, with its own
// ordering, an optional display-title override and an active flag.
// One link per (case, document) pair.
type CaseDocument struct {
	ID            string `json:"id"`
	CaseID        string `json:"case_id"`
	DocumentID    string `json:"document_id"`
	Order         int    `json:"order"`
	TitleOverride string `json:"title_override,omitempty"`
	IsActive      bool   `json:"is_active"`
}
