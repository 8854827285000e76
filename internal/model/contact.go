package model

import "time"

// ContactKind is the type of a single contact entry on the contact
// page.
type ContactKind string

const (
	ContactPhone    ContactKind = "phone"
	ContactEmail    ContactKind = "email"
	ContactWhatsApp ContactKind = "whatsapp"
	ContactTelegram ContactKind = "telegram"
	ContactAddress  ContactKind = "address"
	ContactWebsite  ContactKind = "website"
	ContactOther    ContactKind = "other"
)

// Valid reports whether the value is a known contact kind.
func (k ContactKind) Valid() bool {
	switch k {
	case ContactPhone, ContactEmail, ContactWhatsApp, ContactTelegram,
		ContactAddress, ContactWebsite, ContactOther:
		return true
	}
	return false
}

// ContactProfile is the editable content of the contact page. Only
// one profile is active at a time.
type ContactProfile struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	About     string    `json:"about,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactItem is one entry (phone, email, address, ...) of a contact
// profile.
type ContactItem struct {
	ID        string      `json:"id"`
	ProfileID string      `json:"profile_id"`
	Kind      ContactKind `json:"kind"`
	Label     string      `json:"label,omitempty"`
	Value     string      `json:"value"`
	Link      string      `json:"link,omitempty"`
	Order     int         `json:"order"`
	IsActive  bool        `json:"is_active"`
}

// ContactRequest is an inbound lead-capture message. Intake is
// intentionally permissive: fields are trimmed but never validated, so
// empty submissions are stored too.
type ContactRequest struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	IsProcessed bool      `json:"is_processed"`
	CreatedAt   time.Time `json:"created_at"`
}
