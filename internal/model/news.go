package model

import "time"

// NewsCategory is a flat taxonomy for news posts.
type NewsCategory struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// NewsPost is an article with an explicit publish lifecycle. Posts
// start unpublished; PublishedAt is stamped once and survives
// unpublish/republish cycles.
type NewsPost struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CategoryID  *string    `json:"category_id,omitempty"`
	PreviewText string     `json:"preview_text,omitempty"`
	Body        string     `json:"body"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Publish marks the post published. The publication timestamp is set
// only if it was never set before, so republishing keeps the original
// date.
func (p *NewsPost) Publish(now time.Time) {
	p.IsPublished = true
	if p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

// Unpublish hides the post from listings but leaves PublishedAt
// untouched.
func (p *NewsPost) Unpublish() {
	p.IsPublished = false
}
