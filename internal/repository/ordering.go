package repository

// Listing order is a presentation contract: templates and API
// consumers rely on it. Every listing query takes its ORDER BY clause
// from this table instead of repeating it inline.

// Entity keys the ordering policy table.
type Entity string

const (
	EntityDocumentCategory Entity = "document_categories"
	EntityDocument         Entity = "documents"
	EntityPurchase         Entity = "document_purchases"
	EntityNewsCategory     Entity = "news_categories"
	EntityNewsPost         Entity = "news_posts"
	EntityPortfolioPage    Entity = "portfolio_pages"
	EntityCase             Entity = "cases"
	EntityCaseImage        Entity = "case_images"
	EntityCaseAttachment   Entity = "case_attachments"
	EntityCaseDocument     Entity = "case_documents"
	EntityContactItem      Entity = "contact_items"
	EntityContactRequest   Entity = "contact_requests"
	EntityRecommendation   Entity = "recommendations"
)

var orderPolicy = map[Entity]string{
	EntityDocumentCategory: "ord ASC, title ASC",
	EntityDocument:         "created_at DESC",
	EntityPurchase:         "created_at DESC",
	EntityNewsCategory:     "ord ASC, title ASC",
	EntityNewsPost:         "published_at DESC, created_at DESC",
	EntityPortfolioPage:    "ord ASC, title ASC",
	EntityCase:             "created_at DESC",
	EntityCaseImage:        "ord ASC, id ASC",
	EntityCaseAttachment:   "ord ASC, id ASC",
	EntityCaseDocument:     "ord ASC, id ASC",
	EntityContactItem:      "ord ASC, id ASC",
	EntityContactRequest:   "created_at DESC",
	EntityRecommendation:   "ord ASC, created_at DESC",
}

// OrderBy returns the fixed ORDER BY clause for the entity. Unknown
// entities panic: a missing policy is a programming error, not a
// runtime condition.
func OrderBy(e Entity) string {
	clause, ok := orderPolicy[e]
	if !ok {
		panic("repository: no ordering policy for entity " + string(e))
	}
	return clause
}
