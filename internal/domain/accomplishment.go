package domain

// AccomplishmentBundle is one organization together with its logged accomplishments.
// Entries are pointers because the API occasionally returns nulls inside the list.
type AccomplishmentBundle struct {
	Organization    OrganizationProfile `json:"organization"`
	Accomplishments []*Accomplishment   `json:"accomplishments"`
}

// Accomplishment is a categorized, point-bearing activity record.
type Accomplishment struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Category  string      `json:"category"`
	Points    int         `json:"points"`
	Documents []*Document `json:"documents"`
}

// Document is a supporting file attached to an accomplishment.
type Document struct {
	Label string `json:"label"`
	File  string `json:"file"`
}
