package domain

// Review is a single entry of a review catalog.
// ID is unique within one catalog only.
type Review struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
