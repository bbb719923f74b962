package domain

import "time"

// Case is a purchasable bundle whose opening yields one item from a weighted pool
type Case struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceStars  int64     `json:"price_stars"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CaseContent is one eligible drop in a case's pool.
// Weight is a positive relative likelihood, not a normalized probability:
// a pool summing to 0.1 behaves identically to one summing to 100.
type CaseContent struct {
	Item   Item    `json:"item"`
	Weight float64 `json:"weight"`
}

// CaseWithContents is a case joined with its active draw pool (listing view)
type CaseWithContents struct {
	Case     Case          `json:"case"`
	Contents []CaseContent `json:"contents"`
}
