package domain

import "time"

// InventoryEntry is an ownership record linking a user to an item.
// Once IsSold is set the entry is immutable and excluded from the
// active inventory view. OpenedFromCaseID is nulled out if the source
// case is later deleted; the owned item survives.
type InventoryEntry struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	ItemID           int64     `json:"item_id"`
	IsSold           bool      `json:"is_sold"`
	SoldPrice        *int64    `json:"sold_price,omitempty"`
	OpenedFromCaseID *int64    `json:"opened_from_case_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// InventoryItem is an unsold entry joined with its item (inventory view)
type InventoryItem struct {
	Entry InventoryEntry `json:"entry"`
	Item  Item           `json:"item"`
}
