package domain

import "time"

// OpeningRecord is the append-only audit row written once per successful
// case opening. Never updated or deleted by normal operation.
type OpeningRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CaseID     int64     `json:"case_id"`
	ItemID     int64     `json:"item_id"`
	StarsSpent int64     `json:"stars_spent"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryEntry is an opening record joined with case and item names
// for the read-only history view.
type HistoryEntry struct {
	Record   OpeningRecord `json:"record"`
	CaseName string        `json:"case_name"`
	ItemName string        `json:"item_name"`
	Rarity   Rarity        `json:"rarity"`
}
