package domain

import "time"

// User represents a registered Telegram user with their star balance.
// Balance and spend counters change only through the ledger service.
type User struct {
	ID               int64     `json:"id"`
	TelegramID       int64     `json:"telegram_id"`
	Username         string    `json:"username,omitempty"`
	FirstName        string    `json:"first_name,omitempty"`
	LastName         string    `json:"last_name,omitempty"`
	StarsBalance     int64     `json:"stars_balance"`
	TotalSpentStars  int64     `json:"total_spent_stars"`
	TotalCasesOpened int       `json:"total_cases_opened"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TelegramUser is the identity asserted by a verified initData payload.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}
