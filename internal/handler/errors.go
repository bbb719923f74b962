package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Operation error messages
	ErrMsgListCasesFailed    = "Failed to list cases"
	ErrMsgAuthUserFailed     = "Failed to authenticate user"
	ErrMsgOpenCaseFailed     = "Failed to open case"
	ErrMsgSellItemFailed     = "Failed to sell item"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGetHistoryFailed   = "Failed to get opening history"
)
