package ledger

// HistoryLimit caps the number of opening records returned per request
const HistoryLimit = 100

// Log messages
const (
	LogMsgOpenCaseCalled = "OpenCase called"
	LogMsgCaseOpened     = "Case opened"
	LogMsgSellItemCalled = "SellItem called"
	LogMsgItemSold       = "Item sold"
	LogMsgUserCreated    = "User registered"
)

// Error message formats
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
