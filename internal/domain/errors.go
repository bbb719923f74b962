package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Auth errors
	ErrMsgInvalidInitData = "invalid init data"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgCaseNotFound = "case not found"
	ErrMsgCaseInactive = "case is not active"
	ErrMsgEmptyPool    = "case has no eligible contents"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgEntryNotFound     = "inventory entry not found"
	ErrMsgAlreadySold       = "inventory entry already sold"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Auth errors
	ErrInvalidInitData = errors.New(ErrMsgInvalidInitData)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)
	ErrCaseInactive = errors.New(ErrMsgCaseInactive)
	ErrEmptyPool    = errors.New(ErrMsgEmptyPool)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrEntryNotFound     = errors.New(ErrMsgEntryNotFound)
	ErrAlreadySold       = errors.New(ErrMsgAlreadySold)
)
