package domain

import "errors"

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidCurrency   = errors.New("currency code is not valid")
	ErrInvalidParty      = errors.New("source and destination must differ")
	ErrUnknownReference  = errors.New("referenced record not found")
	ErrUnauthorized      = errors.New("actor is not permitted to perform this action")
	ErrAlreadyResolved   = errors.New("request is no longer pending")
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnbalancedEntries = errors.New("ledger entries are not balanced")

	// ErrTransient marks a retryable storage failure: the request was left
	// in its previous state and the call can be repeated safely.
	ErrTransient = errors.New("storage temporarily unavailable")

	// ErrProcessingFailed wraps a failure that aborted an approved transfer
	// after its transaction was rolled back.
	ErrProcessingFailed = errors.New("transfer processing failed")
)
