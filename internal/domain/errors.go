package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Transfer request errors
	ErrMissingTransferID = errors.New("transfer ID is required")
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrInvalidAmount     = errors.New("amount must be positive")

	// Outcome errors
	ErrOutcomeNotFound = errors.New("transfer outcome not found")

	// Concurrency errors. Both abort the transaction with nothing
	// recorded and are safe to retry with the same transfer ID.
	ErrDuplicateTransfer = errors.New("transfer outcome already recorded")
	ErrLockTimeout       = errors.New("timed out waiting for account lock")
)
