package domain

import "github.com/shopspring/decimal"

// TransferRequest is the input to the transfer coordinator. The
// transfer ID is client-supplied and serves as the idempotency key;
// the request itself is never persisted.
type TransferRequest struct {
	TransferID    string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Validate performs the shape checks that must reject a request
// before any locking happens.
func (r *TransferRequest) Validate() error {
	if r.TransferID == "" {
		return ErrMissingTransferID
	}

	if r.FromAccountID == r.ToAccountID {
		return ErrSameAccount
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}
