package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Ntobe/ledger/internal/domain"
	"github.com/Ntobe/ledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		InitialBalance: r.InitialBalance,
	}
}

// ApplyTransferRequest represents a request to apply a transfer. The
// transfer ID is chosen by the client and makes the request safe to
// resubmit.
type ApplyTransferRequest struct {
	TransferID    string          `json:"transfer_id"`
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToDomain converts to a domain transfer request.
func (r *ApplyTransferRequest) ToDomain() domain.TransferRequest {
	return domain.TransferRequest{
		TransferID:    r.TransferID,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
