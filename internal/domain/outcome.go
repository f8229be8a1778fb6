package domain

import "time"

// OutcomeStatus is the terminal status of a transfer.
type OutcomeStatus string

const (
	OutcomeStatusSuccess OutcomeStatus = "SUCCESS"
	OutcomeStatusFailure OutcomeStatus = "FAILURE"
)

// Outcome messages persisted with transfer outcomes.
const (
	MessageTransferApplied   = "transfer applied"
	MessageInsufficientFunds = "account has insufficient funds"
)

// TransferOutcome is the one-time durable result recorded per transfer
// ID. It doubles as the idempotency record: once written it is never
// mutated, and replays of the same transfer ID return it unchanged.
type TransferOutcome struct {
	CreatedAt  time.Time
	ID         string
	TransferID string
	Status     OutcomeStatus
	Message    string
}

// Succeeded reports whether the outcome is a SUCCESS.
func (o *TransferOutcome) Succeeded() bool {
	return o.Status == OutcomeStatusSuccess
}
