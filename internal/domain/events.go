package domain

import "time"

// Event types
const (
	EventTypeTransferApplied  = "transfer.applied"
	EventTypeTransferRejected = "transfer.rejected"
)

// Aggregate types
const (
	AggregateTypeTransfer = "transfer"
)

// OutboxEvent represents an event to be published. Payload holds one
// of the typed event payloads below on the write side; reads from the
// store carry it as decoded JSON.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// TransferAppliedEvent payload
type TransferAppliedEvent struct {
	TransferID    string `json:"transfer_id"`
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
}

// TransferRejectedEvent payload
type TransferRejectedEvent struct {
	TransferID string `json:"transfer_id"`
	Reason     string `json:"reason"`
}
