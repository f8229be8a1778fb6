package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType marks which side of a posting an entry records.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// LedgerEntry is a single immutable debit or credit posting.
// Every applied transfer produces exactly one DEBIT on the source
// account and one CREDIT on the destination account, both carrying
// the same positive amount and transfer ID. Entries are never
// updated or deleted.
type LedgerEntry struct {
	CreatedAt  time.Time
	ID         string
	TransferID string
	AccountID  string
	Type       EntryType
	Amount     decimal.Decimal
}
