package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ntobe/ledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByIDsForUpdate takes exclusive row locks on the given
	// accounts, acquiring them in ascending ID order regardless of
	// the order of ids. The locks are held until the enclosing
	// transaction commits or rolls back.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// EntryRepository defines data access for ledger entries. Entries are
// write-once; no update or delete is exposed.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	GetByTransfer(ctx context.Context, transferID string) ([]*domain.LedgerEntry, error)
	GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEntry, error)
}

// OutcomeRepository defines data access for transfer outcomes.
type OutcomeRepository interface {
	// GetByTransferID returns domain.ErrOutcomeNotFound when no
	// outcome has been recorded for the transfer ID.
	GetByTransferID(ctx context.Context, transferID string) (*domain.TransferOutcome, error)
	// Create fails with domain.ErrDuplicateTransfer when an outcome
	// for the same transfer ID already exists. This is the store
	// guarantee that closes the race between two concurrent
	// submissions of the same transfer ID.
	Create(ctx context.Context, tx Transaction, outcome *domain.TransferOutcome) error
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	// TotalsByEntryType sums all DEBIT and all CREDIT entry amounts.
	TotalsByEntryType(ctx context.Context) (debits, credits decimal.Decimal, err error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when it fails with a transient
// conflict such as a database deadlock.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage for the HTTP layer.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
