package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// TotalsByEntryType sums all DEBIT and all CREDIT amounts ever posted.
func (r *LedgerRepository) TotalsByEntryType(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT
		     COALESCE(SUM(amount) FILTER (WHERE entry_type = 'DEBIT'), 0),
		     COALESCE(SUM(amount) FILTER (WHERE entry_type = 'CREDIT'), 0)
		 FROM ledger_entries`,
	)

	var debits, credits pgtype.Numeric

	if err := row.Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(debits), numericToDecimal(credits), nil
}
