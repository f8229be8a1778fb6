package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// ConsistencyReport summarizes the double-entry invariant check.
type ConsistencyReport struct {
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Consistent   bool
}

// CheckConsistency verifies that every debit ever posted is matched
// by an equal credit. Any difference means a transfer was only half
// applied, which the transactional coordinator should make impossible.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	debits, credits, err := uc.ledgerRepo.TotalsByEntryType(ctx)
	if err != nil {
		return nil, err
	}

	return &ConsistencyReport{
		TotalDebits:  debits,
		TotalCredits: credits,
		Consistent:   debits.Equal(credits),
	}, nil
}
