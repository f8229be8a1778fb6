package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a ledger account that holds a balance.
type Account struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Balance   decimal.Decimal
}

// CanDebit checks if the account balance covers a debit of amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// ApplyDebit returns the new balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the new balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
