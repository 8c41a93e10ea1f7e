package calculation

import (
	"github.com/shopspring/decimal"
)

// Ledger tracks projected end-of-year account balances, keyed by year and
// account id. It is the only mutable state of a projection run: created
// empty, filled strictly in ascending year order, and returned to the
// caller inside the per-year summaries. Year N is fully resolved before
// year N+1 reads it.
type Ledger struct {
	balances map[int]map[string]decimal.Decimal
}

// NewLedger creates an empty balance ledger
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[int]map[string]decimal.Decimal)}
}

// Set records the projected balance of an account for a year
func (l *Ledger) Set(year int, accountID string, balance decimal.Decimal) {
	yearBalances, ok := l.balances[year]
	if !ok {
		yearBalances = make(map[string]decimal.Decimal)
		l.balances[year] = yearBalances
	}
	yearBalances[accountID] = balance
}

// Balance returns the projected balance of an account for a year, and
// whether one has been recorded.
func (l *Ledger) Balance(year int, accountID string) (decimal.Decimal, bool) {
	balance, ok := l.balances[year][accountID]
	return balance, ok
}

// BalanceOr returns the recorded balance for a year, falling back to the
// supplied baseline when none exists (only the case before the first
// simulated year has been written).
func (l *Ledger) BalanceOr(year int, accountID string, baseline decimal.Decimal) decimal.Decimal {
	if balance, ok := l.Balance(year, accountID); ok {
		return balance
	}
	return baseline
}

// YearBalances returns a copy of all recorded balances for a year
func (l *Ledger) YearBalances(year int) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.balances[year]))
	for id, balance := range l.balances[year] {
		out[id] = balance
	}
	return out
}
