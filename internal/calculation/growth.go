package calculation

import (
	"github.com/shopspring/decimal"
)

// Compound grows base by rate over the given number of annual periods:
// base * (1 + rate)^periods. It is the single growth rule for account
// balances (one period per simulated year), asset values (anchored at the
// run's start year) and income/expense amounts (anchored at the entity's
// own start year).
//
// Rates at or below -1 are accepted and produce non-positive results; the
// engine never clamps growth. Clamping happens only at the allocator's
// remaining-balance step.
func Compound(base, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return base
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods)))
	return base.Mul(factor)
}
