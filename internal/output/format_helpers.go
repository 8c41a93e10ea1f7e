package output

import (
	"github.com/shopspring/decimal"

	"github.com/elampron/wealthsphere/pkg/moneyfmt"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return moneyfmt.New(amount).Format()
}

// FormatPercentage formats a decimal fraction as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
