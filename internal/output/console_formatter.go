package output

import (
	"bytes"
	"fmt"

	"github.com/elampron/wealthsphere/internal/domain"
)

// ConsoleFormatter renders a year-per-row projection table for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "HOUSEHOLD PROJECTION")
	fmt.Fprintln(&buf, "====================")
	fmt.Fprintf(&buf, "Years: %d-%d", projection.Parameters.StartYear, projection.Parameters.EndYear)
	if !projection.Parameters.InflationRate.IsZero() {
		fmt.Fprintf(&buf, "  (assumed inflation %s, informational)", FormatPercentage(projection.Parameters.InflationRate))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-6s %18s %16s %16s %16s %14s\n",
		"Year", "Net Worth", "Income", "Expenses", "Net Cash Flow", "Unfunded")
	for i := range projection.Years {
		year := &projection.Years[i]
		unfunded := "-"
		if year.Withdrawals != nil {
			unfunded = FormatCurrency(year.Withdrawals.UnfundedAmount)
		}
		fmt.Fprintf(&buf, "%-6d %18s %16s %16s %16s %14s\n",
			year.Year,
			FormatCurrency(year.NetWorth.TotalNetWorth),
			FormatCurrency(year.CashFlow.TotalIncome),
			FormatCurrency(year.CashFlow.TotalExpenses),
			FormatCurrency(year.CashFlow.NetCashFlow),
			unfunded,
		)
		for _, event := range year.DeathBenefits {
			fmt.Fprintf(&buf, "       death benefit: %s -> %s\n", event.FamilyMemberName, FormatCurrency(event.BenefitAmount))
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Final net worth: %s\n", FormatCurrency(projection.FinalNetWorth()))
	if firstYear := projection.FirstUnderfundedYear(); firstYear != 0 {
		fmt.Fprintf(&buf, "First underfunded year: %d (total unfunded %s)\n", firstYear, FormatCurrency(projection.TotalUnfunded()))
	}
	return buf.Bytes(), nil
}
