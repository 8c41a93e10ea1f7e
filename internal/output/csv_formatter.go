package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/elampron/wealthsphere/internal/domain"
)

// CSVFormatter exports the projection with one row per year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "TotalNetWorth",
		"RRSPTotal", "TFSATotal", "NonRegisteredTotal", "RRIFTotal", "OtherInvestmentsTotal",
		"PropertyTotal", "BusinessTotal", "OtherAssetsTotal",
		"TotalIncome", "TotalExpenses", "NetCashFlow",
		"Shortfall", "TotalWithdrawn", "UnfundedAmount", "DeathBenefits",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range projection.Years {
		year := &projection.Years[i]
		shortfall, withdrawn, unfunded := "0.00", "0.00", "0.00"
		if year.Withdrawals != nil {
			shortfall = year.Withdrawals.Shortfall.StringFixed(2)
			withdrawn = year.Withdrawals.TotalWithdrawn().StringFixed(2)
			unfunded = year.Withdrawals.UnfundedAmount.StringFixed(2)
		}
		row := []string{
			strconv.Itoa(year.Year),
			year.NetWorth.TotalNetWorth.StringFixed(2),
			year.NetWorth.RRSPTotal.StringFixed(2),
			year.NetWorth.TFSATotal.StringFixed(2),
			year.NetWorth.NonRegisteredTotal.StringFixed(2),
			year.NetWorth.RRIFTotal.StringFixed(2),
			year.NetWorth.OtherInvestmentsTotal.StringFixed(2),
			year.NetWorth.PropertyTotal.StringFixed(2),
			year.NetWorth.BusinessTotal.StringFixed(2),
			year.NetWorth.OtherAssetsTotal.StringFixed(2),
			year.CashFlow.TotalIncome.StringFixed(2),
			year.CashFlow.TotalExpenses.StringFixed(2),
			year.CashFlow.NetCashFlow.StringFixed(2),
			shortfall,
			withdrawn,
			unfunded,
			strconv.Itoa(len(year.DeathBenefits)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
