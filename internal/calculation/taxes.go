package calculation

import (
	"github.com/shopspring/decimal"
)

// TaxBracket represents one marginal income tax bracket
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"` // use a very large value for the top bracket
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// 2023 federal brackets
var federalBrackets = []TaxBracket{
	{Min: decimal.Zero, Max: decimal.NewFromInt(53359), Rate: decimal.NewFromFloat(0.15)},
	{Min: decimal.NewFromInt(53359), Max: decimal.NewFromInt(106717), Rate: decimal.NewFromFloat(0.205)},
	{Min: decimal.NewFromInt(106717), Max: decimal.NewFromInt(165430), Rate: decimal.NewFromFloat(0.26)},
	{Min: decimal.NewFromInt(165430), Max: decimal.NewFromInt(235675), Rate: decimal.NewFromFloat(0.29)},
	{Min: decimal.NewFromInt(235675), Max: decimal.NewFromInt(999999999), Rate: decimal.NewFromFloat(0.33)},
}

// 2023 provincial brackets by province code; Ontario is the only regime
// filled in so far and serves as the fallback.
var provincialBrackets = map[string][]TaxBracket{
	"ON": {
		{Min: decimal.Zero, Max: decimal.NewFromInt(49231), Rate: decimal.NewFromFloat(0.0505)},
		{Min: decimal.NewFromInt(49231), Max: decimal.NewFromInt(98463), Rate: decimal.NewFromFloat(0.0915)},
		{Min: decimal.NewFromInt(98463), Max: decimal.NewFromInt(150000), Rate: decimal.NewFromFloat(0.1116)},
		{Min: decimal.NewFromInt(150000), Max: decimal.NewFromInt(220000), Rate: decimal.NewFromFloat(0.1216)},
		{Min: decimal.NewFromInt(220000), Max: decimal.NewFromInt(999999999), Rate: decimal.NewFromFloat(0.1316)},
	},
}

// OAS clawback parameters (2023)
var (
	oasClawbackThreshold = decimal.NewFromInt(86912)
	oasClawbackRate      = decimal.NewFromFloat(0.15)
	oasMaxAnnualBenefit  = decimal.NewFromInt(7900)
)

// applyBrackets accumulates marginal tax across a bracket table
func applyBrackets(income decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	tax := decimal.Zero
	for _, bracket := range brackets {
		if income.LessThanOrEqual(bracket.Min) {
			continue
		}
		taxable := decimal.Min(income, bracket.Max).Sub(bracket.Min)
		tax = tax.Add(taxable.Mul(bracket.Rate))
	}
	return tax
}

// IncomeTax estimates combined federal and provincial income tax on the
// given annual income.
//
// This is a planning utility: the withdrawal allocator and cash-flow
// aggregator are deliberately tax-unaware and do not call it.
func IncomeTax(income decimal.Decimal, province string) decimal.Decimal {
	brackets, ok := provincialBrackets[province]
	if !ok {
		brackets = provincialBrackets["ON"]
	}
	return applyBrackets(income, federalBrackets).Add(applyBrackets(income, brackets))
}

// OASClawback estimates the Old Age Security recovery tax on the given
// net income: 15% of income over the threshold, capped at the full annual
// OAS benefit. Like IncomeTax, it is not wired into the projection
// recurrence.
func OASClawback(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(oasClawbackThreshold) {
		return decimal.Zero
	}
	clawback := income.Sub(oasClawbackThreshold).Mul(oasClawbackRate)
	return decimal.Min(clawback, oasMaxAnnualBenefit)
}
