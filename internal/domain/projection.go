package domain

import (
	"github.com/shopspring/decimal"
)

// NetWorthBreakdown splits a year's net worth by account and asset category
type NetWorthBreakdown struct {
	RRSPTotal             decimal.Decimal `json:"rrsp_total"`
	TFSATotal             decimal.Decimal `json:"tfsa_total"`
	NonRegisteredTotal    decimal.Decimal `json:"non_registered_total"`
	RRIFTotal             decimal.Decimal `json:"rrif_total"`
	OtherInvestmentsTotal decimal.Decimal `json:"other_investments_total"`
	PropertyTotal         decimal.Decimal `json:"property_total"`
	BusinessTotal         decimal.Decimal `json:"business_total"`
	OtherAssetsTotal      decimal.Decimal `json:"other_assets_total"`
	TotalNetWorth         decimal.Decimal `json:"total_net_worth"`
}

// CashFlow summarizes a year's income against expenses
type CashFlow struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
}

// WithdrawalPlan is the allocator's output for one underfunded year.
// UnfundedAmount is the portion of the shortfall no account could cover;
// it is a normal reported outcome, not an error.
type WithdrawalPlan struct {
	Shortfall        decimal.Decimal            `json:"shortfall"`
	Withdrawals      map[string]decimal.Decimal `json:"withdrawals"`
	RemainingBalance map[string]decimal.Decimal `json:"remaining_balance"`
	UnfundedAmount   decimal.Decimal            `json:"unfunded_amount"`
}

// TotalWithdrawn sums withdrawals across all accounts
func (wp *WithdrawalPlan) TotalWithdrawn() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range wp.Withdrawals {
		total = total.Add(amount)
	}
	return total
}

// DeathBenefitEvent records the life-insurance payout triggered by a
// member's death in a projection year. It is surfaced separately and is
// not folded into net worth or cash flow.
type DeathBenefitEvent struct {
	FamilyMemberID   string          `json:"family_member_id"`
	FamilyMemberName string          `json:"family_member_name"`
	BenefitAmount    decimal.Decimal `json:"benefit_amount"`
}

// YearSummary is the complete projected picture for a single year
type YearSummary struct {
	Year            int                        `json:"year"`
	NetWorth        NetWorthBreakdown          `json:"net_worth"`
	CashFlow        CashFlow                   `json:"cash_flow"`
	Withdrawals     *WithdrawalPlan            `json:"withdrawals,omitempty"` // nil when income covered expenses
	DeathBenefits   []DeathBenefitEvent        `json:"death_benefits,omitempty"`
	AccountBalances map[string]decimal.Decimal `json:"account_balances"` // end of year, post-withdrawal
}

// IsUnderfunded reports whether this year's spending could not be fully
// covered by income and withdrawals
func (ys *YearSummary) IsUnderfunded() bool {
	return ys.Withdrawals != nil && ys.Withdrawals.UnfundedAmount.GreaterThan(decimal.Zero)
}

// Projection is the result of one engine run over an inclusive year range
type Projection struct {
	Parameters ProjectionParameters `json:"parameters"`
	Years      []YearSummary        `json:"years"`
}

// Year returns the summary for a calendar year, or nil if outside the run
func (p *Projection) Year(year int) *YearSummary {
	idx := year - p.Parameters.StartYear
	if idx < 0 || idx >= len(p.Years) {
		return nil
	}
	return &p.Years[idx]
}

// FinalNetWorth returns the total net worth of the last projected year
func (p *Projection) FinalNetWorth() decimal.Decimal {
	if len(p.Years) == 0 {
		return decimal.Zero
	}
	return p.Years[len(p.Years)-1].NetWorth.TotalNetWorth
}

// TotalUnfunded sums the unfunded amounts across all projected years
func (p *Projection) TotalUnfunded() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Years {
		if p.Years[i].Withdrawals != nil {
			total = total.Add(p.Years[i].Withdrawals.UnfundedAmount)
		}
	}
	return total
}

// FirstUnderfundedYear returns the first year whose expenses could not be
// fully covered, or 0 when every year was funded
func (p *Projection) FirstUnderfundedYear() int {
	for i := range p.Years {
		if p.Years[i].IsUnderfunded() {
			return p.Years[i].Year
		}
	}
	return 0
}
