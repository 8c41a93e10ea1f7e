package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/elampron/wealthsphere/internal/domain"
	"github.com/elampron/wealthsphere/pkg/dateutil"
)

// IncomeForYear returns the income stream's projected amount in the given
// year: zero outside its window, otherwise the nominal amount compounded
// from the stream's own start year.
func IncomeForYear(source *domain.IncomeSource, year int) decimal.Decimal {
	if !source.AppliesTo(year) {
		return decimal.Zero
	}
	return Compound(source.Amount, source.GrowthRate, year-source.StartYear)
}

// ExpenseForYear returns the expense's projected amount in the given year,
// using the same window and compounding rule as income.
func ExpenseForYear(expense *domain.Expense, year int) decimal.Decimal {
	if !expense.AppliesTo(year) {
		return decimal.Zero
	}
	return Compound(expense.Amount, expense.GrowthRate, year-expense.StartYear)
}

// livingMemberIDs returns the set of members alive in the given year
func livingMemberIDs(members []domain.FamilyMember, year int) map[string]bool {
	living := make(map[string]bool, len(members))
	for i := range members {
		if members[i].IsAliveInYear(year) {
			living[members[i].ID] = true
		}
	}
	return living
}

// YearCashFlow aggregates household income against expenses for one year.
// Income counts only for living owners inside the stream's year window.
// Expenses count for living owners and for household-wide expenses
// (nil owner). Premiums of policies active at year-end are added to
// expenses for living policyholders.
func YearCashFlow(members []domain.FamilyMember, incomes []domain.IncomeSource, expenses []domain.Expense, policies []domain.InsurancePolicy, year int) domain.CashFlow {
	living := livingMemberIDs(members, year)

	totalIncome := decimal.Zero
	for i := range incomes {
		if !living[incomes[i].FamilyMemberID] {
			continue
		}
		totalIncome = totalIncome.Add(IncomeForYear(&incomes[i], year))
	}

	totalExpenses := decimal.Zero
	for i := range expenses {
		if expenses[i].FamilyMemberID != nil && !living[*expenses[i].FamilyMemberID] {
			continue
		}
		totalExpenses = totalExpenses.Add(ExpenseForYear(&expenses[i], year))
	}

	yearEnd := dateutil.EndOfYear(year)
	for i := range policies {
		if !living[policies[i].FamilyMemberID] {
			continue
		}
		if policies[i].ActiveAt(yearEnd) {
			totalExpenses = totalExpenses.Add(policies[i].PremiumAmount)
		}
	}

	return domain.CashFlow{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetCashFlow:   totalIncome.Sub(totalExpenses),
	}
}
