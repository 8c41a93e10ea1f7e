package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/elampron/wealthsphere/internal/domain"
	"github.com/elampron/wealthsphere/pkg/dateutil"
)

// generateProjection runs the year-stepper recurrence. Years are processed
// strictly ascending; each year's balances are fully resolved before the
// next year reads them.
func (pe *ProjectionEngine) generateProjection(plan *domain.Plan) *domain.Projection {
	params := plan.Parameters

	// Working copy of the accounts for this run. RRSP -> RRIF conversion
	// mutates the type field, and that must never leak into the snapshot.
	accounts := make([]domain.InvestmentAccount, len(plan.Accounts))
	copy(accounts, plan.Accounts)

	members := make(map[string]*domain.FamilyMember, len(plan.Members))
	for i := range plan.Members {
		members[plan.Members[i].ID] = &plan.Members[i]
	}

	ledger := NewLedger()
	years := make([]domain.YearSummary, 0, params.Years())

	for year := params.StartYear; year <= params.EndYear; year++ {
		// Mandatory account-type conversions take effect before anything
		// else this year: withdrawal ordering and minimum-withdrawal rules
		// see the new type immediately.
		for i := range accounts {
			account := &accounts[i]
			if ShouldConvertToRRIF(account, members[account.FamilyMemberID], year) {
				pe.Logger.Debugf("year %d: converting account %s (%s) from RRSP to RRIF", year, account.ID, account.Name)
				account.Type = domain.AccountTypeRRIF
			}
		}

		// Pre-withdrawal balances: grow living owners' accounts by one
		// period from last year's projected balance (baseline in the first
		// year). A deceased owner's account is zero from the death year on.
		for i := range accounts {
			account := &accounts[i]
			if !members[account.FamilyMemberID].IsAliveInYear(year) {
				ledger.Set(year, account.ID, decimal.Zero)
				continue
			}
			prior := ledger.BalanceOr(year-1, account.ID, account.Balance)
			ledger.Set(year, account.ID, Compound(prior, account.ReturnRate, 1))
		}

		netWorth := pe.netWorthForYear(plan, accounts, ledger, year)
		cashFlow := YearCashFlow(plan.Members, plan.IncomeSources, plan.Expenses, plan.Policies, year)

		var withdrawalPlan *domain.WithdrawalPlan
		if cashFlow.NetCashFlow.IsNegative() {
			shortfall := cashFlow.NetCashFlow.Neg()
			pe.Logger.Debugf("year %d: shortfall %s, allocating withdrawals", year, shortfall.StringFixed(2))

			active := activeAccounts(accounts, members, year)
			withdrawalPlan = AllocateWithdrawals(active, members, ledger, year, shortfall)
			for accountID, remaining := range withdrawalPlan.RemainingBalance {
				ledger.Set(year, accountID, remaining)
			}
			if withdrawalPlan.UnfundedAmount.GreaterThan(decimal.Zero) {
				pe.Logger.Warnf("year %d: unfunded shortfall of %s", year, withdrawalPlan.UnfundedAmount.StringFixed(2))
			}
		}

		deathBenefits := pe.deathBenefitsForYear(plan, year)

		years = append(years, domain.YearSummary{
			Year:            year,
			NetWorth:        netWorth,
			CashFlow:        cashFlow,
			Withdrawals:     withdrawalPlan,
			DeathBenefits:   deathBenefits,
			AccountBalances: ledger.YearBalances(year),
		})
	}

	return &domain.Projection{Parameters: params, Years: years}
}

// activeAccounts filters the working accounts down to those whose owner is
// alive in the given year, preserving input order for the allocator.
func activeAccounts(accounts []domain.InvestmentAccount, members map[string]*domain.FamilyMember, year int) []domain.InvestmentAccount {
	active := make([]domain.InvestmentAccount, 0, len(accounts))
	for i := range accounts {
		if members[accounts[i].FamilyMemberID].IsAliveInYear(year) {
			active = append(active, accounts[i])
		}
	}
	return active
}

// AssetValueForYear returns an asset's projected value, compounded from
// its baseline at the run's start year. Assets appreciate regardless of
// anyone's mortality.
func AssetValueForYear(asset *domain.Asset, year, startYear int) decimal.Decimal {
	return Compound(asset.Value, asset.AppreciationRate, year-startYear)
}

// netWorthForYear sums post-growth, pre-withdrawal account balances of
// living owners plus all asset values, broken down by category.
func (pe *ProjectionEngine) netWorthForYear(plan *domain.Plan, accounts []domain.InvestmentAccount, ledger *Ledger, year int) domain.NetWorthBreakdown {
	var breakdown domain.NetWorthBreakdown

	for i := range accounts {
		account := &accounts[i]
		member := plan.Member(account.FamilyMemberID)
		if member == nil || !member.IsAliveInYear(year) {
			continue
		}
		balance := ledger.BalanceOr(year, account.ID, account.Balance)

		switch account.Type {
		case domain.AccountTypeRRSP:
			breakdown.RRSPTotal = breakdown.RRSPTotal.Add(balance)
		case domain.AccountTypeTFSA:
			breakdown.TFSATotal = breakdown.TFSATotal.Add(balance)
		case domain.AccountTypeNonRegistered:
			breakdown.NonRegisteredTotal = breakdown.NonRegisteredTotal.Add(balance)
		case domain.AccountTypeRRIF:
			breakdown.RRIFTotal = breakdown.RRIFTotal.Add(balance)
		default:
			breakdown.OtherInvestmentsTotal = breakdown.OtherInvestmentsTotal.Add(balance)
		}
		breakdown.TotalNetWorth = breakdown.TotalNetWorth.Add(balance)
	}

	for i := range plan.Assets {
		asset := &plan.Assets[i]
		value := AssetValueForYear(asset, year, plan.Parameters.StartYear)

		switch asset.Type {
		case domain.AssetTypePrimaryResidence, domain.AssetTypeSecondaryProperty:
			breakdown.PropertyTotal = breakdown.PropertyTotal.Add(value)
		case domain.AssetTypeBusiness:
			breakdown.BusinessTotal = breakdown.BusinessTotal.Add(value)
		default:
			breakdown.OtherAssetsTotal = breakdown.OtherAssetsTotal.Add(value)
		}
		breakdown.TotalNetWorth = breakdown.TotalNetWorth.Add(value)
	}

	return breakdown
}

// deathBenefitsForYear reports life-insurance payouts for members who are
// alive this year but not the next. The payout sums coverage of life
// policies active at year-end naming the member; members with no positive
// benefit produce no event.
func (pe *ProjectionEngine) deathBenefitsForYear(plan *domain.Plan, year int) []domain.DeathBenefitEvent {
	var events []domain.DeathBenefitEvent
	yearEnd := dateutil.EndOfYear(year)

	for i := range plan.Members {
		member := &plan.Members[i]
		if !member.IsAliveInYear(year) || member.IsAliveInYear(year+1) {
			continue
		}

		benefit := decimal.Zero
		for j := range plan.Policies {
			policy := &plan.Policies[j]
			if policy.FamilyMemberID != member.ID || policy.Type != domain.InsuranceTypeLife {
				continue
			}
			if policy.ActiveAt(yearEnd) {
				benefit = benefit.Add(policy.CoverageAmount)
			}
		}

		if benefit.GreaterThan(decimal.Zero) {
			pe.Logger.Debugf("year %d: death benefit of %s for %s", year, benefit.StringFixed(2), member.FullName())
			events = append(events, domain.DeathBenefitEvent{
				FamilyMemberID:   member.ID,
				FamilyMemberName: member.FullName(),
				BenefitAmount:    benefit,
			})
		}
	}

	return events
}
