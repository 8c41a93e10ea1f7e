package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/elampron/wealthsphere/internal/domain"
)

// AllocateWithdrawals decides which accounts fund a spending shortfall and
// by how much. The priority order is fixed:
//
//  1. RRIF minimum withdrawals, mandatory and taken in full even when they
//     overshoot the shortfall.
//  2. Non-registered accounts, up to the remaining shortfall.
//  3. TFSAs, up to the remaining shortfall.
//  4. RRSPs and RRIFs beyond the stage-1 minimums.
//
// Within a stage accounts are drained in the order the caller supplied
// them; there is no further tie-break. Accounts must already be limited to
// living owners with this year's post-growth balances recorded in the
// ledger. Every account is reported in RemainingBalance, clamped at zero,
// whether or not it was drawn from. A shortfall that survives stage 4 is
// returned as UnfundedAmount, never as an error.
func AllocateWithdrawals(accounts []domain.InvestmentAccount, members map[string]*domain.FamilyMember, ledger *Ledger, year int, shortfall decimal.Decimal) *domain.WithdrawalPlan {
	withdrawals := make(map[string]decimal.Decimal)
	remaining := shortfall

	balanceOf := func(a *domain.InvestmentAccount) decimal.Decimal {
		return ledger.BalanceOr(year, a.ID, a.Balance)
	}

	// Stage 1: mandatory RRIF minimums, not capped by the shortfall.
	for i := range accounts {
		account := &accounts[i]
		if account.Type != domain.AccountTypeRRIF {
			continue
		}
		age := members[account.FamilyMemberID].AgeInYear(year)
		minimum := RRIFMinimumWithdrawal(balanceOf(account), age)
		withdrawals[account.ID] = minimum
		remaining = remaining.Sub(minimum)
	}

	// Stage 2: non-registered accounts.
	if remaining.GreaterThan(decimal.Zero) {
		for i := range accounts {
			account := &accounts[i]
			if account.Type != domain.AccountTypeNonRegistered {
				continue
			}
			amount := decimal.Min(balanceOf(account), remaining)
			withdrawals[account.ID] = withdrawals[account.ID].Add(amount)
			remaining = remaining.Sub(amount)
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
		}
	}

	// Stage 3: TFSAs.
	if remaining.GreaterThan(decimal.Zero) {
		for i := range accounts {
			account := &accounts[i]
			if account.Type != domain.AccountTypeTFSA {
				continue
			}
			amount := decimal.Min(balanceOf(account), remaining)
			withdrawals[account.ID] = withdrawals[account.ID].Add(amount)
			remaining = remaining.Sub(amount)
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
		}
	}

	// Stage 4: RRSPs and RRIFs beyond the minimums already taken.
	if remaining.GreaterThan(decimal.Zero) {
		for i := range accounts {
			account := &accounts[i]
			if account.Type != domain.AccountTypeRRSP && account.Type != domain.AccountTypeRRIF {
				continue
			}
			available := balanceOf(account).Sub(withdrawals[account.ID])
			amount := decimal.Min(available, remaining)
			withdrawals[account.ID] = withdrawals[account.ID].Add(amount)
			remaining = remaining.Sub(amount)
			if remaining.LessThanOrEqual(decimal.Zero) {
				break
			}
		}
	}

	remainingBalance := make(map[string]decimal.Decimal, len(accounts))
	for i := range accounts {
		account := &accounts[i]
		balance := balanceOf(account).Sub(withdrawals[account.ID])
		remainingBalance[account.ID] = decimal.Max(decimal.Zero, balance)
	}

	return &domain.WithdrawalPlan{
		Shortfall:        shortfall,
		Withdrawals:      withdrawals,
		RemainingBalance: remainingBalance,
		UnfundedAmount:   decimal.Max(decimal.Zero, remaining),
	}
}
