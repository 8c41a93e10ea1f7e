package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elampron/wealthsphere/internal/domain"
)

// singleOwnerPlan is the base scenario: one member born in 1970, one RRSP
// of 100,000 growing at 5%, no income or expenses. Callers mutate it.
func singleOwnerPlan(startYear, endYear int) *domain.Plan {
	return &domain.Plan{
		Members: []domain.FamilyMember{
			{
				ID: "m1", FirstName: "Ana", LastName: "Moreau",
				BirthDate: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Accounts: []domain.InvestmentAccount{
			{
				ID: "rrsp", FamilyMemberID: "m1", Name: "Ana's RRSP",
				Type:       domain.AccountTypeRRSP,
				Balance:    decimal.NewFromInt(100000),
				ReturnRate: decimal.NewFromFloat(0.05),
			},
		},
		Parameters: domain.ProjectionParameters{
			StartYear: startYear, EndYear: endYear,
			InflationRate: decimal.NewFromFloat(0.02),
		},
	}
}

func mustRun(t *testing.T, plan *domain.Plan) *domain.Projection {
	t.Helper()
	projection, err := NewProjectionEngine().Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return projection
}

func TestProjectionCompoundsBalances(t *testing.T) {
	projection := mustRun(t, singleOwnerPlan(2030, 2032))

	want := map[int]string{
		2030: "105000",
		2031: "110250",
		2032: "115762.5",
	}
	for year, balance := range want {
		summary := projection.Year(year)
		if summary == nil {
			t.Fatalf("no summary for year %d", year)
		}
		expected, _ := decimal.NewFromString(balance)
		if got := summary.AccountBalances["rrsp"]; !got.Equal(expected) {
			t.Errorf("year %d balance = %s, want %s", year, got, expected)
		}
		if !summary.NetWorth.TotalNetWorth.Equal(expected) {
			t.Errorf("year %d net worth = %s, want %s", year, summary.NetWorth.TotalNetWorth, expected)
		}
	}
}

func TestProjectionHorizonDoesNotChangeEarlierYears(t *testing.T) {
	short := mustRun(t, singleOwnerPlan(2030, 2030))
	long := mustRun(t, singleOwnerPlan(2030, 2031))

	a, b := short.Year(2030), long.Year(2030)
	if !a.NetWorth.TotalNetWorth.Equal(b.NetWorth.TotalNetWorth) {
		t.Errorf("year 2030 net worth differs by horizon: %s vs %s",
			a.NetWorth.TotalNetWorth, b.NetWorth.TotalNetWorth)
	}
	if !a.AccountBalances["rrsp"].Equal(b.AccountBalances["rrsp"]) {
		t.Errorf("year 2030 balance differs by horizon: %s vs %s",
			a.AccountBalances["rrsp"], b.AccountBalances["rrsp"])
	}
}

func TestProjectionZeroesAccountsOnDeath(t *testing.T) {
	plan := singleOwnerPlan(2039, 2042)
	deathAge := 70 // born 1970: last alive year is 2040
	plan.Members[0].ExpectedDeathAge = &deathAge

	projection := mustRun(t, plan)

	if projection.Year(2040).AccountBalances["rrsp"].IsZero() {
		t.Error("balance should survive through the last alive year")
	}
	for year := 2041; year <= 2042; year++ {
		if got := projection.Year(year).AccountBalances["rrsp"]; !got.IsZero() {
			t.Errorf("year %d: deceased owner's balance = %s, want 0", year, got)
		}
		if !projection.Year(year).NetWorth.TotalNetWorth.IsZero() {
			t.Errorf("year %d: net worth should exclude the estate", year)
		}
	}
}

func TestProjectionConvertsRRSPAtSeventyOne(t *testing.T) {
	// Born 1970: turns 71 in 2041.
	projection := mustRun(t, singleOwnerPlan(2040, 2041))

	before := projection.Year(2040).NetWorth
	if before.RRSPTotal.IsZero() || !before.RRIFTotal.IsZero() {
		t.Errorf("year 2040 should still report an RRSP: rrsp=%s rrif=%s",
			before.RRSPTotal, before.RRIFTotal)
	}

	after := projection.Year(2041).NetWorth
	if !after.RRSPTotal.IsZero() || after.RRIFTotal.IsZero() {
		t.Errorf("year 2041 should report a RRIF: rrsp=%s rrif=%s",
			after.RRSPTotal, after.RRIFTotal)
	}
}

func TestProjectionDoesNotMutateSnapshot(t *testing.T) {
	plan := singleOwnerPlan(2040, 2045)
	plan.Expenses = []domain.Expense{
		{ID: "living", Amount: decimal.NewFromInt(30000), StartYear: 2040},
	}

	mustRun(t, plan)

	if plan.Accounts[0].Type != domain.AccountTypeRRSP {
		t.Errorf("conversion leaked into the snapshot: type = %s", plan.Accounts[0].Type)
	}
	if !plan.Accounts[0].Balance.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("withdrawals leaked into the snapshot: balance = %s", plan.Accounts[0].Balance)
	}
}

func TestProjectionWithdrawsToCoverShortfall(t *testing.T) {
	plan := singleOwnerPlan(2030, 2030)
	plan.Expenses = []domain.Expense{
		{ID: "living", Amount: decimal.NewFromInt(20000), StartYear: 2030},
	}

	summary := mustRun(t, plan).Year(2030)

	if summary.Withdrawals == nil {
		t.Fatal("a deficit year should carry a withdrawal plan")
	}
	if !summary.Withdrawals.Shortfall.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("shortfall = %s, want 20000", summary.Withdrawals.Shortfall)
	}
	// Post-growth 105000 less the 20000 drawn from the RRSP.
	want := decimal.NewFromInt(85000)
	if got := summary.AccountBalances["rrsp"]; !got.Equal(want) {
		t.Errorf("post-withdrawal balance = %s, want %s", got, want)
	}
	if summary.IsUnderfunded() {
		t.Error("a funded shortfall should not flag the year")
	}
}

func TestProjectionReportsUnfundedYear(t *testing.T) {
	plan := singleOwnerPlan(2030, 2030)
	plan.Accounts[0].Balance = decimal.NewFromInt(1000)
	plan.Expenses = []domain.Expense{
		{ID: "living", Amount: decimal.NewFromInt(50000), StartYear: 2030},
	}

	projection := mustRun(t, plan)

	if year := projection.FirstUnderfundedYear(); year != 2030 {
		t.Fatalf("FirstUnderfundedYear() = %d, want 2030", year)
	}
	if projection.TotalUnfunded().IsZero() {
		t.Error("TotalUnfunded() should carry the uncovered amount")
	}
}

func TestProjectionDeathBenefitEvent(t *testing.T) {
	plan := singleOwnerPlan(2039, 2042)
	deathAge := 70 // last alive year 2040
	plan.Members[0].ExpectedDeathAge = &deathAge
	plan.Policies = []domain.InsurancePolicy{
		{
			ID: "life", FamilyMemberID: "m1", Type: domain.InsuranceTypeLife,
			CoverageAmount: decimal.NewFromInt(500000),
			PremiumAmount:  decimal.NewFromInt(900),
		},
		{
			ID: "di", FamilyMemberID: "m1", Type: domain.InsuranceTypeDisability,
			CoverageAmount: decimal.NewFromInt(100000),
			PremiumAmount:  decimal.NewFromInt(500),
		},
	}
	// Income keeps every year in surplus so premiums never force withdrawals.
	plan.IncomeSources = []domain.IncomeSource{
		{ID: "pension", FamilyMemberID: "m1", Amount: decimal.NewFromInt(60000), StartYear: 2039},
	}

	projection := mustRun(t, plan)

	for year := 2039; year <= 2042; year++ {
		events := projection.Year(year).DeathBenefits
		if year == 2040 {
			if len(events) != 1 {
				t.Fatalf("year 2040: got %d death benefit events, want 1", len(events))
			}
			if !events[0].BenefitAmount.Equal(decimal.NewFromInt(500000)) {
				t.Errorf("benefit = %s, want life coverage only", events[0].BenefitAmount)
			}
			continue
		}
		if len(events) != 0 {
			t.Errorf("year %d: unexpected death benefit events", year)
		}
	}
}

func TestProjectionDeathBenefitWhenPolicyEndsDec31OfDeathYear(t *testing.T) {
	plan := singleOwnerPlan(2039, 2041)
	deathAge := 70 // last alive year 2040
	plan.Members[0].ExpectedDeathAge = &deathAge
	policyEnd := time.Date(2040, 12, 31, 0, 0, 0, 0, time.UTC)
	plan.Policies = []domain.InsurancePolicy{
		{
			ID: "life", FamilyMemberID: "m1", Type: domain.InsuranceTypeLife,
			CoverageAmount: decimal.NewFromInt(250000),
			EndDate:        &policyEnd,
		},
	}

	projection := mustRun(t, plan)

	events := projection.Year(2040).DeathBenefits
	if len(events) != 1 {
		t.Fatalf("got %d death benefit events, want 1: coverage runs through Dec 31 of the death year", len(events))
	}
	if !events[0].BenefitAmount.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("benefit = %s, want 250000", events[0].BenefitAmount)
	}
}

func TestAssetValueForYear(t *testing.T) {
	home := domain.Asset{
		ID: "home", Type: domain.AssetTypePrimaryResidence,
		Value:            decimal.NewFromInt(400000),
		AppreciationRate: decimal.NewFromFloat(0.03),
	}

	if got := AssetValueForYear(&home, 2030, 2030); !got.Equal(decimal.NewFromInt(400000)) {
		t.Errorf("start-year value = %s, want the baseline", got)
	}
	want := decimal.NewFromInt(400000).Mul(decimal.NewFromFloat(1.03))
	if got := AssetValueForYear(&home, 2031, 2030); !got.Equal(want) {
		t.Errorf("one-year value = %s, want %s", got, want)
	}
}
