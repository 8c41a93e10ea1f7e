package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elampron/wealthsphere/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	// Minimal, well-formed plan YAML (spaces only)
	testPlan := "family_members:\n" +
		"  - id: \"alex\"\n" +
		"    first_name: \"Alex\"\n" +
		"    last_name: \"Tremblay\"\n" +
		"    birth_date: \"1964-06-15T00:00:00Z\"\n" +
		"    expected_death_age: 92\n" +
		"  - id: \"sam\"\n" +
		"    first_name: \"Sam\"\n" +
		"    last_name: \"Tremblay\"\n" +
		"    birth_date: \"1966-02-01T00:00:00Z\"\n\n" +
		"investment_accounts:\n" +
		"  - id: \"alex-rrsp\"\n" +
		"    family_member_id: \"alex\"\n" +
		"    name: \"Alex RRSP\"\n" +
		"    account_type: \"RRSP\"\n" +
		"    balance: 250000\n" +
		"    return_rate: 0.05\n" +
		"  - id: \"sam-tfsa\"\n" +
		"    family_member_id: \"sam\"\n" +
		"    name: \"Sam TFSA\"\n" +
		"    account_type: \"TFSA\"\n" +
		"    balance: 80000\n" +
		"    return_rate: 0.04\n" +
		"    contribution_room: \"12000\"\n\n" +
		"assets:\n" +
		"  - id: \"home\"\n" +
		"    name: \"Family home\"\n" +
		"    asset_type: \"PRIMARY_RESIDENCE\"\n" +
		"    value: 600000\n" +
		"    appreciation_rate: 0.03\n\n" +
		"income_sources:\n" +
		"  - id: \"alex-salary\"\n" +
		"    family_member_id: \"alex\"\n" +
		"    name: \"Salary\"\n" +
		"    amount: 95000\n" +
		"    start_year: 2026\n" +
		"    end_year: 2029\n" +
		"    growth_rate: 0.02\n\n" +
		"expenses:\n" +
		"  - id: \"living\"\n" +
		"    name: \"Household spending\"\n" +
		"    amount: 60000\n" +
		"    start_year: 2026\n" +
		"    growth_rate: 0.02\n\n" +
		"insurance_policies:\n" +
		"  - id: \"alex-life\"\n" +
		"    family_member_id: \"alex\"\n" +
		"    name: \"Term life\"\n" +
		"    insurance_type: \"LIFE\"\n" +
		"    coverage_amount: 500000\n" +
		"    premium_amount: 1100\n\n" +
		"parameters:\n" +
		"  start_year: 2026\n" +
		"  end_year: 2056\n" +
		"  inflation_rate: 0.02\n"

	tmpfile, err := os.CreateTemp("", "test_plan_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testPlan))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Len(t, plan.Members, 2)
	assert.Equal(t, "Alex Tremblay", plan.Members[0].FullName())
	assert.Len(t, plan.Accounts, 2)
	assert.Equal(t, domain.AccountTypeRRSP, plan.Accounts[0].Type)
	assert.True(t, plan.Accounts[0].Balance.Equal(decimal.NewFromInt(250000)))
	require.NotNil(t, plan.Accounts[1].ContributionRoom)
	assert.True(t, plan.Accounts[1].ContributionRoom.Equal(decimal.NewFromInt(12000)))
	assert.Len(t, plan.Assets, 1)
	assert.Len(t, plan.IncomeSources, 1)
	require.NotNil(t, plan.IncomeSources[0].EndYear)
	assert.Equal(t, 2029, *plan.IncomeSources[0].EndYear)
	assert.Len(t, plan.Expenses, 1)
	assert.Nil(t, plan.Expenses[0].FamilyMemberID)
	assert.Len(t, plan.Policies, 1)
	assert.Equal(t, 2026, plan.Parameters.StartYear)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadFromFile("nonexistent_plan.yaml")

	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testPlan := `
family_members:
	- id: "alex"
		birth_date: "not-a-date"
		balance: "not-a-number"
`

	tmpfile, err := os.CreateTemp("", "test_plan_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testPlan))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(tmpfile.Name())

	assert.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func createValidTestPlan() *domain.Plan {
	return &domain.Plan{
		Members: []domain.FamilyMember{
			{
				ID: "alex", FirstName: "Alex", LastName: "Tremblay",
				BirthDate: time.Date(1964, 6, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		Accounts: []domain.InvestmentAccount{
			{
				ID: "alex-rrsp", FamilyMemberID: "alex", Name: "Alex RRSP",
				Type: domain.AccountTypeRRSP, Balance: decimal.NewFromInt(250000),
				ReturnRate: decimal.NewFromFloat(0.05),
			},
		},
		Parameters: domain.ProjectionParameters{StartYear: 2026, EndYear: 2056},
	}
}

func TestValidatePlan_Success(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidatePlan(createValidTestPlan()))
}

func TestValidatePlan_NoMembers(t *testing.T) {
	parser := NewInputParser()
	plan := createValidTestPlan()
	plan.Members = nil
	plan.Accounts = nil

	err := parser.ValidatePlan(plan)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no family members")
}

func TestValidatePlan_InvertedYearRange(t *testing.T) {
	parser := NewInputParser()
	plan := createValidTestPlan()
	plan.Parameters.StartYear = 2056
	plan.Parameters.EndYear = 2026

	err := parser.ValidatePlan(plan)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "precedes start_year")
}

func TestValidatePlan_MemberErrors(t *testing.T) {
	negative := -1

	tests := []struct {
		name    string
		mutate  func(*domain.FamilyMember)
		wantErr string
	}{
		{
			name:    "missing id",
			mutate:  func(m *domain.FamilyMember) { m.ID = "" },
			wantErr: "id is required",
		},
		{
			name:    "missing birth date",
			mutate:  func(m *domain.FamilyMember) { m.BirthDate = time.Time{} },
			wantErr: "birth date is required",
		},
		{
			name:    "negative death age",
			mutate:  func(m *domain.FamilyMember) { m.ExpectedDeathAge = &negative },
			wantErr: "expected death age cannot be negative",
		},
		{
			name:    "negative retirement age",
			mutate:  func(m *domain.FamilyMember) { m.ExpectedRetirementAge = &negative },
			wantErr: "expected retirement age cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			plan := createValidTestPlan()
			plan.Accounts = nil
			tt.mutate(&plan.Members[0])

			err := parser.ValidatePlan(plan)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePlan_AccountErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.InvestmentAccount)
		wantErr string
	}{
		{
			name:    "unknown owner",
			mutate:  func(a *domain.InvestmentAccount) { a.FamilyMemberID = "ghost" },
			wantErr: "references unknown family member",
		},
		{
			name:    "unknown type",
			mutate:  func(a *domain.InvestmentAccount) { a.Type = "401K" },
			wantErr: "unknown account type",
		},
		{
			name:    "negative balance",
			mutate:  func(a *domain.InvestmentAccount) { a.Balance = decimal.NewFromInt(-100) },
			wantErr: "balance cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			plan := createValidTestPlan()
			tt.mutate(&plan.Accounts[0])

			err := parser.ValidatePlan(plan)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePlan_NegativeReturnRateAllowed(t *testing.T) {
	parser := NewInputParser()
	plan := createValidTestPlan()
	plan.Accounts[0].ReturnRate = decimal.NewFromFloat(-0.02)

	assert.NoError(t, parser.ValidatePlan(plan))
}

func TestValidatePlan_StreamWindowErrors(t *testing.T) {
	badEnd := 2020

	parser := NewInputParser()
	plan := createValidTestPlan()
	plan.IncomeSources = []domain.IncomeSource{
		{ID: "i1", FamilyMemberID: "alex", Amount: decimal.NewFromInt(1000), StartYear: 2026, EndYear: &badEnd},
	}

	err := parser.ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_year 2020 precedes start_year 2026")
}

func TestValidatePlan_PolicyErrors(t *testing.T) {
	parser := NewInputParser()
	plan := createValidTestPlan()
	plan.Policies = []domain.InsurancePolicy{
		{
			ID: "p1", FamilyMemberID: "alex", Type: domain.InsuranceTypeLife,
			CoverageAmount: decimal.NewFromInt(-1),
		},
	}

	err := parser.ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coverage amount cannot be negative")
}
