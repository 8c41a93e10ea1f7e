package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/elampron/wealthsphere/internal/domain"
)

// InputParser handles parsing of plan snapshot files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a household plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan before it reaches the engine.
// Validation is fail-fast: the first broken entity aborts the load.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if len(plan.Members) == 0 {
		return fmt.Errorf("no family members provided")
	}

	if plan.Parameters.EndYear < plan.Parameters.StartYear {
		return fmt.Errorf("end_year %d precedes start_year %d", plan.Parameters.EndYear, plan.Parameters.StartYear)
	}

	for i := range plan.Members {
		if err := ip.validateMember(&plan.Members[i]); err != nil {
			return fmt.Errorf("family member %s validation failed: %w", plan.Members[i].ID, err)
		}
	}

	for i := range plan.Accounts {
		if err := ip.validateAccount(plan, &plan.Accounts[i]); err != nil {
			return fmt.Errorf("investment account %s validation failed: %w", plan.Accounts[i].ID, err)
		}
	}

	for i := range plan.IncomeSources {
		source := &plan.IncomeSources[i]
		if plan.Member(source.FamilyMemberID) == nil {
			return fmt.Errorf("income source %s references unknown family member %s", source.ID, source.FamilyMemberID)
		}
		if source.EndYear != nil && *source.EndYear < source.StartYear {
			return fmt.Errorf("income source %s: end_year %d precedes start_year %d", source.ID, *source.EndYear, source.StartYear)
		}
	}

	for i := range plan.Expenses {
		expense := &plan.Expenses[i]
		if expense.FamilyMemberID != nil && plan.Member(*expense.FamilyMemberID) == nil {
			return fmt.Errorf("expense %s references unknown family member %s", expense.ID, *expense.FamilyMemberID)
		}
		if expense.EndYear != nil && *expense.EndYear < expense.StartYear {
			return fmt.Errorf("expense %s: end_year %d precedes start_year %d", expense.ID, *expense.EndYear, expense.StartYear)
		}
	}

	for i := range plan.Policies {
		policy := &plan.Policies[i]
		if plan.Member(policy.FamilyMemberID) == nil {
			return fmt.Errorf("insurance policy %s references unknown family member %s", policy.ID, policy.FamilyMemberID)
		}
		if policy.CoverageAmount.LessThan(decimal.Zero) {
			return fmt.Errorf("insurance policy %s: coverage amount cannot be negative", policy.ID)
		}
		if policy.PremiumAmount.LessThan(decimal.Zero) {
			return fmt.Errorf("insurance policy %s: premium amount cannot be negative", policy.ID)
		}
	}

	return nil
}

// validateMember validates a single family member
func (ip *InputParser) validateMember(member *domain.FamilyMember) error {
	if member.ID == "" {
		return fmt.Errorf("id is required")
	}
	if member.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if member.ExpectedDeathAge != nil && *member.ExpectedDeathAge < 0 {
		return fmt.Errorf("expected death age cannot be negative")
	}
	if member.ExpectedRetirementAge != nil && *member.ExpectedRetirementAge < 0 {
		return fmt.Errorf("expected retirement age cannot be negative")
	}
	return nil
}

// validateAccount validates a single investment account. Negative return
// rates are allowed: declining balances are a legitimate scenario.
func (ip *InputParser) validateAccount(plan *domain.Plan, account *domain.InvestmentAccount) error {
	if account.ID == "" {
		return fmt.Errorf("id is required")
	}
	if plan.Member(account.FamilyMemberID) == nil {
		return fmt.Errorf("references unknown family member %s", account.FamilyMemberID)
	}
	switch account.Type {
	case domain.AccountTypeRRSP, domain.AccountTypeTFSA, domain.AccountTypeNonRegistered,
		domain.AccountTypeRRIF, domain.AccountTypeOther:
	default:
		return fmt.Errorf("unknown account type %q", account.Type)
	}
	if account.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("balance cannot be negative")
	}
	return nil
}
