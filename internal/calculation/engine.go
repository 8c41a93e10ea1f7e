package calculation

import (
	"context"
	"fmt"

	"github.com/elampron/wealthsphere/internal/domain"
)

// ProjectionEngine orchestrates the year-by-year household projection.
// A single engine may serve many runs concurrently: each run works on its
// own copy of the accounts and its own balance ledger, and never touches
// the caller's snapshot.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with no-op logging
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Run projects the plan over its inclusive year range and returns the
// per-year summaries. It fails fast, before any computation, on an
// inverted year range or on entities referencing unknown family members;
// an underfunded plan is not an error.
func (pe *ProjectionEngine) Run(ctx context.Context, plan *domain.Plan) (*domain.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	pe.Logger.Infof("projecting %d member(s), %d account(s) over %d-%d",
		len(plan.Members), len(plan.Accounts), plan.Parameters.StartYear, plan.Parameters.EndYear)

	return pe.generateProjection(plan), nil
}

// validatePlan enforces the run preconditions: a sane year range and full
// referential integrity from every owned entity to its family member.
func validatePlan(plan *domain.Plan) error {
	params := plan.Parameters
	if params.EndYear < params.StartYear {
		return fmt.Errorf("invalid projection range: end_year %d precedes start_year %d", params.EndYear, params.StartYear)
	}

	for i := range plan.Members {
		if plan.Members[i].BirthDate.IsZero() {
			return fmt.Errorf("family member %s: birth date is required", plan.Members[i].ID)
		}
		if plan.Members[i].ExpectedDeathAge != nil && *plan.Members[i].ExpectedDeathAge < 0 {
			return fmt.Errorf("family member %s: expected death age cannot be negative", plan.Members[i].ID)
		}
	}

	for i := range plan.Accounts {
		if plan.Member(plan.Accounts[i].FamilyMemberID) == nil {
			return fmt.Errorf("investment account %s references unknown family member %s", plan.Accounts[i].ID, plan.Accounts[i].FamilyMemberID)
		}
	}
	for i := range plan.IncomeSources {
		if plan.Member(plan.IncomeSources[i].FamilyMemberID) == nil {
			return fmt.Errorf("income source %s references unknown family member %s", plan.IncomeSources[i].ID, plan.IncomeSources[i].FamilyMemberID)
		}
	}
	for i := range plan.Expenses {
		if owner := plan.Expenses[i].FamilyMemberID; owner != nil && plan.Member(*owner) == nil {
			return fmt.Errorf("expense %s references unknown family member %s", plan.Expenses[i].ID, *owner)
		}
	}
	for i := range plan.Policies {
		if plan.Member(plan.Policies[i].FamilyMemberID) == nil {
			return fmt.Errorf("insurance policy %s references unknown family member %s", plan.Policies[i].ID, plan.Policies[i].FamilyMemberID)
		}
	}

	return nil
}
