package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceType identifies the kind of coverage a policy provides. Only
// life policies pay a death benefit in projections; all active policies
// contribute their premium to household expenses.
type InsuranceType string

const (
	InsuranceTypeLife            InsuranceType = "LIFE"
	InsuranceTypeDisability      InsuranceType = "DISABILITY"
	InsuranceTypeCriticalIllness InsuranceType = "CRITICAL_ILLNESS"
	InsuranceTypeLongTermCare    InsuranceType = "LONG_TERM_CARE"
	InsuranceTypeHealth          InsuranceType = "HEALTH"
	InsuranceTypeOther           InsuranceType = "OTHER"
)

// InsurancePolicy is a policy naming one family member as the insured
type InsurancePolicy struct {
	ID             string          `yaml:"id" json:"id"`
	FamilyMemberID string          `yaml:"family_member_id" json:"family_member_id"`
	Name           string          `yaml:"name" json:"name"`
	Type           InsuranceType   `yaml:"insurance_type" json:"insurance_type"`
	CoverageAmount decimal.Decimal `yaml:"coverage_amount" json:"coverage_amount"`
	PremiumAmount  decimal.Decimal `yaml:"premium_amount" json:"premium_amount"` // annual
	StartDate      *time.Time      `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate        *time.Time      `yaml:"end_date,omitempty" json:"end_date,omitempty"`
}

// ActiveAt reports whether the policy is in force on the given date.
// Bounds are inclusive and compared at date granularity, so a policy
// ending December 31 is still active at that year's end regardless of the
// time-of-day either side carries. Nil bounds are treated as unbounded.
func (p *InsurancePolicy) ActiveAt(at time.Time) bool {
	day := dateOnly(at)
	if p.StartDate != nil && dateOnly(*p.StartDate).After(day) {
		return false
	}
	if p.EndDate != nil && dateOnly(*p.EndDate).Before(day) {
		return false
	}
	return true
}

// dateOnly strips the time-of-day component
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
