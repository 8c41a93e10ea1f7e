package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionParameters bound one projection run. Years are inclusive on
// both ends. InflationRate is carried for reporting; the engine does not
// apply it to the recurrence.
type ProjectionParameters struct {
	StartYear     int             `yaml:"start_year" json:"start_year"`
	EndYear       int             `yaml:"end_year" json:"end_year"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
}

// Years returns the number of years covered by the run
func (p ProjectionParameters) Years() int {
	return p.EndYear - p.StartYear + 1
}

// Plan is the complete read-only snapshot of a household supplied to one
// projection run. The engine takes defensive copies of anything it needs
// to mutate; the snapshot itself is never written to.
type Plan struct {
	Members       []FamilyMember       `yaml:"family_members" json:"family_members"`
	Accounts      []InvestmentAccount  `yaml:"investment_accounts" json:"investment_accounts"`
	Assets        []Asset              `yaml:"assets" json:"assets"`
	IncomeSources []IncomeSource       `yaml:"income_sources" json:"income_sources"`
	Expenses      []Expense            `yaml:"expenses" json:"expenses"`
	Policies      []InsurancePolicy    `yaml:"insurance_policies" json:"insurance_policies"`
	Parameters    ProjectionParameters `yaml:"parameters" json:"parameters"`
}

// Member looks up a family member by id
func (p *Plan) Member(id string) *FamilyMember {
	for i := range p.Members {
		if p.Members[i].ID == id {
			return &p.Members[i]
		}
	}
	return nil
}
