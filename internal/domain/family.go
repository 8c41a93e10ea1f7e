package domain

import (
	"time"

	"github.com/elampron/wealthsphere/pkg/dateutil"
)

// DefaultDeathAge is the assumed life expectancy when a family member does
// not carry an explicit expected death age.
const DefaultDeathAge = 90

// FamilyMember represents one person in the household whose accounts,
// incomes and policies participate in a projection.
type FamilyMember struct {
	ID                    string    `yaml:"id" json:"id"`
	FirstName             string    `yaml:"first_name" json:"first_name"`
	LastName              string    `yaml:"last_name" json:"last_name"`
	BirthDate             time.Time `yaml:"birth_date" json:"birth_date"`
	ExpectedRetirementAge *int      `yaml:"expected_retirement_age,omitempty" json:"expected_retirement_age,omitempty"`
	ExpectedDeathAge      *int      `yaml:"expected_death_age,omitempty" json:"expected_death_age,omitempty"`
}

// FullName returns the member's display name
func (m *FamilyMember) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// AgeInYear returns the member's calendar-year age in the given year
func (m *FamilyMember) AgeInYear(year int) int {
	return dateutil.AgeInYear(m.BirthDate, year)
}

// DeathAge returns the expected death age, falling back to DefaultDeathAge
func (m *FamilyMember) DeathAge() int {
	if m.ExpectedDeathAge != nil {
		return *m.ExpectedDeathAge
	}
	return DefaultDeathAge
}

// IsAliveInYear reports whether the member is alive in the given projection
// year. A member is alive while their calendar-year age does not exceed the
// expected death age, so death is monotonic across years.
func (m *FamilyMember) IsAliveInYear(year int) bool {
	return m.AgeInYear(year) <= m.DeathAge()
}
