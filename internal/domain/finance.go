package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AccountType identifies the regulatory/tax category of an investment
// account. The set is closed: the projection engine's conversion and
// withdrawal-ordering rules switch on it.
type AccountType string

const (
	AccountTypeRRSP          AccountType = "RRSP"           // tax-deferred
	AccountTypeTFSA          AccountType = "TFSA"           // tax-free
	AccountTypeNonRegistered AccountType = "NON_REGISTERED" // taxable
	AccountTypeRRIF          AccountType = "RRIF"           // tax-deferred income phase
	AccountTypeOther         AccountType = "OTHER"
)

// AssetType identifies the category of a non-investment asset
type AssetType string

const (
	AssetTypePrimaryResidence  AssetType = "PRIMARY_RESIDENCE"
	AssetTypeSecondaryProperty AssetType = "SECONDARY_PROPERTY"
	AssetTypeBusiness          AssetType = "BUSINESS"
	AssetTypeVehicle           AssetType = "VEHICLE"
	AssetTypeOther             AssetType = "OTHER"
)

// InvestmentAccount is a single account owned by one family member.
// Balance and ReturnRate are the baseline values at the start of a
// projection run; the engine never mutates the snapshot.
type InvestmentAccount struct {
	ID               string          `yaml:"id" json:"id"`
	FamilyMemberID   string          `yaml:"family_member_id" json:"family_member_id"`
	Name             string          `yaml:"name" json:"name"`
	Type             AccountType     `yaml:"account_type" json:"account_type"`
	Balance          decimal.Decimal `yaml:"balance" json:"balance"`
	ReturnRate       decimal.Decimal `yaml:"return_rate" json:"return_rate"` // annual, decimal fraction, may be negative
	ContributionRoom *decimal.Decimal `yaml:"contribution_room,omitempty" json:"contribution_room,omitempty"`
	ConversionYear   *int            `yaml:"conversion_year,omitempty" json:"conversion_year,omitempty"` // explicit RRSP -> RRIF year
}

// UnmarshalYAML implements custom YAML unmarshaling for InvestmentAccount.
// Optional decimal fields arrive as strings and are converted explicitly.
func (a *InvestmentAccount) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		ID               string          `yaml:"id"`
		FamilyMemberID   string          `yaml:"family_member_id"`
		Name             string          `yaml:"name"`
		Type             AccountType     `yaml:"account_type"`
		Balance          decimal.Decimal `yaml:"balance"`
		ReturnRate       decimal.Decimal `yaml:"return_rate"`
		ContributionRoom *string         `yaml:"contribution_room,omitempty"`
		ConversionYear   *int            `yaml:"conversion_year,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	a.ID = aux.ID
	a.FamilyMemberID = aux.FamilyMemberID
	a.Name = aux.Name
	a.Type = aux.Type
	a.Balance = aux.Balance
	a.ReturnRate = aux.ReturnRate
	a.ConversionYear = aux.ConversionYear

	if aux.ContributionRoom != nil {
		room, err := decimal.NewFromString(*aux.ContributionRoom)
		if err != nil {
			return err
		}
		a.ContributionRoom = &room
	}

	return nil
}

// Asset is a non-investment asset such as a property or business. Assets
// appreciate from their baseline value and are not gated on any owner's
// mortality.
type Asset struct {
	ID               string          `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	Type             AssetType       `yaml:"asset_type" json:"asset_type"`
	Value            decimal.Decimal `yaml:"value" json:"value"`
	AppreciationRate decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"`
}

// IncomeSource is an annual income stream tied to one family member
type IncomeSource struct {
	ID             string          `yaml:"id" json:"id"`
	FamilyMemberID string          `yaml:"family_member_id" json:"family_member_id"`
	Name           string          `yaml:"name" json:"name"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"` // annual, nominal at StartYear
	StartYear      int             `yaml:"start_year" json:"start_year"`
	EndYear        *int            `yaml:"end_year,omitempty" json:"end_year,omitempty"` // inclusive; nil = open-ended
	GrowthRate     decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
}

// AppliesTo reports whether the income stream is inside its year window
func (s *IncomeSource) AppliesTo(year int) bool {
	if year < s.StartYear {
		return false
	}
	return s.EndYear == nil || year <= *s.EndYear
}

// Expense is an annual spending stream. A nil FamilyMemberID marks a
// household-wide expense that applies as long as any member is alive.
type Expense struct {
	ID             string          `yaml:"id" json:"id"`
	FamilyMemberID *string         `yaml:"family_member_id,omitempty" json:"family_member_id,omitempty"`
	Name           string          `yaml:"name" json:"name"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"` // annual, nominal at StartYear
	StartYear      int             `yaml:"start_year" json:"start_year"`
	EndYear        *int            `yaml:"end_year,omitempty" json:"end_year,omitempty"` // inclusive; nil = open-ended
	GrowthRate     decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
}

// AppliesTo reports whether the expense is inside its year window
func (e *Expense) AppliesTo(year int) bool {
	if year < e.StartYear {
		return false
	}
	return e.EndYear == nil || year <= *e.EndYear
}
