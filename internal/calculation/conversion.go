package calculation

import (
	"github.com/elampron/wealthsphere/internal/domain"
)

// RRIFConversionAge is the age by whose year-end an RRSP must be converted
// to a RRIF. Fixed policy of the jurisdiction, not user-configurable.
const RRIFConversionAge = 71

// ShouldConvertToRRIF reports whether the account must change type to RRIF
// in the given year: either the account carries an explicit conversion year
// matching this one, or the owner turns 71. Only RRSP accounts convert.
//
// The caller applies the conversion to its working copy of the account;
// the input snapshot is never mutated.
func ShouldConvertToRRIF(account *domain.InvestmentAccount, member *domain.FamilyMember, year int) bool {
	if account.Type != domain.AccountTypeRRSP {
		return false
	}
	if account.ConversionYear != nil && *account.ConversionYear == year {
		return true
	}
	return member.AgeInYear(year) == RRIFConversionAge
}
