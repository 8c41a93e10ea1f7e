package calculation

import (
	"github.com/shopspring/decimal"
)

// rrifMinimumRates holds the CRA prescribed RRIF minimum withdrawal
// factors by age (2023 rates). Below 55 the factor is 1/(90-age); at 100
// and above the rate is capped at 20%.
var rrifMinimumRates = map[int]decimal.Decimal{
	55: decimal.NewFromFloat(0.0286), 56: decimal.NewFromFloat(0.0289),
	57: decimal.NewFromFloat(0.0290), 58: decimal.NewFromFloat(0.0292),
	59: decimal.NewFromFloat(0.0294), 60: decimal.NewFromFloat(0.0297),
	61: decimal.NewFromFloat(0.0300), 62: decimal.NewFromFloat(0.0303),
	63: decimal.NewFromFloat(0.0307), 64: decimal.NewFromFloat(0.0310),
	65: decimal.NewFromFloat(0.0313), 66: decimal.NewFromFloat(0.0317),
	67: decimal.NewFromFloat(0.0322), 68: decimal.NewFromFloat(0.0327),
	69: decimal.NewFromFloat(0.0332), 70: decimal.NewFromFloat(0.0338),
	71: decimal.NewFromFloat(0.0345), 72: decimal.NewFromFloat(0.0353),
	73: decimal.NewFromFloat(0.0362), 74: decimal.NewFromFloat(0.0373),
	75: decimal.NewFromFloat(0.0385), 76: decimal.NewFromFloat(0.0397),
	77: decimal.NewFromFloat(0.0411), 78: decimal.NewFromFloat(0.0426),
	79: decimal.NewFromFloat(0.0444), 80: decimal.NewFromFloat(0.0465),
	81: decimal.NewFromFloat(0.0490), 82: decimal.NewFromFloat(0.0517),
	83: decimal.NewFromFloat(0.0540), 84: decimal.NewFromFloat(0.0571),
	85: decimal.NewFromFloat(0.0606), 86: decimal.NewFromFloat(0.0645),
	87: decimal.NewFromFloat(0.0688), 88: decimal.NewFromFloat(0.0738),
	89: decimal.NewFromFloat(0.0794), 90: decimal.NewFromFloat(0.0859),
	91: decimal.NewFromFloat(0.0929), 92: decimal.NewFromFloat(0.1014),
	93: decimal.NewFromFloat(0.1115), 94: decimal.NewFromFloat(0.1235),
	95: decimal.NewFromFloat(0.1399), 96: decimal.NewFromFloat(0.1634),
	97: decimal.NewFromFloat(0.1956), 98: decimal.NewFromFloat(0.2000),
	99: decimal.NewFromFloat(0.2000),
}

// rrifCeilingRate applies from age 100 onward
var rrifCeilingRate = decimal.NewFromFloat(0.2000)

// RRIFMinimumRate returns the prescribed minimum withdrawal factor for a
// RRIF holder of the given age.
func RRIFMinimumRate(age int) decimal.Decimal {
	switch {
	case age >= 100:
		return rrifCeilingRate
	case age < 55:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(90 - age)))
	default:
		return rrifMinimumRates[age]
	}
}

// RRIFMinimumWithdrawal returns the mandatory minimum withdrawal for a
// RRIF with the given balance held by someone of the given age. This is a
// floor, not a cap: the allocator may withdraw more when a shortfall
// demands it.
func RRIFMinimumWithdrawal(balance decimal.Decimal, age int) decimal.Decimal {
	return balance.Mul(RRIFMinimumRate(age))
}
