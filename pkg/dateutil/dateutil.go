package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeInYear calculates the calendar-year age: the age a person reaches by
// December 31 of the target year. Clamped to zero so a degenerate birth date
// after the target year cannot produce a negative age.
func AgeInYear(birthDate time.Time, year int) int {
	age := year - birthDate.Year()
	if age < 0 {
		return 0
	}
	return age
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// EndOfYear returns December 31 of the given year
func EndOfYear(year int) time.Time {
	return time.Date(year, 12, 31, 23, 59, 59, 999999999, time.UTC)
}

// BeginningOfYear returns January 1 of the given year
func BeginningOfYear(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
}
