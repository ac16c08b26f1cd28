package dateutil

import (
	"time"
)

// PayoutsPerYear returns the number of dividend payouts per year for a
// payout frequency string. Unrecognized frequencies default to quarterly,
// the most common schedule.
func PayoutsPerYear(frequency string) int {
	switch frequency {
	case "monthly":
		return 12
	case "quarterly":
		return 4
	case "annually":
		return 1
	default:
		return 4
	}
}

// MonthsBetweenPayouts returns the payout interval in months for a frequency.
func MonthsBetweenPayouts(frequency string) int {
	return 12 / PayoutsPerYear(frequency)
}

// NextPayoutDates generates the payout dates after a given anchor (typically
// the next ex-dividend date), stepping by the payout interval, up to and
// including the horizon date. The anchor itself is the first entry when it is
// not before `from`.
func NextPayoutDates(anchor time.Time, frequency string, from, horizon time.Time) []time.Time {
	interval := MonthsBetweenPayouts(frequency)
	var dates []time.Time
	d := anchor
	for d.Before(from) {
		d = d.AddDate(0, interval, 0)
	}
	for !d.After(horizon) {
		dates = append(dates, d)
		d = d.AddDate(0, interval, 0)
	}
	return dates
}

// PayoutsUntil counts payouts from an anchor date up to and including the
// horizon date.
func PayoutsUntil(anchor time.Time, frequency string, from, horizon time.Time) int {
	return len(NextPayoutDates(anchor, frequency, from, horizon))
}

// YearsUntilDate calculates the number of years between two dates
func YearsUntilDate(fromDate, toDate time.Time) float64 {
	duration := toDate.Sub(fromDate)
	return duration.Hours() / 24 / 365.25
}

// MonthsUntilDate calculates the number of months between two dates
func MonthsUntilDate(fromDate, toDate time.Time) int {
	years := YearsUntilDate(fromDate, toDate)
	return int(years * 12)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}
