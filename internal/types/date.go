package types

import (
	"fmt"
	"time"
)

// NextRenewalDate calculates the end date of a subscription period started at the
// given time. Month and year increments are calendar based, not fixed-day
// durations, so a monthly plan started Jan 31 ends Feb 28 (or Feb 29 in a leap
// year).
func NextRenewalDate(start time.Time, period PlanPeriod) (time.Time, error) {
	switch period {
	case PlanPeriodMonthly:
		return AddClampedDate(start, 0, 1, 0), nil
	case PlanPeriodQuarterly:
		return AddClampedDate(start, 0, 3, 0), nil
	case PlanPeriodYearly:
		return AddClampedDate(start, 1, 0, 0), nil
	default:
		return start, fmt.Errorf("invalid plan period: %s", period)
	}
}

// AddClampedDate adds years, months and days to t, clamping the day of month to
// the last valid day of the target month instead of rolling over the way
// time.AddDate does (Jan 31 + 1 month is Feb 28/29, not Mar 2/3).
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	// Normalize month overflow in either direction, e.g. adding 2 months to
	// November lands on January of the next year.
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	// Find the last valid day of the new month
	firstOfNextMonth := time.Date(newY, newM+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNextMonth.Add(-24 * time.Hour).Day()

	newD := d + days
	if newD > lastDay {
		newD = lastDay
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}

// DaysRemaining returns the whole days left until end, rounded up and floored at
// zero. A subscription expiring later today still counts as one remaining day.
func DaysRemaining(now, end time.Time) int {
	if !end.After(now) {
		return 0
	}
	diff := end.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
