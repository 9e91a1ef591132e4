// internal/order/pickup.go
package order

import "time"

// The bakery is closed Sundays and Mondays; orders need one business day of
// lead time, two when placed on a Saturday.

// MinPickupDate returns the earliest allowed pickup date for an order placed
// at now: now+1 day (+2 on Saturdays), rolled forward past any Sunday or
// Monday landing. The result is midnight in now's location, no time part.
func MinPickupDate(now time.Time) time.Time {
	daysToAdd := 1
	if now.Weekday() == time.Saturday {
		daysToAdd = 2
	}

	d := now.AddDate(0, 0, daysToAdd)
	for d.Weekday() == time.Sunday || d.Weekday() == time.Monday {
		d = d.AddDate(0, 0, 1)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// IsValidPickupDate reports whether a YYYY-MM-DD date string names a day the
// bakery is open. Empty or unparseable input is invalid. The date is built
// at local midnight so a bare date string cannot shift across a day
// boundary.
func IsValidPickupDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}
	d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return false
	}
	return d.Weekday() != time.Sunday && d.Weekday() != time.Monday
}
