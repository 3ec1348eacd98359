package domain

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form into a midnight UTC
// time.Time. All booking and stay dates go through this so comparisons
// stay exact.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return DateOnly(time.Now())
}

// Nights counts the nights between two dates. Checkout day is not a night.
func Nights(checkin, checkout time.Time) int {
	return int(checkout.Sub(checkin).Hours() / 24)
}

// DatesOverlap reports whether two half-open [checkin, checkout) ranges
// share at least one night. Back-to-back stays, where one checkout equals
// the other checkin, do not overlap.
func DatesOverlap(aCheckin, aCheckout, bCheckin, bCheckout time.Time) bool {
	return aCheckin.Before(bCheckout) && bCheckin.Before(aCheckout)
}
