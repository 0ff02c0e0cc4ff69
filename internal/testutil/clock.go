package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// InYear returns a clock fixed at noon UTC on January 1st of year. Editor drafts
// take their default year from it.
func InYear(year int) func() time.Time {
	return NowAt(time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC))
}
