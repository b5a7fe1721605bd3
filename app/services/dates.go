package services

import "time"

// IsLastDayOfMonth reports whether tomorrow rolls into day 1. This is how
// "run on the last day of the month" is expressed on a daily tick.
func IsLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Day() == 1
}

// monthStart returns midnight on the first day of t's month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// nextMonthStart returns midnight on the first day of the month after t's.
func nextMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// startOfTomorrow returns midnight on the day after t.
func startOfTomorrow(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}
