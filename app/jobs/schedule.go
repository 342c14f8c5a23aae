package jobs

import (
	"time"
)

// dailySchedule fires once a day at a fixed UTC wall time.
type dailySchedule struct {
	hour   int
	minute int
}

// Next returns the first daily tick strictly after t.
func (s dailySchedule) Next(t time.Time) time.Time {
	t = t.UTC()
	next := time.Date(t.Year(), t.Month(), t.Day(), s.hour, s.minute, 0, 0, time.UTC)
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// weeklySchedule fires once a week on a fixed weekday and UTC hour.
type weeklySchedule struct {
	weekday time.Weekday
	hour    int
}

// Next returns the first weekly tick strictly after t.
func (s weeklySchedule) Next(t time.Time) time.Time {
	t = t.UTC()
	next := time.Date(t.Year(), t.Month(), t.Day(), s.hour, 0, 0, 0, time.UTC)
	days := (int(s.weekday) - int(next.Weekday()) + 7) % 7
	next = next.AddDate(0, 0, days)
	if !next.After(t) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
