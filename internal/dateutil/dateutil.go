// Package dateutil provides the calendar arithmetic the tracker is built
// on: YYYY-MM-DD date keys, Monday-start weeks, and human-readable
// renderings. All functions are pure; the Clock interface is the only way
// the rest of the codebase observes the current time.
package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the layout of a date key, the partition key for daily data.
const KeyLayout = "2006-01-02"

// Clock abstracts the current time so the engine can be tested with a
// fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// Key returns the date key for t in t's location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a date key into a midnight-local time.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// WeekStart returns midnight on the Monday of the week containing t.
// For a Sunday that Monday is six days earlier.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday -> 7
		weekday = 7
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStartKey returns the date key of the Monday of t's week.
func WeekStartKey(t time.Time) string {
	return Key(WeekStart(t))
}

// WeekDates returns the five weekday keys (Monday through Friday) of the
// week starting at weekStart.
func WeekDates(weekStart string) ([]string, error) {
	start, err := ParseKey(weekStart)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 5)
	for i := range dates {
		dates[i] = Key(start.AddDate(0, 0, i))
	}
	return dates, nil
}

// FormatDate renders a date key as an abbreviated weekday plus
// day-of-month, e.g. "Mon 5".
func FormatDate(key string) string {
	t, err := ParseKey(key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", t.Format("Mon"), t.Day())
}

// FormatWeekRange renders the Monday-Friday span of a week, collapsing the
// month name when both ends share it: "Jan 5-9, 2026" or
// "Jan 29 - Feb 2, 2026".
func FormatWeekRange(weekStart string) string {
	dates, err := WeekDates(weekStart)
	if err != nil {
		return weekStart
	}
	first, _ := ParseKey(dates[0])
	last, _ := ParseKey(dates[4])
	if first.Month() == last.Month() {
		return fmt.Sprintf("%s %d-%d, %d", first.Format("Jan"), first.Day(), last.Day(), first.Year())
	}
	return fmt.Sprintf("%s %d - %s %d, %d", first.Format("Jan"), first.Day(), last.Format("Jan"), last.Day(), first.Year())
}
