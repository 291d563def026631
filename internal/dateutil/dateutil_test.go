package dateutil

import (
	"testing"
	"time"
)

func TestWeekStartKey(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "monday maps to itself", date: "2026-01-05", want: "2026-01-05"},
		{name: "midweek", date: "2026-01-07", want: "2026-01-05"},
		{name: "friday", date: "2026-01-09", want: "2026-01-05"},
		{name: "saturday", date: "2026-01-10", want: "2026-01-05"},
		{name: "sunday goes back six days", date: "2026-01-11", want: "2026-01-05"},
		{name: "sunday crossing month boundary", date: "2026-02-01", want: "2026-01-26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseKey(tt.date)
			if err != nil {
				t.Fatalf("ParseKey(%q): %v", tt.date, err)
			}
			if got := WeekStartKey(d); got != tt.want {
				t.Fatalf("WeekStartKey(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	dates, err := WeekDates("2026-01-05")
	if err != nil {
		t.Fatalf("WeekDates: %v", err)
	}
	want := []string{"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08", "2026-01-09"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i], want[i])
		}
	}
}

func TestWeekDatesBadKey(t *testing.T) {
	if _, err := WeekDates("not-a-date"); err == nil {
		t.Fatal("expected error for malformed week start")
	}
}

func TestKeyRoundTrip(t *testing.T) {
	in := time.Date(2026, time.March, 9, 15, 30, 0, 0, time.Local)
	key := Key(in)
	if key != "2026-03-09" {
		t.Fatalf("Key = %s, want 2026-03-09", key)
	}
	out, err := ParseKey(key)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if out.Year() != 2026 || out.Month() != time.March || out.Day() != 9 {
		t.Fatalf("ParseKey gave %v", out)
	}
}

func TestFormatDate(t *testing.T) {
	// 2026-01-05 is a Monday.
	if got := FormatDate("2026-01-05"); got != "Mon 5" {
		t.Fatalf("FormatDate = %q, want %q", got, "Mon 5")
	}
}

func TestFormatWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		weekStart string
		want      string
	}{
		{name: "same month collapses", weekStart: "2026-01-05", want: "Jan 5-9, 2026"},
		{name: "month boundary spelled out", weekStart: "2026-06-29", want: "Jun 29 - Jul 3, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWeekRange(tt.weekStart); got != tt.want {
				t.Fatalf("FormatWeekRange(%s) = %q, want %q", tt.weekStart, got, tt.want)
			}
		})
	}
}
