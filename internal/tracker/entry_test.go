package tracker

import (
	"math"
	"strings"
	"testing"
)

func TestAddRangeWithLunchDeduction(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	hours, err := eng.AddRange("2026-01-07", "08:00", "16:00", true, "")
	if err != nil {
		t.Fatalf("AddRange: %v", err)
	}
	if !approx(hours, 7.5) {
		t.Fatalf("hours = %v, want 7.5", hours)
	}

	sessions, err := eng.TodaySessions()
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.Type != SessionManual {
		t.Fatalf("type = %v, want manual", s.Type)
	}
	if !strings.Contains(s.Note, "8:00AM-4:00PM") || !strings.Contains(s.Note, "30m lunch") {
		t.Fatalf("note = %q, want the composed range", s.Note)
	}
	if s.Start.Hour() != 8 || s.Start.Minute() != 0 {
		t.Fatalf("start = %v, want 08:00", s.Start)
	}
}

func TestAddRangeWithoutLunch(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	hours, err := eng.AddRange("2026-01-07", "09:30", "12:00", false, "morning focus")
	if err != nil {
		t.Fatalf("AddRange: %v", err)
	}
	if !approx(hours, 2.5) {
		t.Fatalf("hours = %v, want 2.5", hours)
	}
	sessions, err := eng.TodaySessions()
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if !strings.HasPrefix(sessions[0].Note, "morning focus | ") {
		t.Fatalf("note = %q, want the user note prefixed", sessions[0].Note)
	}
}

func TestAddRangeRejections(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	tests := []struct {
		name        string
		date        string
		start, end  string
		deductLunch bool
	}{
		{name: "end equals start", date: "2026-01-07", start: "08:00", end: "08:00"},
		{name: "end before start", date: "2026-01-07", start: "16:00", end: "08:00"},
		{name: "lunch eats the whole range", date: "2026-01-07", start: "08:00", end: "08:20", deductLunch: true},
		{name: "bad date", date: "07/01/2026", start: "08:00", end: "16:00"},
		{name: "bad start time", date: "2026-01-07", start: "8am", end: "16:00"},
		{name: "out of range minutes", date: "2026-01-07", start: "08:75", end: "16:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := eng.AddRange(tt.date, tt.start, tt.end, tt.deductLunch, ""); !IsValidation(err) {
				t.Fatalf("got %v, want validation error", err)
			}
		})
	}

	sessions, err := eng.TodaySessions()
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("rejections recorded %d sessions", len(sessions))
	}
}

func TestAddQuickHours(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	if err := eng.AddQuickHours(1.5, "meeting before timer"); err != nil {
		t.Fatalf("AddQuickHours: %v", err)
	}
	sessions, err := eng.TodaySessions()
	if err != nil {
		t.Fatalf("TodaySessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if !approx(sessions[0].Hours, 1.5) || sessions[0].Note != "meeting before timer" {
		t.Fatalf("session = %+v", sessions[0])
	}
}

func TestAddQuickHoursRejectsBadInput(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	for _, hours := range []float64{0, -0.5, math.NaN()} {
		if err := eng.AddQuickHours(hours, ""); !IsValidation(err) {
			t.Fatalf("AddQuickHours(%v) = %v, want validation error", hours, err)
		}
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("08:30")
	if err != nil {
		t.Fatalf("parseClock: %v", err)
	}
	if h != 8 || m != 30 {
		t.Fatalf("parseClock = %d:%d, want 8:30", h, m)
	}
	for _, bad := range []string{"", "8", "24:00", "12:60", "a:b"} {
		if _, _, err := parseClock(bad); err == nil {
			t.Errorf("parseClock(%q) accepted bad input", bad)
		}
	}
}
