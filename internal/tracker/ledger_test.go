package tracker

import (
	"testing"
	"time"
)

func TestWeeklyTargetProgression(t *testing.T) {
	weekStart := "2026-01-05"
	tests := []struct {
		name  string
		today time.Time
		want  float64 // units of targetHours
	}{
		{name: "before the week", today: time.Date(2026, 1, 2, 12, 0, 0, 0, time.Local), want: 0},
		{name: "monday", today: time.Date(2026, 1, 5, 12, 0, 0, 0, time.Local), want: 1},
		{name: "wednesday", today: time.Date(2026, 1, 7, 12, 0, 0, 0, time.Local), want: 3},
		{name: "friday", today: time.Date(2026, 1, 9, 12, 0, 0, 0, time.Local), want: 5},
		{name: "weekend after", today: time.Date(2026, 1, 11, 12, 0, 0, 0, time.Local), want: 5},
		{name: "long after", today: time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local), want: 5},
	}

	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)
	target := eng.Settings().TargetHours

	prev := -1.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk.now = tt.today
			got, err := eng.WeeklyTarget(weekStart)
			if err != nil {
				t.Fatalf("WeeklyTarget: %v", err)
			}
			if !approx(got, tt.want*target) {
				t.Fatalf("WeeklyTarget = %v, want %v", got, tt.want*target)
			}
			if got < prev {
				t.Fatalf("WeeklyTarget decreased: %v after %v", got, prev)
			}
			prev = got
		})
	}
}

func TestWeeklyWorkedIncludesLiveSession(t *testing.T) {
	clk := &fakeClock{now: baseTime} // Wednesday
	eng := newTestEngine(t, clk)

	if err := eng.AddQuickHours(2, "standup prep"); err != nil {
		t.Fatalf("AddQuickHours: %v", err)
	}
	if err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(time.Hour)

	worked, err := eng.WeeklyWorked("2026-01-05")
	if err != nil {
		t.Fatalf("WeeklyWorked: %v", err)
	}
	if !approx(worked, 3.0) {
		t.Fatalf("WeeklyWorked = %v, want 3.0", worked)
	}

	balance, err := eng.WeeklyBalance()
	if err != nil {
		t.Fatalf("WeeklyBalance: %v", err)
	}
	// Three weekdays have passed: target is 3 x 7.6.
	if !approx(balance, 3.0-3*7.6) {
		t.Fatalf("WeeklyBalance = %v, want %v", balance, 3.0-3*7.6)
	}
}

func TestDisplayTotalToday(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	if err := eng.AddQuickHours(2.5, ""); err != nil {
		t.Fatalf("AddQuickHours: %v", err)
	}
	if err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clk.advance(30 * time.Minute)

	total, err := eng.DisplayTotalToday()
	if err != nil {
		t.Fatalf("DisplayTotalToday: %v", err)
	}
	if !approx(total, 3.0) {
		t.Fatalf("DisplayTotalToday = %v, want 3.0", total)
	}
}

func TestBankedEarnedFromHistoricalOvertime(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	// 9.0 hours against a 7.6 target on a completed day earns +1.4.
	seedYesterday(t, eng, clk, "08:00", "17:00")
	banked, err := eng.Banked()
	if err != nil {
		t.Fatalf("Banked: %v", err)
	}
	if !approx(banked.Balance, 1.4) {
		t.Fatalf("balance = %v, want 1.4", banked.Balance)
	}
}

func TestBankedExcludesToday(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	// Today is still in progress; its overtime is not banked yet.
	if err := eng.AddQuickHours(9, ""); err != nil {
		t.Fatalf("AddQuickHours: %v", err)
	}
	banked, err := eng.Banked()
	if err != nil {
		t.Fatalf("Banked: %v", err)
	}
	if !approx(banked.Balance, 0) {
		t.Fatalf("balance = %v, want 0", banked.Balance)
	}
}

func TestBankedCountsUndertime(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	// A short completed day drags the balance negative.
	seedYesterday(t, eng, clk, "09:00", "13:00") // 4.0 hours
	banked, err := eng.Banked()
	if err != nil {
		t.Fatalf("Banked: %v", err)
	}
	if !approx(banked.Balance, 4.0-7.6) {
		t.Fatalf("balance = %v, want %v", banked.Balance, 4.0-7.6)
	}
}

func TestRecalcBankedIdempotent(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	seedYesterday(t, eng, clk, "08:00", "17:00")
	if err := eng.RecalcBanked(); err != nil {
		t.Fatalf("RecalcBanked: %v", err)
	}
	first, err := eng.Banked()
	if err != nil {
		t.Fatalf("Banked: %v", err)
	}
	if err := eng.RecalcBanked(); err != nil {
		t.Fatalf("RecalcBanked: %v", err)
	}
	second, err := eng.Banked()
	if err != nil {
		t.Fatalf("Banked: %v", err)
	}
	if !approx(first.Balance, second.Balance) {
		t.Fatalf("recompute drifted: %v then %v", first.Balance, second.Balance)
	}
}

func TestTargetChangeIsRetroactive(t *testing.T) {
	clk := &fakeClock{now: baseTime}
	eng := newTestEngine(t, clk)

	seedYesterday(t, eng, clk, "08:00", "17:00") // 9.0 hours
	if err := eng.SetTargetHours(8); err != nil {
		t.Fatalf("SetTargetHours: %v", err)
	}
	banked, err := eng.Banked()
	if err != nil {
		t.Fatalf("Banked: %v", err)
	}
	if !approx(banked.Balance, 1.0) {
		t.Fatalf("balance = %v, want 1.0 after target change", banked.Balance)
	}
}
