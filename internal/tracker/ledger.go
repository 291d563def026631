package tracker

import (
	"hourbank/internal/dateutil"
)

// TotalForDay sums the recorded hours for a date key. Days with no
// sessions total zero.
func (e *Engine) TotalForDay(dateKey string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sessions, err := e.loadSessions()
	if err != nil {
		return 0, err
	}
	return sumHours(sessions[dateKey]), nil
}

// DisplayTotalToday is today's recorded total plus the live session.
func (e *Engine) DisplayTotalToday() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sessions, err := e.loadSessions()
	if err != nil {
		return 0, err
	}
	return sumHours(sessions[e.todayKey()]) + e.timer.elapsed(e.clock.Now()).Hours(), nil
}

// WeeklyWorked sums the five weekday totals of the week starting at
// weekStart, adding the live session on today's date.
func (e *Engine) WeeklyWorked(weekStart string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.weeklyWorked(weekStart)
}

func (e *Engine) weeklyWorked(weekStart string) (float64, error) {
	dates, err := dateutil.WeekDates(weekStart)
	if err != nil {
		return 0, err
	}
	sessions, err := e.loadSessions()
	if err != nil {
		return 0, err
	}

	today := e.todayKey()
	var total float64
	for _, d := range dates {
		total += sumHours(sessions[d])
		if d == today {
			total += e.timer.elapsed(e.clock.Now()).Hours()
		}
	}
	return total, nil
}

// WeeklyTarget counts one target-hours unit per weekday of the week that
// is today or earlier. Future weekdays contribute nothing, so the target
// grows through the week and tops out at five units.
func (e *Engine) WeeklyTarget(weekStart string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.weeklyTarget(weekStart)
}

func (e *Engine) weeklyTarget(weekStart string) (float64, error) {
	dates, err := dateutil.WeekDates(weekStart)
	if err != nil {
		return 0, err
	}
	today := e.todayKey()
	count := 0
	for _, d := range dates {
		// String compare is ordering-correct for zero-padded date keys.
		if d <= today {
			count++
		}
	}
	return float64(count) * e.settings.TargetHours, nil
}

// WeeklyBalance is the current week's worked hours minus its target.
func (e *Engine) WeeklyBalance() (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	weekStart := dateutil.WeekStartKey(e.clock.Now())
	worked, err := e.weeklyWorked(weekStart)
	if err != nil {
		return 0, err
	}
	target, err := e.weeklyTarget(weekStart)
	if err != nil {
		return 0, err
	}
	return worked - target, nil
}

// RecalcBanked rebuilds the banked balance from scratch: overtime earned
// on every completed day (today is still in progress and excluded) minus
// the deduction log. Calling it with no intervening mutation is a no-op,
// and it self-heals any drift in the cached balance.
func (e *Engine) RecalcBanked() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recalcBanked()
}

func (e *Engine) recalcBanked() error {
	sessions, err := e.loadSessions()
	if err != nil {
		return err
	}
	banked, err := e.loadBanked()
	if err != nil {
		return err
	}

	today := e.todayKey()
	var earned float64
	for dateKey, day := range sessions {
		if dateKey == today {
			continue
		}
		// Overtime may be negative (undertime).
		earned += sumHours(day) - e.settings.TargetHours
	}

	var deducted float64
	for _, entry := range banked.Log {
		if entry.Type == Deduction {
			deducted += entry.Hours
		}
	}

	banked.Balance = earned - deducted
	if err := e.store.Save(keyBanked, banked); err != nil {
		return err
	}
	e.log.Debug("banked balance recomputed", "balance", banked.Balance)
	return nil
}
