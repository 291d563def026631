package tracker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hourbank/internal/dateutil"
)

// AddRange records a manual session from a start/end time of day,
// optionally deducting the configured lunch duration. It returns the
// recorded hours. Ranges where the end does not come after the start, or
// where the lunch deduction consumes the whole range, are rejected.
func (e *Engine) AddRange(dateKey, startHM, endHM string, deductLunch bool, note string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	day, err := dateutil.ParseKey(dateKey)
	if err != nil {
		return 0, validationErrorf("invalid date %q", dateKey)
	}
	sh, sm, err := parseClock(startHM)
	if err != nil {
		return 0, err
	}
	eh, em, err := parseClock(endHM)
	if err != nil {
		return 0, err
	}

	totalMins := (eh*60 + em) - (sh*60 + sm)
	if totalMins <= 0 {
		return 0, validationErrorf("end time must be after start time")
	}

	lunchNote := ""
	if deductLunch {
		totalMins -= e.settings.LunchDuration
		if totalMins <= 0 {
			return 0, validationErrorf("work time is less than lunch break")
		}
		lunchNote = fmt.Sprintf(" (-%dm lunch)", e.settings.LunchDuration)
	}

	hours := float64(totalMins) / 60
	start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, time.Local)

	autoNote := fmt.Sprintf("%s-%s%s", fmtClock12(sh, sm), fmtClock12(eh, em), lunchNote)
	fullNote := autoNote
	if note != "" {
		fullNote = note + " | " + autoNote
	}

	if err := e.appendSession(dateKey, newSession(start, hours, SessionManual, fullNote)); err != nil {
		return 0, err
	}
	if err := e.recalcBanked(); err != nil {
		return 0, err
	}
	e.notify(fmt.Sprintf("Added %.1fh for %s", hours, dateKey))
	return hours, nil
}

// AddQuickHours records a direct positive hour value for today.
func (e *Engine) AddQuickHours(hours float64, note string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if math.IsNaN(hours) || hours <= 0 {
		return validationErrorf("enter a valid number of hours")
	}
	if err := e.appendSession(e.todayKey(), newSession(e.clock.Now(), hours, SessionManual, note)); err != nil {
		return err
	}
	if err := e.recalcBanked(); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("Added %.1fh block", hours))
	return nil
}

// parseClock splits "HH:MM" into hour and minute.
func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, validationErrorf("invalid time %q, use HH:MM", value)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, validationErrorf("invalid time %q, use HH:MM", value)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, validationErrorf("invalid time %q, use HH:MM", value)
	}
	return h, m, nil
}

// fmtClock12 renders a time of day in 12-hour form, e.g. "8:00AM".
func fmtClock12(h, m int) string {
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d%s", h12, m, period)
}
