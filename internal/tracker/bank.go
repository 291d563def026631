package tracker

import (
	"fmt"
	"math"
	"strings"

	"hourbank/internal/dateutil"
)

// Banked returns the persisted banked-hours record.
func (e *Engine) Banked() (Banked, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadBanked()
}

func (e *Engine) loadBanked() (Banked, error) {
	banked := Banked{Log: []LedgerEntry{}}
	if _, err := e.store.Load(keyBanked, &banked); err != nil {
		return Banked{}, err
	}
	return banked, nil
}

// UseBankedHours spends accumulated overtime. Asking for more than the
// balance is rejected with no mutation; otherwise exactly one deduction
// entry is appended and the record is persisted as a whole.
func (e *Engine) UseBankedHours(hours float64, reason string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.deduct(hours, e.todayKey(), reason); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("Used %.1f banked hours", hours))
	return nil
}

// LogTimeAccrued records banked time as logged time off for a given date
// (today if empty). Despite the name it deducts from the balance exactly
// like UseBankedHours, with the note folded into an annotated reason;
// converting banked overtime into logged time spends it.
func (e *Engine) LogTimeAccrued(hours float64, dateKey, note string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if dateKey == "" {
		dateKey = e.todayKey()
	} else if _, err := dateutil.ParseKey(dateKey); err != nil {
		return validationErrorf("invalid date %q", dateKey)
	}

	reason := strings.TrimSpace("Time accrued: " + note)
	if err := e.deduct(hours, dateKey, reason); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("%.1f hours logged as time accrued", hours))
	return nil
}

func (e *Engine) deduct(hours float64, dateKey, reason string) error {
	if math.IsNaN(hours) || hours <= 0 {
		return validationErrorf("enter a valid number of hours")
	}

	banked, err := e.loadBanked()
	if err != nil {
		return err
	}
	if hours > banked.Balance {
		e.alert("Not enough banked hours")
		return ErrInsufficientBalance
	}

	banked.Log = append(banked.Log, LedgerEntry{
		Date:      dateKey,
		Type:      Deduction,
		Hours:     hours,
		Reason:    reason,
		Timestamp: e.clock.Now(),
	})
	banked.Balance -= hours
	if err := e.store.Save(keyBanked, banked); err != nil {
		return err
	}
	e.log.Info("banked hours deducted", "hours", hours, "reason", reason)
	return nil
}
