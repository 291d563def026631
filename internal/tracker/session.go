package tracker

import (
	"time"

	"github.com/google/uuid"
)

// SessionType distinguishes timer-recorded intervals from manually
// entered blocks.
type SessionType string

const (
	SessionTimer  SessionType = "timer"
	SessionManual SessionType = "manual"
)

// Session is one logged interval of work. Sessions are immutable once
// appended; only a full reset removes them.
type Session struct {
	ID    string      `json:"id"`
	Start time.Time   `json:"start"`
	Hours float64     `json:"duration"`
	Type  SessionType `json:"type"`
	Note  string      `json:"note,omitempty"`
}

func newSession(start time.Time, hours float64, typ SessionType, note string) Session {
	return Session{
		ID:    uuid.New().String(),
		Start: start,
		Hours: hours,
		Type:  typ,
		Note:  note,
	}
}

// Sessions maps a date key to that day's ordered session list.
// Insertion order is chronological order of recording.
type Sessions map[string][]Session

// Settings is the user-configurable record loaded at startup and saved
// explicitly on change.
type Settings struct {
	TargetHours          float64 `json:"targetHours"`   // hours per weekday
	LunchDuration        int     `json:"lunchDuration"` // minutes
	NotificationsEnabled bool    `json:"notificationsEnabled"`
}

// DefaultSettings mirrors the defaults applied before any settings record
// has been saved.
func DefaultSettings() Settings {
	return Settings{
		TargetHours:          7.6,
		LunchDuration:        30,
		NotificationsEnabled: true,
	}
}

// EntryType tags banked-ledger entries. Only deductions exist; accruals
// are logged as annotated deductions (see Engine.LogTimeAccrued).
type EntryType string

const Deduction EntryType = "deduction"

// LedgerEntry is one append-only banked-hours log record.
type LedgerEntry struct {
	Date      string    `json:"date"`
	Type      EntryType `json:"type"`
	Hours     float64   `json:"hours"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Banked is the persisted banked-hours record: the append-only deduction
// log plus a cached balance. The balance is always overwritten by a full
// recompute, never trusted incrementally.
type Banked struct {
	Balance float64       `json:"balance"`
	Log     []LedgerEntry `json:"log"`
}
