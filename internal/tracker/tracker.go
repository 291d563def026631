// Package tracker implements the time-accounting engine: the live timer
// state machine, the session and banked-hours ledgers, and the weekly
// target/balance math. The engine owns no rendering; it reports advisory
// messages through a Notifier and leaves presentation to the caller.
package tracker

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"hourbank/internal/dateutil"
	"hourbank/internal/logging"
	"hourbank/internal/store"
)

// Persisted record keys.
const (
	keySessions = "sessions"
	keyBanked   = "banked"
	keySettings = "settings"
	keyTimer    = "timer_state"
)

// Notifier receives advisory user-facing messages. The engine never
// renders them itself.
type Notifier func(message string)

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects a clock, mainly for tests.
func WithClock(c dateutil.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithNotifier sets the advisory message sink.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine is the time-accounting core. All mutating operations serialize
// through one mutex since both the periodic tick and direct calls reach
// the shared timer and stores.
type Engine struct {
	mu       sync.Mutex
	store    *store.Store
	clock    dateutil.Clock
	log      *slog.Logger
	notifier Notifier

	settings Settings
	timer    timer
}

// New builds an Engine over st, loading settings and restoring the timer
// snapshot. A snapshot saved on a previous calendar day is discarded; a
// snapshot that was actively running is frozen into Paused (see
// timer.restore).
func New(st *store.Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:    st,
		clock:    dateutil.System(),
		log:      logging.Discard(),
		notifier: func(string) {},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.settings = DefaultSettings()
	var saved Settings
	found, err := st.Load(keySettings, &saved)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if found {
		// Zero fields fall back to defaults, matching the behavior of a
		// partially-written older record.
		if saved.TargetHours > 0 {
			e.settings.TargetHours = saved.TargetHours
		}
		if saved.LunchDuration > 0 {
			e.settings.LunchDuration = saved.LunchDuration
		}
		e.settings.NotificationsEnabled = saved.NotificationsEnabled
	}

	if err := e.restoreTimer(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) restoreTimer() error {
	var snap timerSnapshot
	found, err := e.store.Load(keyTimer, &snap)
	if err != nil {
		return fmt.Errorf("load timer state: %w", err)
	}
	if !found {
		return nil
	}

	savedDate := dateutil.Key(time.UnixMilli(snap.SavedAt))
	if savedDate != e.todayKey() {
		// Stale cross-day state is never trusted.
		e.log.Info("discarding stale timer snapshot", "saved", savedDate)
		return e.store.Delete(keyTimer)
	}

	e.timer.restore(snap)
	e.log.Debug("restored timer snapshot", "phase", e.timer.phase.String())
	return nil
}

func (e *Engine) todayKey() string {
	return dateutil.Key(e.clock.Now())
}

// notify emits an advisory message unless notifications are disabled.
func (e *Engine) notify(message string) {
	if e.settings.NotificationsEnabled {
		e.notifier(message)
	}
}

// alert emits a rejection message regardless of the notification toggle.
func (e *Engine) alert(message string) {
	e.notifier(message)
}

func (e *Engine) saveTimer() error {
	return e.store.Save(keyTimer, e.timer.snapshot(e.clock.Now()))
}

func (e *Engine) loadSessions() (Sessions, error) {
	sessions := Sessions{}
	if _, err := e.store.Load(keySessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (e *Engine) appendSession(dateKey string, s Session) error {
	sessions, err := e.loadSessions()
	if err != nil {
		return err
	}
	sessions[dateKey] = append(sessions[dateKey], s)
	if err := e.store.Save(keySessions, sessions); err != nil {
		return err
	}
	e.log.Info("session recorded", "date", dateKey, "hours", s.Hours, "type", string(s.Type))
	return nil
}

// Start begins the timer, or resumes it when paused. An active lunch is
// ended first without any session side effect.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer.onLunch {
		e.endLunch()
	}
	e.timer.start(e.clock.Now())
	if err := e.saveTimer(); err != nil {
		return err
	}
	e.notify("Timer started")
	return nil
}

// StartFrom starts the timer from an explicit past instant, used to
// retroactively record an earlier start. A non-past instant is rejected
// with no state change.
func (e *Engine) StartFrom(at time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if !at.Before(now) {
		return validationErrorf("start time must be in the past")
	}
	if e.timer.onLunch {
		e.endLunch()
	}
	e.timer.startFrom(at)
	if err := e.saveTimer(); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("Timer running from %s (%.1fh so far)", fmtClock12(at.Hour(), at.Minute()), now.Sub(at).Hours()))
	return nil
}

// Pause captures the elapsed interval; Start resumes from the same offset.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer.phase != Running {
		return nil
	}
	e.timer.pause(e.clock.Now())
	if err := e.saveTimer(); err != nil {
		return err
	}
	e.notify("Timer paused")
	return nil
}

// Stop ends the live session. Intervals longer than the minimum threshold
// are appended to today's ledger as a timer session; shorter ones are
// discarded as accidental starts. The banked balance is recomputed either
// way.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	recorded := false
	if e.timer.phase != Idle {
		hours := e.timer.stop(now)
		if hours > minSessionHours {
			if err := e.appendSession(e.todayKey(), newSession(now, hours, SessionTimer, "")); err != nil {
				return err
			}
			recorded = true
		}
	}
	if err := e.saveTimer(); err != nil {
		return err
	}
	if err := e.recalcBanked(); err != nil {
		return err
	}
	if recorded {
		e.notify("Timer stopped — session saved")
	} else {
		e.notify("Timer stopped")
	}
	return nil
}

// StartLunch begins the lunch countdown, pausing a running timer first.
// No-op when lunch is already on.
func (e *Engine) StartLunch() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer.onLunch {
		return nil
	}
	now := e.clock.Now()
	if e.timer.phase == Running {
		e.timer.pause(now)
	}
	e.timer.onLunch = true
	e.timer.lunchStart = now
	if err := e.saveTimer(); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("Lunch break — %d min", e.settings.LunchDuration))
	return nil
}

// EndLunch clears the lunch overlay. It does not resume the timer.
func (e *Engine) EndLunch() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.endLunch()
	return e.saveTimer()
}

func (e *Engine) endLunch() {
	e.timer.onLunch = false
	e.timer.lunchStart = time.Time{}
}

// Tick drives the lunch countdown; the caller invokes it on a roughly
// one-second cadence. When the configured lunch duration has elapsed the
// lunch ends and a timer paused by StartLunch resumes automatically.
func (e *Engine) Tick() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.timer.onLunch {
		return nil
	}
	now := e.clock.Now()
	elapsed := now.Sub(e.timer.lunchStart).Minutes()
	if elapsed < float64(e.settings.LunchDuration) {
		return nil
	}

	e.endLunch()
	if e.timer.phase == Paused {
		e.timer.start(now)
	}
	if err := e.saveTimer(); err != nil {
		return err
	}
	e.notify("Lunch over — timer resumed")
	return nil
}

// CurrentSessionHours is the live session's elapsed hours: zero when
// idle, the frozen offset when paused.
func (e *Engine) CurrentSessionHours() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.elapsed(e.clock.Now()).Hours()
}

// Phase returns the timer's current run state.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.phase
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// SetTargetHours updates the daily target. Because historical overtime is
// derived from the target, the banked balance is recomputed.
func (e *Engine) SetTargetHours(hours float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if math.IsNaN(hours) || hours <= 0 {
		return validationErrorf("target hours must be a positive number")
	}
	e.settings.TargetHours = hours
	if err := e.saveSettings(); err != nil {
		return err
	}
	return e.recalcBanked()
}

// SetLunchDuration updates the lunch countdown length in minutes.
func (e *Engine) SetLunchDuration(minutes int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if minutes <= 0 {
		return validationErrorf("lunch duration must be a positive number of minutes")
	}
	e.settings.LunchDuration = minutes
	return e.saveSettings()
}

// SetNotificationsEnabled toggles advisory messages.
func (e *Engine) SetNotificationsEnabled(enabled bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.settings.NotificationsEnabled = enabled
	return e.saveSettings()
}

func (e *Engine) saveSettings() error {
	if err := e.store.Save(keySettings, e.settings); err != nil {
		return err
	}
	e.notify("Settings saved")
	return nil
}

// Reset clears every stored record and returns the engine to its initial
// state. There is no undo.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Reset(keySessions, keyBanked, keySettings, keyTimer); err != nil {
		return err
	}
	e.settings = DefaultSettings()
	e.timer = timer{}
	e.notify("All data reset")
	return nil
}

// Status is a point-in-time view of everything the presentation layer
// renders.
type Status struct {
	Phase          Phase
	Elapsed        time.Duration
	OnLunch        bool
	LunchRemaining int // whole minutes, 0 when not on lunch

	TodayKey   string
	TodayTotal float64 // includes the live session

	WeekStart   string
	WeekWorked  float64
	WeekTarget  float64
	WeekBalance float64

	BankedBalance float64
	TargetHours   float64
}

// Status computes the full display view in one locked pass.
func (e *Engine) Status() (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	today := dateutil.Key(now)
	weekStart := dateutil.WeekStartKey(now)

	sessions, err := e.loadSessions()
	if err != nil {
		return Status{}, err
	}
	banked, err := e.loadBanked()
	if err != nil {
		return Status{}, err
	}

	live := e.timer.elapsed(now).Hours()
	st := Status{
		Phase:         e.timer.phase,
		Elapsed:       e.timer.elapsed(now),
		OnLunch:       e.timer.onLunch,
		TodayKey:      today,
		TodayTotal:    sumHours(sessions[today]) + live,
		WeekStart:     weekStart,
		BankedBalance: banked.Balance,
		TargetHours:   e.settings.TargetHours,
	}
	if e.timer.onLunch {
		remaining := float64(e.settings.LunchDuration) - now.Sub(e.timer.lunchStart).Minutes()
		if remaining > 0 {
			st.LunchRemaining = int(math.Ceil(remaining))
		}
	}

	dates, err := dateutil.WeekDates(weekStart)
	if err != nil {
		return Status{}, err
	}
	for _, d := range dates {
		st.WeekWorked += sumHours(sessions[d])
		if d == today {
			st.WeekWorked += live
		}
		if d <= today {
			st.WeekTarget += e.settings.TargetHours
		}
	}
	st.WeekBalance = st.WeekWorked - st.WeekTarget
	return st, nil
}

// TodaySessions returns today's recorded sessions in insertion order.
func (e *Engine) TodaySessions() ([]Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sessions, err := e.loadSessions()
	if err != nil {
		return nil, err
	}
	return sessions[e.todayKey()], nil
}

func sumHours(day []Session) float64 {
	var total float64
	for _, s := range day {
		total += s.Hours
	}
	return total
}
