package tracker

import (
	"time"
)

// Phase is the timer's run state. The lunch overlay is tracked separately
// because it can be on in any phase.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// minSessionHours is the smallest interval Stop will record; anything
// shorter is treated as an accidental start and discarded.
const minSessionHours = 0.001

// timer is the live in-progress session. startTime is meaningful while
// Running; accumulated holds the elapsed time captured at Pause and is
// carried back into startTime on resume.
type timer struct {
	phase       Phase
	startTime   time.Time
	accumulated time.Duration

	onLunch    bool
	lunchStart time.Time
}

// start begins or resumes the timer. Resuming credits the accumulated
// elapsed time by backdating startTime.
func (t *timer) start(now time.Time) {
	t.startTime = now.Add(-t.accumulated)
	t.accumulated = 0
	t.phase = Running
}

// startFrom is start with an explicit past instant, discarding any
// accumulated offset.
func (t *timer) startFrom(at time.Time) {
	t.startTime = at
	t.accumulated = 0
	t.phase = Running
}

// pause captures the elapsed interval as the resume offset.
func (t *timer) pause(now time.Time) {
	if t.phase != Running {
		return
	}
	t.accumulated = now.Sub(t.startTime)
	t.phase = Paused
}

// elapsed is the live session's length so far: zero when idle, the
// captured offset when paused, wall clock minus start when running.
func (t *timer) elapsed(now time.Time) time.Duration {
	switch t.phase {
	case Running:
		return now.Sub(t.startTime)
	case Paused:
		return t.accumulated
	default:
		return 0
	}
}

// stop ends the session and returns its length in hours. All fields reset
// to idle; the caller decides whether the interval is worth recording.
func (t *timer) stop(now time.Time) float64 {
	hours := t.elapsed(now).Hours()
	t.phase = Idle
	t.startTime = time.Time{}
	t.accumulated = 0
	return hours
}

// timerSnapshot is the persisted shape of the timer state, tagged with
// the save instant so stale cross-day state can be discarded on restore.
// Times are epoch milliseconds to match the stored record format.
type timerSnapshot struct {
	IsRunning      bool  `json:"isRunning"`
	IsPaused       bool  `json:"isPaused"`
	StartTime      int64 `json:"startTime"`
	PausedTime     int64 `json:"pausedTime"`
	IsOnLunch      bool  `json:"isOnLunch"`
	LunchStartTime int64 `json:"lunchStartTime"`
	SavedAt        int64 `json:"savedAt"`
}

func (t *timer) snapshot(now time.Time) timerSnapshot {
	snap := timerSnapshot{
		IsRunning:  t.phase != Idle,
		IsPaused:   t.phase == Paused,
		PausedTime: t.accumulated.Milliseconds(),
		IsOnLunch:  t.onLunch,
		SavedAt:    now.UnixMilli(),
	}
	if t.phase == Running {
		snap.StartTime = t.startTime.UnixMilli()
	}
	if t.onLunch {
		snap.LunchStartTime = t.lunchStart.UnixMilli()
	}
	return snap
}

// restore rebuilds the timer from a same-day snapshot. A snapshot that was
// actively running when saved is frozen into Paused with the elapsed time
// captured at the save instant, so time elapsed while the application was
// not running is never counted as worked.
func (t *timer) restore(snap timerSnapshot) {
	t.onLunch = snap.IsOnLunch
	if snap.IsOnLunch {
		t.lunchStart = time.UnixMilli(snap.LunchStartTime)
	}

	switch {
	case snap.IsRunning && !snap.IsPaused:
		t.phase = Paused
		t.accumulated = time.Duration(snap.SavedAt-snap.StartTime) * time.Millisecond
	case snap.IsRunning:
		t.phase = Paused
		t.accumulated = time.Duration(snap.PausedTime) * time.Millisecond
	default:
		t.phase = Idle
	}
}
