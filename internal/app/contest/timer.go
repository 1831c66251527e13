package contest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerFrozen  TimerState = "frozen"
)

// Timer derives the elapsed-time display from the server-issued start
// instant. Once the backend reports a final duration the display locks
// to that exact value for the rest of the session.
type Timer struct {
	clock clockwork.Clock

	mu     sync.Mutex
	state  TimerState
	start  time.Time
	frozen int
}

func NewTimer(clock clockwork.Clock) *Timer {
	return &Timer{
		clock: clock,
		state: TimerIdle,
	}
}

// Sync adopts the server's view of the timer. The start instant is
// authoritative and replaces any local origin; since the backend's
// start-timer call is idempotent, re-adopting the same instant leaves
// the elapsed origin unchanged. A non-nil timeTaken freezes the timer
// permanently; nothing un-freezes it within the session.
func (t *Timer) Sync(start *time.Time, timeTaken *int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == TimerFrozen {
		return
	}
	if timeTaken != nil {
		t.frozen = *timeTaken
		t.state = TimerFrozen
		return
	}
	if start != nil {
		t.start = *start
		t.state = TimerRunning
	}
}

func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// ElapsedSeconds is the frozen duration once complete, otherwise whole
// seconds since the start instant, otherwise zero.
func (t *Timer) ElapsedSeconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.state {
	case TimerFrozen:
		return t.frozen
	case TimerRunning:
		elapsed := int(t.clock.Now().Sub(t.start) / time.Second)
		if elapsed < 0 {
			return 0
		}
		return elapsed
	default:
		return 0
	}
}

func (t *Timer) FormatElapsed() string {
	return FormatDuration(t.ElapsedSeconds())
}

// FormatDuration renders zero-padded MM:SS, switching to HH:MM:SS past
// one hour.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hrs := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// Run invokes fn once per second with the current elapsed seconds.
// It emits the final value and returns when the timer freezes, and
// returns on context cancellation.
func (t *Timer) Run(ctx context.Context, fn func(elapsedSeconds int)) {
	ticker := t.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			state := t.State()
			if state == TimerIdle {
				continue
			}
			fn(t.ElapsedSeconds())
			if state == TimerFrozen {
				return
			}
		}
	}
}
