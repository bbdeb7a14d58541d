package timer

import (
	"log/slog"
	"time"
)

// Timer is a one-shot timer that is owned by a single goroutine.
// Start always cancels the previous run, so at most one expiry is outstanding.
type Timer struct {
	t      *time.Timer
	active bool
}

func New() *Timer {
	t := time.NewTimer(time.Hour)
	stopTimer(t)
	return &Timer{t: t}
}

// C delivers the expiry. The receiver must call Fired after reading from it.
func (tm *Timer) C() <-chan time.Time {
	return tm.t.C
}

func (tm *Timer) Start(d time.Duration) {
	stopTimer(tm.t)
	tm.t.Reset(d)
	tm.active = true
	slog.Debug("Timer started", "duration", d)
}

func (tm *Timer) Stop() {
	stopTimer(tm.t)
	tm.active = false
}

func (tm *Timer) Fired() {
	tm.active = false
}

func (tm *Timer) Active() bool {
	return tm.active
}

// Stops the timer and drains a pending expiry.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
