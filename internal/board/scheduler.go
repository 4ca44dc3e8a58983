package board

import "time"

// Scheduler schedules one-shot deferred actions. The manager keeps at most
// one pending action at a time: scheduling a new hide cancels the previous
// one first. Tests substitute a manual implementation (virtual clock).
type Scheduler interface {
	// AfterFunc runs fn on its own goroutine after d elapses and returns a
	// cancel func. Cancelling after the action fired is a no-op.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

// NewScheduler returns a Scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler { return timerScheduler{} }

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
