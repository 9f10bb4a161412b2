package scheduler

import "time"

// Clock abstracts wall-clock reads and one-shot timers so the scheduler
// is testable without sleeping.
type Clock interface {
	Now() time.Time
	// AfterFunc runs fn in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is the handle returned by Clock.AfterFunc. Stop is only used on
// shutdown; scheduled reminders themselves cannot be cancelled.
type Timer interface {
	Stop() bool
}

// realClock delegates to the time package.
type realClock struct{}

// NewRealClock returns a Clock backed by the system clock.
func NewRealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
