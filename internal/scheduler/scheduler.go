package scheduler

import "time"

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback returned by a Scheduler.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or the timer was stopped before.
	Stop() bool
}
