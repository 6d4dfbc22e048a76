package form

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemScheduler returns a Scheduler backed by time.AfterFunc.
func SystemScheduler() Scheduler {
	return clockScheduler{}
}
