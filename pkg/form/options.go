package form

import "time"

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler overrides the timer source used for success dismissal.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithDismissAfter overrides how long the success status is kept.
func WithDismissAfter(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.dismissAfter = d
		}
	}
}

// WithOnChange registers a listener invoked after every state change,
// including the timer driven return to idle. The listener runs without the
// controller lock held and may call back into the controller.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}
