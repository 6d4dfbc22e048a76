package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-portfolio/pkg/contact"
	"github.com/goliatone/go-portfolio/pkg/validation"
)

// Snapshot is a point-in-time copy of the controller state for renderers.
type Snapshot struct {
	Values contact.Submission
	Errors validation.FieldErrors
	Status Status
	Banner string
}

// Submitting reports whether the submit action should be disabled.
func (s Snapshot) Submitting() bool {
	return s.Status == StatusSubmitting
}

// Controller owns the state of one contact form.
type Controller struct {
	submitter    Submitter
	scheduler    Scheduler
	dismissAfter time.Duration
	onChange     func(Snapshot)

	mu         sync.Mutex
	values     contact.Submission
	errors     validation.FieldErrors
	status     Status
	banner     string
	timer      Timer
	generation uint64
	closed     bool
}

// New constructs an idle controller with empty fields.
func New(submitter Submitter, options ...Option) *Controller {
	c := &Controller{
		submitter:    submitter,
		scheduler:    SystemScheduler(),
		dismissAfter: DefaultDismissAfter,
		errors:       make(validation.FieldErrors),
		status:       StatusIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// UpdateField sets a field value and clears any error held for it.
func (c *Controller) UpdateField(field contact.Field, value string) {
	c.mu.Lock()
	c.values = c.values.With(field, value)
	delete(c.errors, field)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// Validate runs the form rules, stores the resulting error mapping and
// reports whether it is empty.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	c.errors = validation.ValidateForm(c.values)
	ok := c.errors.Empty()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return ok
}

// Submit validates the form and, when valid, sends it. Outcomes reported by
// the endpoint are reflected in the status and banner and return nil. A
// second call while a submission is pending is a no-op returning ErrInFlight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrInFlight
	}
	if c.submitter == nil {
		c.mu.Unlock()
		return errors.New("form: submitter is nil")
	}

	c.errors = validation.ValidateForm(c.values)
	if !c.errors.Empty() {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return ErrInvalid
	}

	payload := c.values
	c.transitionLocked(StatusSubmitting, "")
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	outcome, err := c.submitter.Submit(ctx, payload)

	c.mu.Lock()
	switch {
	case err != nil:
		c.transitionLocked(StatusError, TransportFailureMessage)
	case outcome.Success():
		c.values = contact.Submission{}
		c.errors = make(validation.FieldErrors)
		c.transitionLocked(StatusSuccess, successBanner(outcome))
		c.armDismissLocked()
	default:
		c.transitionLocked(StatusError, failureBanner(outcome))
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// Status returns the current lifecycle value.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels the pending dismissal, if any. Further submissions fail
// with ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
	c.generation++
}

func (c *Controller) transitionLocked(status Status, banner string) {
	c.stopTimerLocked()
	c.generation++
	c.status = status
	c.banner = banner
}

func (c *Controller) armDismissLocked() {
	if c.closed {
		return
	}
	gen := c.generation
	c.timer = c.scheduler.AfterFunc(c.dismissAfter, func() {
		c.dismiss(gen)
	})
}

func (c *Controller) dismiss(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || c.status != StatusSuccess {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.generation++
	c.status = StatusIdle
	c.banner = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Values: c.values,
		Errors: c.errors.Clone(),
		Status: c.status,
		Banner: c.banner,
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}

func successBanner(outcome contact.Outcome) string {
	if msg := strings.TrimSpace(outcome.Message); msg != "" {
		return msg
	}
	return contact.MessageSent
}

func failureBanner(outcome contact.Outcome) string {
	if msg := strings.TrimSpace(outcome.Message); msg != "" {
		return msg
	}
	return FallbackFailureMessage
}
