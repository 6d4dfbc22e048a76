package form

import (
	"errors"
	"time"
)

// Status is the submission lifecycle value.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// DefaultDismissAfter is how long a success banner stays before the form
// returns to idle.
const DefaultDismissAfter = 5 * time.Second

const (
	// FallbackFailureMessage is shown when the endpoint rejects a submission
	// without a message of its own.
	FallbackFailureMessage = "Something went wrong. Please try again."
	// TransportFailureMessage is shown when the request could not complete.
	TransportFailureMessage = "Failed to send message. Please check your connection and try again."
)

var (
	// ErrInFlight is returned by Submit while another submission is pending.
	ErrInFlight = errors.New("form: submission already in flight")
	// ErrInvalid is returned by Submit when the form rules reject the input.
	ErrInvalid = errors.New("form: invalid input")
	// ErrTransport wraps failures of the underlying request.
	ErrTransport = errors.New("form: transport failure")
	// ErrClosed is returned once the controller has been torn down.
	ErrClosed = errors.New("form: controller closed")
)
