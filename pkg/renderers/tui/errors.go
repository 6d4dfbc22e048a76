package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNotSent is returned when the user gives up after a failed attempt.
	ErrNotSent = errors.New("tui: message not sent")
)
