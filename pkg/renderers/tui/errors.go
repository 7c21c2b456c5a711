package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalid is returned when a field still has visible errors after the
	// configured number of attempts.
	ErrInvalid = errors.New("tui: value is invalid")
)
