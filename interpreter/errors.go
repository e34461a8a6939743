package interpreter

import "errors"

var (
	// ErrInvalidCommand is returned when a line starts with no known verb.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidValve is returned for a valve index outside [0, MaxValve].
	ErrInvalidValve = errors.New("invalid valve number")

	// ErrInvalidCycle is returned for a cycle index outside [0, CycleCount].
	ErrInvalidCycle = errors.New("invalid cycle number")
)

// Configuration errors returned by New.
var (
	ErrNoOutputs   = errors.New("no output driver configured")
	ErrNoValves    = errors.New("no valve driver configured")
	ErrNoEngine    = errors.New("no cycle engine configured")
	ErrNoSettings  = errors.New("no settings configured")
	ErrNoNetwork   = errors.New("no network info configured")
	ErrNoRestarter = errors.New("no restarter configured")
)
