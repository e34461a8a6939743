package console

import "errors"

var (
	// ErrNoDialer is returned when a Console is constructed without a Dialer.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNoExecutor is returned when a Console is constructed without an
	// Executor to run the received lines.
	ErrNoExecutor = errors.New("no executor configured")

	// ErrNotInitialized is returned when the Dialer yields no Transport, or an
	// operation is attempted on a Console not created via New.
	ErrNotInitialized = errors.New("console not initialized")

	// ErrAlreadyClosed is returned when Close is called on a Console that has
	// already been closed, or Loop is started after Close.
	ErrAlreadyClosed = errors.New("console already closed")

	// ErrLoopRunning is returned when Loop is called while another Loop is
	// still serving the same Console.
	ErrLoopRunning = errors.New("loop already running")
)
