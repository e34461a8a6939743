package cli

import "errors"

var (
	// ErrInvalidInteger is returned when a token is not a decimal integer
	// that fits in 32 bits.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrInvalidBoolean is returned when a token is none of
	// 0, 1, false, true, off, on.
	ErrInvalidBoolean = errors.New("invalid boolean")

	// ErrLineTooLong is returned for a command line that exceeded the line
	// buffer capacity. The whole line is discarded.
	ErrLineTooLong = errors.New("command too long")
)
