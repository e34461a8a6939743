package console

import (
	"log/slog"

	"i4.energy/across/apollo/cli"
)

// Executor runs one command line and returns the reply to send back.
type Executor interface {
	Execute(line string) string
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(line string) string

// Execute calls f(line).
func (f ExecutorFunc) Execute(line string) string {
	return f(line)
}

type Config struct {
	Dialer   Dialer
	Executor Executor
	// LineCapacity bounds an input line, excluding its terminator. Longer
	// lines are rejected. Defaults to cli.DefaultLineCapacity.
	LineCapacity int
	Logger       *slog.Logger
}

func (c *Config) validate() error {
	if c.Dialer == nil {
		return ErrNoDialer
	}
	if c.Executor == nil {
		return ErrNoExecutor
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.LineCapacity <= 0 {
		c.LineCapacity = cli.DefaultLineCapacity
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
