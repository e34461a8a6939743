// Package interpreter executes administrative command lines against the
// concentrator controller: one line in, one textual reply out.
package interpreter

import (
	"log/slog"
	"time"

	"i4.energy/across/apollo/cli"
)

const (
	// MaxValve is the highest valve index accepted by the valve command.
	MaxValve = 8

	// TimeLayout formats the reply of the time command.
	TimeLayout = "15:04:05  |  02.01.2006"

	replyCapacity = 64
)

// Interpreter parses and executes command lines.
//
// An Interpreter processes one line at a time to completion and is not safe
// for concurrent use. Channels that accept commands concurrently either own
// an Interpreter each or serialize calls to Execute.
type Interpreter struct {
	outputs   OutputDriver
	ledPin    int
	valves    ValveDriver
	engine    CycleEngine
	settings  Settings
	network   NetworkInfo
	restarter Restarter
	now       func() time.Time
	logger    *slog.Logger

	// err is the error of the most recent Execute call, nil on success.
	err error
	// buf backs formatted replies and is reused by every call.
	buf [replyCapacity]byte
}

// handler runs a verb against the input that follows it.
type handler func(i *Interpreter, args string) (string, error)

// commands is tried in order. Keywords never match each other's prefix, so
// the order only matters for speed: frequent verbs come first.
var commands = []struct {
	keyword string
	handle  handler
}{
	{"led", (*Interpreter).led},
	{"valve", (*Interpreter).valve},
	{"concentrator", (*Interpreter).concentrator},
	{"cycle-duration", (*Interpreter).cycleDuration},
	{"cycle-valves", (*Interpreter).cycleValves},
	{"cycle-valve-mask", (*Interpreter).cycleValveMask},
	{"save", (*Interpreter).save},
	{"ip", (*Interpreter).localIP},
	{"mac", (*Interpreter).hardwareID},
	{"time", (*Interpreter).currentTime},
	{"restart", (*Interpreter).restart},
	{"help", (*Interpreter).help},
	{"?", (*Interpreter).help},
}

// New creates an Interpreter bound to the collaborators in config.
func New(config Config) (*Interpreter, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	return &Interpreter{
		outputs:   config.Outputs,
		ledPin:    config.LEDPin,
		valves:    config.Valves,
		engine:    config.Engine,
		settings:  config.Settings,
		network:   config.Network,
		restarter: config.Restarter,
		now:       config.Now,
		logger:    config.Logger,
	}, nil
}

// Execute runs one command line, already stripped of its line terminator,
// and returns the reply: an acknowledgment, a formatted value, the help text
// or an error message. A failed command leaves the device state untouched.
func (i *Interpreter) Execute(line string) string {
	i.err = nil

	reply, err := i.dispatch(line)
	if err != nil {
		i.err = err
		reply = err.Error()
	}

	i.logger.Debug("Executed command", "line", line, "reply", reply, "error", err)
	return reply
}

// Err returns the error of the most recent Execute call, or nil if it
// succeeded.
func (i *Interpreter) Err() error {
	return i.err
}

func (i *Interpreter) dispatch(line string) (string, error) {
	for _, c := range commands {
		if n := cli.TryRead(c.keyword, line); n > 0 {
			return c.handle(i, line[n:])
		}
	}
	return "", ErrInvalidCommand
}
