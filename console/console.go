// Package console serves the command interpreter over a byte-stream line such
// as a serial port: bytes are assembled into lines, each line is executed and
// its reply is written back followed by CRLF.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"i4.energy/across/apollo/cli"
)

// readChunk is the size of a single transport read.
const readChunk = 64

// Console owns a Transport and feeds the lines received on it to an
// Executor, one line at a time.
type Console struct {
	transport Transport
	executor  Executor
	capacity  int
	logger    *slog.Logger

	mu          sync.Mutex
	closed      bool
	loopRunning bool

	// out backs the reply written for the current line.
	out []byte
}

// input is a completed line, or the error that ended the transport.
type input struct {
	line    string
	tooLong bool
	err     error
}

// New dials the transport described by config and returns a Console ready
// for Loop.
func New(ctx context.Context, config Config) (*Console, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	transport, err := config.Dialer.Dial(ctx)
	if err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, ErrNotInitialized
	}

	return &Console{
		transport: transport,
		executor:  config.Executor,
		capacity:  config.LineCapacity,
		logger:    config.Logger,
	}, nil
}

// Loop serves the console until ctx is cancelled or the transport ends.
//
// A single goroutine reads the transport and assembles lines; Loop executes
// them in arrival order and writes each reply. Empty lines are ignored, so a
// CRLF pair counts as one terminator. A line longer than the configured
// capacity is discarded and answered with the line-too-long message.
//
// Loop returns ctx.Err() on cancellation and io.EOF when the transport is
// exhausted. Only one Loop may run at a time.
func (c *Console) Loop(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.transport == nil:
		c.mu.Unlock()
		return ErrNotInitialized
	case c.closed:
		c.mu.Unlock()
		return ErrAlreadyClosed
	case c.loopRunning:
		c.mu.Unlock()
		return ErrLoopRunning
	}
	c.loopRunning = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loopRunning = false
		c.mu.Unlock()
	}()

	// The reader stops with Loop, whichever way Loop returns.
	readCtx, stopRead := context.WithCancel(ctx)
	defer stopRead()

	inputs := make(chan input, 10)
	go c.read(readCtx, inputs)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in := <-inputs:
			if in.err != nil {
				if errors.Is(in.err, io.EOF) {
					return io.EOF
				}
				return fmt.Errorf("read error: %w", in.err)
			}

			var reply string
			if in.tooLong {
				c.logger.Warn("Discarded oversized line", "capacity", c.capacity)
				reply = cli.ErrLineTooLong.Error()
			} else {
				reply = c.executor.Execute(in.line)
			}

			if err := c.reply(reply); err != nil {
				return err
			}
		}
	}
}

// read is the only reader of the transport. It stops after delivering the
// first read error.
func (c *Console) read(ctx context.Context, inputs chan<- input) {
	send := func(in input) bool {
		select {
		case inputs <- in:
			return true
		case <-ctx.Done():
			return false
		}
	}

	lb := cli.NewLineBuffer(c.capacity)
	chunk := make([]byte, readChunk)
	for {
		n, err := c.transport.Read(chunk)
		if ctx.Err() != nil {
			return
		}
		for _, b := range chunk[:n] {
			line, done, lineErr := lb.Push(b)
			switch {
			case !done:
			case errors.Is(lineErr, cli.ErrLineTooLong):
				if !send(input{tooLong: true}) {
					return
				}
			case len(line) == 0:
			default:
				if !send(input{line: string(line)}) {
					return
				}
			}
		}
		if err != nil {
			send(input{err: err})
			return
		}
	}
}

func (c *Console) reply(reply string) error {
	c.out = append(c.out[:0], reply...)
	c.out = append(c.out, cli.LineTerminator...)
	if _, err := c.transport.Write(c.out); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}

// Close releases the transport. A running Loop returns once the pending read
// fails. After Close the Console cannot be reused.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrAlreadyClosed
	}
	c.closed = true

	if c.transport != nil {
		return c.transport.Close()
	}
	return nil
}
