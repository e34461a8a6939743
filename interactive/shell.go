// Package interactive serves the command interpreter on a local terminal
// with line editing and history.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"golang.org/x/term"
	"i4.energy/across/apollo/cli"
)

// DefaultPrompt is shown before every input line.
const DefaultPrompt = "apollo> "

// ErrNoExecutor is returned by New without an Executor.
var ErrNoExecutor = errors.New("no executor configured")

// Executor runs one command line and returns its reply.
type Executor interface {
	Execute(line string) string
}

// Config controls the shell. Zero values select the process terminal.
type Config struct {
	Prompt      string
	HistoryFile string
	// LineCapacity bounds a command line. Defaults to cli.DefaultLineCapacity.
	LineCapacity int
	Stdin       io.ReadCloser
	Stdout      io.Writer
	// IsTerminal overrides terminal detection on Stdin.
	IsTerminal func() bool
	Logger     *slog.Logger
}

// Shell reads command lines from a terminal and prints the replies.
type Shell struct {
	rl       *readline.Instance
	executor Executor
	capacity int
	logger   *slog.Logger

	closeOnce sync.Once
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// New creates a Shell serving executor.
func New(executor Executor, config Config) (*Shell, error) {
	if executor == nil {
		return nil, ErrNoExecutor
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.Prompt,
		HistoryFile:     config.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           config.Stdin,
		Stdout:          config.Stdout,
		FuncIsTerminal:  config.IsTerminal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{rl: rl, executor: executor, capacity: config.LineCapacity, logger: config.Logger}, nil
}

// Stdout returns a writer that coordinates with the input line.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run serves lines until ctx is cancelled, input ends, or the operator
// types exit or quit. cancel is called when the operator leaves so the rest
// of the daemon shuts down too.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.close()

	stop := context.AfterFunc(ctx, s.close)
	defer stop()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if ctx.Err() == nil {
				fmt.Fprintln(s.rl.Stdout(), "Exiting...")
				cancel()
			}
			return
		}

		input, err := cli.NormalizeLine(line, s.capacity)
		if err != nil {
			fmt.Fprintln(s.rl.Stdout(), err.Error())
			continue
		}
		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		s.logger.Debug("Interactive command", "line", input)
		fmt.Fprintln(s.rl.Stdout(), s.executor.Execute(input))
	}
}

// close interrupts a pending Readline and releases the terminal.
func (s *Shell) close() {
	s.closeOnce.Do(func() { s.rl.Close() })
}
