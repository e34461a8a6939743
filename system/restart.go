package system

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultRestartDelay leaves time for the reply to reach the operator
// before the process is replaced.
const DefaultRestartDelay = 500 * time.Millisecond

// Restarter restarts the controller process after a delay.
type Restarter struct {
	// Delay before Exec runs. Defaults to DefaultRestartDelay.
	Delay time.Duration
	// BeforeExec runs right before Exec. It releases resources the new
	// process has to acquire again, such as the serial port.
	BeforeExec func()
	// Exec performs the restart. Defaults to ExecSelf.
	Exec func() error
	// Logger defaults to slog.Default().
	Logger *slog.Logger

	mu      sync.Mutex
	pending *time.Timer
}

// Restart schedules the restart and returns immediately. A restart that is
// already pending is not scheduled twice.
func (r *Restarter) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending != nil {
		return
	}

	delay := r.Delay
	if delay <= 0 {
		delay = DefaultRestartDelay
	}
	exec := r.Exec
	if exec == nil {
		exec = ExecSelf
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Restarting controller", "delay", delay)
	before := r.BeforeExec
	r.pending = time.AfterFunc(delay, func() {
		if before != nil {
			before()
		}
		if err := exec(); err != nil {
			logger.Error("Restart failed", "error", err)
		}
		r.mu.Lock()
		r.pending = nil
		r.mu.Unlock()
	})
}

// Pending reports whether a restart is scheduled.
func (r *Restarter) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending != nil
}

// ExecSelf replaces the running process with a fresh instance of the same
// executable, arguments and environment. Descriptors other than stdio are
// not inherited. It only returns on failure.
func ExecSelf() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	closeOnExec("/proc/self/fd")
	if err := unix.Exec(exe, os.Args, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", exe, err)
	}
	return nil
}

// closeOnExec marks every open descriptor above stderr close-on-exec. dir
// lists the descriptors of the process.
func closeOnExec(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		fd, err := strconv.Atoi(e.Name())
		if err != nil || fd <= 2 {
			continue
		}
		unix.CloseOnExec(fd)
	}
}
