package concentrator

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// maskBits is the width of a valve bit-mask.
const maskBits = 8

// idleWait paces the engine when no cycle in the sequence has a positive
// duration.
const idleWait = time.Second

// ValveDriver commands a single valve.
type ValveDriver interface {
	SetValve(index int, state bool)
}

// SettingsSource provides the current cycle configuration.
type SettingsSource interface {
	Snapshot() Settings
}

// Engine steps the valves through the configured cycle sequence. Settings
// are re-read at every cycle, so changes apply on the next cycle boundary.
type Engine struct {
	settings SettingsSource
	valves   ValveDriver
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine returns a stopped engine.
func NewEngine(settings SettingsSource, valves ValveDriver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		settings: settings,
		valves:   valves,
		logger:   logger,
	}
}

// Start begins cycling from cycle 0. Starting a running engine is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})

	e.logger.Info("Concentrator cycle started")
	go e.run(ctx, e.done)
}

// Stop halts cycling and closes every valve selected by the cycle valve
// mask. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel == nil {
		return
	}

	e.cancel()
	<-e.done
	e.cancel = nil
	e.done = nil

	mask := e.settings.Snapshot().CycleValveMask
	for v := 0; v < maskBits; v++ {
		if mask&(1<<v) != 0 {
			e.valves.SetValve(v, false)
		}
	}
	e.logger.Info("Concentrator cycle stopped")
}

// Running reports whether the engine is cycling.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancel != nil
}

// Apply drives the valves for cycle and returns how long the cycle lasts.
// Only valves selected by the cycle valve mask are touched.
func (e *Engine) Apply(cycle int) time.Duration {
	return e.apply(e.settings.Snapshot(), cycle)
}

func (e *Engine) apply(s Settings, cycle int) time.Duration {
	if cycle < 0 || cycle >= len(s.ValveState) || cycle >= len(s.DurationMS) {
		return 0
	}

	state := s.ValveState[cycle]
	for v := 0; v < maskBits; v++ {
		bit := 1 << v
		if s.CycleValveMask&bit == 0 {
			continue
		}
		e.valves.SetValve(v, state&bit != 0)
	}

	e.logger.Debug("Cycle applied", "cycle", cycle, "valves", state, "duration_ms", s.DurationMS[cycle])
	return time.Duration(s.DurationMS[cycle]) * time.Millisecond
}

func (e *Engine) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	skipped := 0
	for cycle := 0; ; cycle++ {
		s := e.settings.Snapshot()
		if cycle > s.CycleCount {
			cycle = 0
		}

		wait := e.apply(s, cycle)
		if wait <= 0 {
			// Zero-length cycles chain into the next one, unless the whole
			// sequence is zero-length.
			skipped++
			if skipped <= s.CycleCount {
				if ctx.Err() != nil {
					return
				}
				continue
			}
			wait = idleWait
		}
		skipped = 0

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
