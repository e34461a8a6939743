package hardware

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ValveCount is the number of valves on the controller board.
const ValveCount = 9

// ErrValvePins is returned when the valve pin map does not cover every valve.
var ErrValvePins = errors.New("valve pin map must list one pin per valve")

// ValveBank commands the valves and remembers their last commanded state.
// It is safe for concurrent use.
type ValveBank struct {
	mu     sync.Mutex
	pins   Pins
	pinMap []int
	states [ValveCount]bool
	logger *slog.Logger
}

// NewValveBank returns a bank driving valve i through pinMap[i]. Every valve
// is closed on construction.
func NewValveBank(pins Pins, pinMap []int, logger *slog.Logger) (*ValveBank, error) {
	if len(pinMap) != ValveCount {
		return nil, fmt.Errorf("%w: got %d pins, want %d", ErrValvePins, len(pinMap), ValveCount)
	}
	if logger == nil {
		logger = slog.Default()
	}

	b := &ValveBank{
		pins:   pins,
		pinMap: append([]int(nil), pinMap...),
		logger: logger,
	}
	for i := range b.pinMap {
		b.write(i, false)
	}
	return b, nil
}

// Valve returns the last commanded state of valve index. Unknown indexes
// read as closed.
func (b *ValveBank) Valve(index int) bool {
	if index < 0 || index >= ValveCount {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states[index]
}

// SetValve opens (true) or closes (false) valve index. Unknown indexes are
// ignored.
func (b *ValveBank) SetValve(index int, state bool) {
	if index < 0 || index >= ValveCount {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states[index] = state
	b.write(index, state)
}

// States returns a copy of every valve state.
func (b *ValveBank) States() [ValveCount]bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states
}

func (b *ValveBank) write(index int, state bool) {
	if err := b.pins.Write(b.pinMap[index], state); err != nil {
		b.logger.Error("Failed to drive valve", "valve", index, "pin", b.pinMap[index], "error", err)
	}
}
