// Package hardware drives the controller's digital outputs and valves.
package hardware

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/warthog618/go-gpiocdev"
)

// DefaultChip is the GPIO character device driving the outputs.
const DefaultChip = "gpiochip0"

// consumer labels the lines this process holds.
const consumer = "apollo"

// ErrPinsClosed is returned by Write after Close.
var ErrPinsClosed = errors.New("gpio pins closed")

// Pins writes digital output levels.
type Pins interface {
	Write(pin int, high bool) error
}

// outputLine is the part of *gpiocdev.Line that ChipPins uses.
type outputLine interface {
	SetValue(value int) error
	Close() error
}

type requestFunc func(chip string, offset int, opts ...gpiocdev.LineReqOption) (outputLine, error)

func requestLine(chip string, offset int, opts ...gpiocdev.LineReqOption) (outputLine, error) {
	return gpiocdev.RequestLine(chip, offset, opts...)
}

// ChipPins drives GPIO lines through the character device of a GPIO chip.
// A pin is requested as an output on its first write and held until Close.
type ChipPins struct {
	chip    string
	request requestFunc

	mu     sync.Mutex
	lines  map[int]outputLine
	closed bool
}

// NewChipPins returns ChipPins on chip, for example "gpiochip0". An empty
// chip selects DefaultChip.
func NewChipPins(chip string) *ChipPins {
	if chip == "" {
		chip = DefaultChip
	}
	return &ChipPins{
		chip:    chip,
		request: requestLine,
		lines:   make(map[int]outputLine),
	}
}

// Write sets the level of pin, requesting the line on first use.
func (p *ChipPins) Write(pin int, high bool) error {
	value := 0
	if high {
		value = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPinsClosed
	}

	if line, ok := p.lines[pin]; ok {
		if err := line.SetValue(value); err != nil {
			return fmt.Errorf("set %s line %d: %w", p.chip, pin, err)
		}
		return nil
	}

	line, err := p.request(p.chip, pin, gpiocdev.AsOutput(value), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return fmt.Errorf("request %s line %d: %w", p.chip, pin, err)
	}
	p.lines[pin] = line
	return nil
}

// Close releases every requested line. The lines keep their last level
// until another consumer requests them.
func (p *ChipPins) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	for pin, line := range p.lines {
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release %s line %d: %w", p.chip, pin, err))
		}
		delete(p.lines, pin)
	}
	return errors.Join(errs...)
}

// MemoryPins keeps pin levels in memory. It stands in for real hardware
// when simulating and in tests.
type MemoryPins struct {
	mu     sync.Mutex
	levels map[int]bool
}

// NewMemoryPins returns MemoryPins with every pin low.
func NewMemoryPins() *MemoryPins {
	return &MemoryPins{levels: make(map[int]bool)}
}

// Write records the level of pin.
func (p *MemoryPins) Write(pin int, high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.levels[pin] = high
	return nil
}

// Level returns the last level written to pin and whether it was written.
func (p *MemoryPins) Level(pin int) (high bool, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	high, ok = p.levels[pin]
	return high, ok
}

// PinOutput adapts Pins to a fire-and-forget output driver. Write failures
// are logged and otherwise dropped.
type PinOutput struct {
	Pins   Pins
	Logger *slog.Logger
}

// Write sets the level of pin.
func (o PinOutput) Write(pin int, state bool) {
	if err := o.Pins.Write(pin, state); err != nil {
		logger := o.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Failed to write output", "pin", pin, "state", state, "error", err)
	}
}
