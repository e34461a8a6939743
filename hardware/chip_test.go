package hardware

import (
	"errors"
	"testing"

	"github.com/warthog618/go-gpiocdev"
)

type fakeLine struct {
	values   []int
	closed   bool
	setErr   error
	closeErr error
}

func (l *fakeLine) SetValue(value int) error {
	if l.setErr != nil {
		return l.setErr
	}
	l.values = append(l.values, value)
	return nil
}

func (l *fakeLine) Close() error {
	l.closed = true
	return l.closeErr
}

type fakeChip struct {
	lines    map[int]*fakeLine
	requests []int
	initial  map[int]int
	err      error
}

func newFakeChip() *fakeChip {
	return &fakeChip{lines: make(map[int]*fakeLine), initial: make(map[int]int)}
}

func (c *fakeChip) request(chip string, offset int, opts ...gpiocdev.LineReqOption) (outputLine, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.requests = append(c.requests, offset)
	for _, opt := range opts {
		if out, ok := opt.(gpiocdev.OutputOption); ok && len(out) > 0 {
			c.initial[offset] = out[0]
		}
	}
	line := &fakeLine{}
	c.lines[offset] = line
	return line, nil
}

func newTestChipPins(chip *fakeChip) *ChipPins {
	pins := NewChipPins("")
	pins.request = chip.request
	return pins
}

func TestNewChipPinsDefaultChip(t *testing.T) {
	if pins := NewChipPins(""); pins.chip != DefaultChip {
		t.Errorf("expected chip %q, got %q", DefaultChip, pins.chip)
	}
	if pins := NewChipPins("gpiochip4"); pins.chip != "gpiochip4" {
		t.Errorf("expected chip gpiochip4, got %q", pins.chip)
	}
}

func TestChipPins_Write(t *testing.T) {
	chip := newFakeChip()
	pins := newTestChipPins(chip)

	tests := []struct {
		name string
		pin  int
		high bool
	}{
		{name: "First write requests high", pin: 17, high: true},
		{name: "Second write sets low", pin: 17, high: false},
		{name: "Third write sets high", pin: 17, high: true},
		{name: "Other pin requests low", pin: 4, high: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := pins.Write(tt.pin, tt.high); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	if len(chip.requests) != 2 || chip.requests[0] != 17 || chip.requests[1] != 4 {
		t.Fatalf("expected lines 17 and 4 requested once, got %v", chip.requests)
	}
	if chip.initial[17] != 1 || chip.initial[4] != 0 {
		t.Errorf("unexpected initial levels %v", chip.initial)
	}
	if got := chip.lines[17].values; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("expected line 17 values [0 1], got %v", got)
	}
}

func TestChipPins_WriteErrors(t *testing.T) {
	chip := newFakeChip()
	chip.err = errors.New("device busy")
	pins := newTestChipPins(chip)

	if err := pins.Write(5, true); !errors.Is(err, chip.err) {
		t.Fatalf("expected request error, got %v", err)
	}

	chip.err = nil
	if err := pins.Write(5, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chip.lines[5].setErr = errors.New("line gone")
	if err := pins.Write(5, false); !errors.Is(err, chip.lines[5].setErr) {
		t.Fatalf("expected set error, got %v", err)
	}
}

func TestChipPins_Close(t *testing.T) {
	chip := newFakeChip()
	pins := newTestChipPins(chip)

	for _, pin := range []int{2, 3} {
		if err := pins.Write(pin, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	chip.lines[3].closeErr = errors.New("release failed")

	if err := pins.Close(); !errors.Is(err, chip.lines[3].closeErr) {
		t.Fatalf("expected release error, got %v", err)
	}
	for pin, line := range chip.lines {
		if !line.closed {
			t.Errorf("line %d not released", pin)
		}
	}

	if err := pins.Close(); err != nil {
		t.Errorf("expected second close to succeed, got %v", err)
	}
	if err := pins.Write(2, false); !errors.Is(err, ErrPinsClosed) {
		t.Errorf("expected ErrPinsClosed, got %v", err)
	}
}
