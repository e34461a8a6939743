package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.bug.st/serial"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport.go -package=console

// Transport is an established, bidirectional byte stream to an operator
// terminal, typically a serial line. Reads block until input is available.
type Transport interface {
	io.ReadWriteCloser
}

// Dialer opens a Transport.
//
// Dialer abstracts how the line is opened (serial port, pseudo terminal or
// test double) and is only used while constructing a Console.
type Dialer interface {
	// Dial returns a connected Transport. It should respect cancellation of
	// ctx.
	Dial(ctx context.Context) (Transport, error)
}

// DefaultMode is the line setting used when SerialDialer.Mode is nil.
var DefaultMode = serial.Mode{
	BaudRate: 115200,
	Parity:   serial.NoParity,
	DataBits: 8,
	StopBits: serial.OneStopBit,
}

// SerialDialer opens a serial port using go.bug.st/serial.
type SerialDialer struct {
	// PortName is the device path, for example /dev/ttyUSB0.
	PortName string
	// Mode overrides DefaultMode.
	Mode *serial.Mode
}

// Dial opens the serial port.
func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if d.PortName == "" {
		return nil, errors.New("console: serial port name is required")
	}
	if ctx == nil {
		return nil, errors.New("console: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		m := DefaultMode
		mode = &m
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("console: open %s: %w", d.PortName, err)
	}
	return port, nil
}
