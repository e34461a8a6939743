package console

import (
	"context"
	"io"
	"sync"
)

// TestTransport is a test helper that simulates a blocking transport using
// channels. Reads block until data is queued, like a real serial port, and
// every write is recorded.
type TestTransport struct {
	mu       sync.Mutex
	readChan chan []byte
	closed   bool
	written  []byte
	writes   chan struct{}
}

// NewTestTransport creates a new test transport for testing.
func NewTestTransport() *TestTransport {
	return &TestTransport{
		readChan: make(chan []byte, 10),
		writes:   make(chan struct{}, 100),
	}
}

func (t *TestTransport) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.written = append(t.written, p...)
	select {
	case t.writes <- struct{}{}:
	default:
	}
	return len(p), nil
}

func (t *TestTransport) Read(p []byte) (n int, err error) {
	data, ok := <-t.readChan
	if !ok {
		return 0, io.EOF
	}
	return copy(p, data), nil
}

func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.readChan)
	return nil
}

// SendData queues data to be returned by a single Read. It must fit the
// reader's buffer.
func (t *TestTransport) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.readChan <- []byte(data)
	}
}

// Written returns everything written so far.
func (t *TestTransport) Written() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.written)
}

// Writes signals once per Write call.
func (t *TestTransport) Writes() <-chan struct{} {
	return t.writes
}

// Dial returns t itself, so a TestTransport can serve as its own Dialer.
func (t *TestTransport) Dial(context.Context) (Transport, error) {
	return t, nil
}
