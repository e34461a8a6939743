package cli

// LineBuffer accumulates command bytes arriving from a byte stream until a
// CR or LF terminates the line. It holds at most its capacity; a line that
// grows past it is dropped as a whole and reported with ErrLineTooLong.
type LineBuffer struct {
	buf      []byte
	overflow bool
}

// NewLineBuffer returns a buffer holding up to capacity bytes per line.
// A non-positive capacity selects DefaultLineCapacity.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity <= 0 {
		capacity = DefaultLineCapacity
	}
	return &LineBuffer{buf: make([]byte, 0, capacity)}
}

// Push appends c to the pending line. When c is a terminator, Push returns
// the completed line (without terminator) and done set. A CRLF pair yields
// an extra empty line which callers are expected to skip.
//
// The returned slice aliases the buffer and is only valid until the next
// call to Push.
func (b *LineBuffer) Push(c byte) (line []byte, done bool, err error) {
	if IsTerminator(c) {
		line = b.buf
		if b.overflow {
			line, err = nil, ErrLineTooLong
		}
		b.buf = b.buf[:0]
		b.overflow = false
		return line, true, err
	}

	if len(b.buf) == cap(b.buf) {
		b.overflow = true
		return nil, false, nil
	}
	b.buf = append(b.buf, c)
	return nil, false, nil
}

// Len returns the number of bytes pending in the current line.
func (b *LineBuffer) Len() int {
	return len(b.buf)
}

// Cap returns the line capacity.
func (b *LineBuffer) Cap() int {
	return cap(b.buf)
}

// Reset drops the pending line.
func (b *LineBuffer) Reset() {
	b.buf = b.buf[:0]
	b.overflow = false
}

// NormalizeLine frames a command that arrived as a whole message the way a
// LineBuffer frames a byte stream. Empty lines are skipped and the first
// non-empty line is returned without its terminator; anything after it is
// dropped. A line longer than capacity yields ErrLineTooLong. Input without
// a non-empty line yields "".
func NormalizeLine(s string, capacity int) (string, error) {
	lb := NewLineBuffer(capacity)
	for i := 0; i <= len(s); i++ {
		c := byte(LF)
		if i < len(s) {
			c = s[i]
		}
		line, done, err := lb.Push(c)
		switch {
		case !done:
		case err != nil:
			return "", err
		case len(line) > 0:
			return string(line), nil
		}
	}
	return "", nil
}
