package cli

import "math"

// TryRead matches keyword against the start of input, ignoring ASCII case.
// The keyword must be followed by white space or the end of input, so "valve"
// does not match "valve1" or "valves". On success it returns the number of
// bytes consumed including the white space that follows; otherwise 0.
//
// A failed match is not an error: callers try the next candidate.
func TryRead(keyword, input string) int {
	if len(input) < len(keyword) {
		return 0
	}
	for n := 0; n < len(keyword); n++ {
		if lower(input[n]) != lower(keyword[n]) {
			return 0
		}
	}
	n := len(keyword)
	if n < len(input) && !IsWhiteSpace(input[n]) {
		return 0
	}
	return skipWhiteSpace(input, n)
}

// ReadInteger parses a decimal integer token of the form -?[0-9]+ that ends
// at white space or the end of input. Values outside the 32-bit signed range
// are rejected. It returns the value and the number of bytes consumed,
// including trailing white space.
func ReadInteger(input string) (value int, n int, err error) {
	var (
		acc      int64
		negative bool
		digits   int
	)
	for n < len(input) && !IsWhiteSpace(input[n]) {
		c := input[n]
		if n == 0 && c == '-' {
			negative = true
			n++
			continue
		}
		if c < '0' || c > '9' {
			return 0, 0, ErrInvalidInteger
		}
		acc = acc*10 + int64(c-'0')
		if acc > math.MaxInt32+1 {
			return 0, 0, ErrInvalidInteger
		}
		digits++
		n++
	}
	if digits == 0 {
		return 0, 0, ErrInvalidInteger
	}
	if negative {
		acc = -acc
	}
	if acc > math.MaxInt32 {
		return 0, 0, ErrInvalidInteger
	}
	return int(acc), skipWhiteSpace(input, n), nil
}

// boolWords is tried in order; the first keyword match wins.
var boolWords = []struct {
	word  string
	value bool
}{
	{"0", false},
	{"false", false},
	{"off", false},
	{"1", true},
	{"true", true},
	{"on", true},
}

// ReadBool parses one of 0, false, off, 1, true, on in any letter case.
func ReadBool(input string) (value bool, n int, err error) {
	for _, w := range boolWords {
		if m := TryRead(w.word, input); m > 0 {
			return w.value, m, nil
		}
	}
	return false, 0, ErrInvalidBoolean
}

func skipWhiteSpace(input string, n int) int {
	for n < len(input) && IsWhiteSpace(input[n]) {
		n++
	}
	return n
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
