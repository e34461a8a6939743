package cli_test

import (
	"errors"
	"testing"

	"i4.energy/across/apollo/cli"
)

func TestTryRead(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		input    string
		expected int
	}{
		{name: "Exact match", keyword: "valve", input: "valve", expected: 5},
		{name: "Match with argument", keyword: "valve", input: "valve 3", expected: 6},
		{name: "Upper case input", keyword: "valve", input: "VALVE 3", expected: 6},
		{name: "Mixed case keyword", keyword: "LED", input: "led on", expected: 4},
		{name: "Trailing white space run", keyword: "led", input: "led \t  on", expected: 7},
		{name: "Only trailing white space", keyword: "save", input: "save   ", expected: 7},
		{name: "No separator after keyword", keyword: "valve", input: "valve1", expected: 0},
		{name: "Longer word", keyword: "valve", input: "valves", expected: 0},
		{name: "Different word", keyword: "valve", input: "value 1", expected: 0},
		{name: "Input shorter than keyword", keyword: "concentrator", input: "conc", expected: 0},
		{name: "Empty input", keyword: "ip", input: "", expected: 0},
		{name: "Leading white space", keyword: "ip", input: " ip", expected: 0},
		{name: "Prefix keyword vs longer verb", keyword: "cycle-valves", input: "cycle-valve-mask 3", expected: 0},
		{name: "Question mark", keyword: "?", input: "?", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cli.TryRead(tt.keyword, tt.input); got != tt.expected {
				t.Errorf("TryRead(%q, %q) = %d, expected %d", tt.keyword, tt.input, got, tt.expected)
			}
		})
	}
}

func TestReadInteger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		value    int
		consumed int
		err      error
	}{
		{name: "Single digit", input: "7", value: 7, consumed: 1},
		{name: "Multiple digits", input: "1500", value: 1500, consumed: 4},
		{name: "Zero", input: "0", value: 0, consumed: 1},
		{name: "Negative", input: "-42", value: -42, consumed: 3},
		{name: "Followed by argument", input: "3 on", value: 3, consumed: 2},
		{name: "Trailing white space run", input: "12 \t 1", value: 12, consumed: 5},
		{name: "Leading zeros", input: "007", value: 7, consumed: 3},
		{name: "Max int32", input: "2147483647", value: 2147483647, consumed: 10},
		{name: "Min int32", input: "-2147483648", value: -2147483648, consumed: 11},
		{name: "Overflow", input: "2147483648", err: cli.ErrInvalidInteger},
		{name: "Large overflow", input: "99999999999999999999999", err: cli.ErrInvalidInteger},
		{name: "Negative overflow", input: "-2147483649", err: cli.ErrInvalidInteger},
		{name: "Letters", input: "abc", err: cli.ErrInvalidInteger},
		{name: "Trailing letter", input: "12a", err: cli.ErrInvalidInteger},
		{name: "Plus sign", input: "+5", err: cli.ErrInvalidInteger},
		{name: "Minus inside", input: "5-3", err: cli.ErrInvalidInteger},
		{name: "Double minus", input: "--5", err: cli.ErrInvalidInteger},
		{name: "Lone minus", input: "-", err: cli.ErrInvalidInteger},
		{name: "Empty", input: "", err: cli.ErrInvalidInteger},
		{name: "Hex notation", input: "0x10", err: cli.ErrInvalidInteger},
		{name: "Separator", input: "1_000", err: cli.ErrInvalidInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, n, err := cli.ReadInteger(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ReadInteger(%q) error = %v, expected %v", tt.input, err, tt.err)
			}
			if tt.err != nil {
				if n != 0 {
					t.Errorf("expected 0 bytes consumed on failure, got %d", n)
				}
				return
			}
			if value != tt.value {
				t.Errorf("ReadInteger(%q) value = %d, expected %d", tt.input, value, tt.value)
			}
			if n != tt.consumed {
				t.Errorf("ReadInteger(%q) consumed = %d, expected %d", tt.input, n, tt.consumed)
			}
		})
	}
}

func TestReadBool(t *testing.T) {
	tests := []struct {
		input    string
		value    bool
		consumed int
	}{
		{input: "0", value: false, consumed: 1},
		{input: "false", value: false, consumed: 5},
		{input: "FALSE", value: false, consumed: 5},
		{input: "off", value: false, consumed: 3},
		{input: "Off", value: false, consumed: 3},
		{input: "1", value: true, consumed: 1},
		{input: "true", value: true, consumed: 4},
		{input: "TrUe", value: true, consumed: 4},
		{input: "on", value: true, consumed: 2},
		{input: "ON", value: true, consumed: 2},
		{input: "on  ", value: true, consumed: 4},
		{input: "off extra", value: false, consumed: 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, n, err := cli.ReadBool(tt.input)
			if err != nil {
				t.Fatalf("ReadBool(%q) unexpected error: %v", tt.input, err)
			}
			if value != tt.value {
				t.Errorf("ReadBool(%q) = %v, expected %v", tt.input, value, tt.value)
			}
			if n != tt.consumed {
				t.Errorf("ReadBool(%q) consumed = %d, expected %d", tt.input, n, tt.consumed)
			}
		})
	}
}

func TestReadBoolInvalid(t *testing.T) {
	for _, input := range []string{"", "2", "yes", "onn", "offline", "10", "truth", " on"} {
		t.Run(input, func(t *testing.T) {
			_, n, err := cli.ReadBool(input)
			if !errors.Is(err, cli.ErrInvalidBoolean) {
				t.Errorf("ReadBool(%q) error = %v, expected ErrInvalidBoolean", input, err)
			}
			if n != 0 {
				t.Errorf("ReadBool(%q) consumed = %d, expected 0", input, n)
			}
		})
	}
}
