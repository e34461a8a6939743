package cli_test

import (
	"strings"
	"testing"

	"i4.energy/across/apollo/cli"
)

func TestHelpText(t *testing.T) {
	if !strings.HasSuffix(cli.HelpText, "Print help\r\n\r\n") {
		t.Error("expected help to end with a blank line")
	}

	lines := strings.Split(strings.TrimSuffix(cli.HelpText, "\r\n\r\n"), "\r\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 entries, got %d", len(lines))
	}

	for _, want := range []string{
		"cycle-duration <cycle> [miliseconds]",
		"cycle-valve-mask <mask>",
		"Set or get bit-masks of which valves should switch during cycles",
		"Save current configuration to FLASH",
		"Get local-IP address",
	} {
		if !strings.Contains(cli.HelpText, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}

	for _, line := range lines {
		if len(line) < 40 || line[38] != ' ' || line[39] == ' ' {
			t.Errorf("description not aligned at column 40: %q", line)
		}
	}
}
