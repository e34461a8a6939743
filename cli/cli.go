package cli

const (
	// Terminal Control
	CR             = '\r'
	LF             = '\n'
	LineTerminator = "\r\n"

	// DefaultLineCapacity bounds a single command line, terminator excluded.
	DefaultLineCapacity = 128

	// Replies
	ReplyOK = "OK"
)

// HelpText is returned verbatim by the help and ? commands. It matches the
// firmware text word for word, spelling included.
const HelpText = "" +
	"led <0|1|on|off|true|false>            Set LED state\r\n" +
	"valve <n> [0|1|on|off|true|false]      Set or get valve state\r\n" +
	"concentrator <0|1|on|off|true|false>   Enable or disable concentrator cycle\r\n" +
	"cycle-duration <cycle> [miliseconds]   Set or get the duration of a cycle\r\n" +
	"cycle-valves <cycle> [valves]          Set or get cycle valve state bit-map\r\n" +
	"cycle-valve-mask <mask>                Set or get bit-masks of which valves should switch during cycles\r\n" +
	"save                                   Save current configuration to FLASH\r\n" +
	"ip                                     Get local-IP address\r\n" +
	"mac                                    Get MAC address\r\n" +
	"time                                   Get current time\r\n" +
	"restart                                Restart the controller\r\n" +
	"help                                   Print help\r\n" +
	"?                                      Print help\r\n" +
	"\r\n"

// IsWhiteSpace reports whether c separates tokens.
func IsWhiteSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsTerminator reports whether c ends a command line.
func IsTerminator(c byte) bool {
	return c == CR || c == LF
}
