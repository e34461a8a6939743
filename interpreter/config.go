package interpreter

import (
	"log/slog"
	"time"
)

// Config wires an Interpreter to the device it controls. The interpreter
// references these collaborators but does not own them.
type Config struct {
	Outputs   OutputDriver
	LEDPin    int
	Valves    ValveDriver
	Engine    CycleEngine
	Settings  Settings
	Network   NetworkInfo
	Restarter Restarter
	// Now returns the time reported by the time command. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

func (c *Config) validate() error {
	switch {
	case c.Outputs == nil:
		return ErrNoOutputs
	case c.Valves == nil:
		return ErrNoValves
	case c.Engine == nil:
		return ErrNoEngine
	case c.Settings == nil:
		return ErrNoSettings
	case c.Network == nil:
		return ErrNoNetwork
	case c.Restarter == nil:
		return ErrNoRestarter
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
