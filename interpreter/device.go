package interpreter

import "net/netip"

//go:generate go tool mockgen -source=device.go -destination=mock_device.go -package=interpreter

// OutputDriver drives a digital output pin. Writes are fire-and-forget.
type OutputDriver interface {
	Write(pin int, state bool)
}

// ValveDriver reads and commands the valves, indexed 0 to MaxValve.
type ValveDriver interface {
	Valve(index int) bool
	SetValve(index int, state bool)
}

// CycleEngine starts and stops the concentrator cycle sequence. It owns its
// own timing entirely.
type CycleEngine interface {
	Start()
	Stop()
}

// Settings is the live concentrator configuration. Cycle indexes run from 0
// to CycleCount inclusive.
type Settings interface {
	CycleCount() int
	CycleDuration(cycle int) int
	SetCycleDuration(cycle int, ms int)
	CycleValves(cycle int) uint8
	SetCycleValves(cycle int, state uint8)
	CycleValveMask() uint8
	SetCycleValveMask(mask uint8)
	// Save persists the configuration to durable storage.
	Save() error
}

// NetworkInfo reports the controller's network identity.
type NetworkInfo interface {
	LocalIP() netip.Addr
	HardwareID() string
}

// Restarter restarts the controller. Restart must not block: the restart
// takes effect after the reply has been delivered.
type Restarter interface {
	Restart()
}
