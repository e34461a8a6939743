// Package concentrator holds the concentrator cycle configuration, its
// persistent store and the engine that steps the valves through the cycles.
package concentrator

import (
	"fmt"
)

// MaxCycles bounds the number of cycles in a sequence. CycleCount is the
// highest cycle index, so it must stay below MaxCycles.
const MaxCycles = 8

// File is the on-disk layout of the settings file.
type File struct {
	Concentrator Settings `yaml:"concentrator"`
}

// Settings describes the cycle sequence.
//
// Masks are 8-bit fields: bit i stands for valve i.
type Settings struct {
	// CycleCount is the highest cycle index; cycles 0..CycleCount run.
	CycleCount int `yaml:"cycle_count"`
	// DurationMS is the duration of each cycle in milliseconds.
	DurationMS []int `yaml:"duration_ms"`
	// ValveState is the valve bit-mask applied during each cycle.
	ValveState []int `yaml:"valve_state"`
	// CycleValveMask selects the valves that switch at all while cycling.
	CycleValveMask int `yaml:"cycle_valve_mask"`
}

// DefaultSettings returns the factory sequence: a four phase pressure swing
// over valves 0 to 3.
func DefaultSettings() Settings {
	s := Settings{
		CycleCount:     3,
		DurationMS:     []int{4000, 750, 4000, 750},
		ValveState:     []int{0x09, 0x0f, 0x06, 0x0f},
		CycleValveMask: 0x0f,
	}
	Normalize(&s)
	return s
}

// Validate checks settings correctness.
// It performs declarative validation only.
// It MUST NOT mutate settings.
func Validate(s *Settings) error {
	if s.CycleCount < 0 || s.CycleCount >= MaxCycles {
		return fmt.Errorf("cycle_count %d out of range [0, %d]", s.CycleCount, MaxCycles-1)
	}
	if len(s.DurationMS) > MaxCycles {
		return fmt.Errorf("duration_ms lists %d cycles, at most %d allowed", len(s.DurationMS), MaxCycles)
	}
	if len(s.ValveState) > MaxCycles {
		return fmt.Errorf("valve_state lists %d cycles, at most %d allowed", len(s.ValveState), MaxCycles)
	}
	for i, v := range s.ValveState {
		if v < 0 || v > 0xff {
			return fmt.Errorf("valve_state[%d] = %d is not an 8-bit mask", i, v)
		}
	}
	if s.CycleValveMask < 0 || s.CycleValveMask > 0xff {
		return fmt.Errorf("cycle_valve_mask %d is not an 8-bit mask", s.CycleValveMask)
	}
	return nil
}

// Normalize pads the per-cycle lists to MaxCycles entries so every index up
// to MaxCycles-1 is addressable.
// It MUST be called only after Validate().
func Normalize(s *Settings) {
	if s == nil {
		return
	}
	for len(s.DurationMS) < MaxCycles {
		s.DurationMS = append(s.DurationMS, 0)
	}
	for len(s.ValveState) < MaxCycles {
		s.ValveState = append(s.ValveState, 0)
	}
}

// clone returns a deep copy of s.
func (s Settings) clone() Settings {
	s.DurationMS = append([]int(nil), s.DurationMS...)
	s.ValveState = append([]int(nil), s.ValveState...)
	return s
}
