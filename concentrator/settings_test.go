package concentrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, Validate(&s))
	assert.Equal(t, 3, s.CycleCount)
	assert.Len(t, s.DurationMS, MaxCycles)
	assert.Len(t, s.ValveState, MaxCycles)
	assert.Equal(t, 0x0f, s.CycleValveMask)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *Settings)
		wantErr bool
	}{
		{name: "defaults", modify: func(s *Settings) {}},
		{name: "zero cycle count", modify: func(s *Settings) { s.CycleCount = 0 }},
		{name: "max cycle count", modify: func(s *Settings) { s.CycleCount = MaxCycles - 1 }},
		{name: "negative duration kept", modify: func(s *Settings) { s.DurationMS[0] = -5 }},
		{name: "negative cycle count", modify: func(s *Settings) { s.CycleCount = -1 }, wantErr: true},
		{name: "cycle count too large", modify: func(s *Settings) { s.CycleCount = MaxCycles }, wantErr: true},
		{name: "too many durations", modify: func(s *Settings) { s.DurationMS = make([]int, MaxCycles+1) }, wantErr: true},
		{name: "too many valve states", modify: func(s *Settings) { s.ValveState = make([]int, MaxCycles+1) }, wantErr: true},
		{name: "valve state over 8 bits", modify: func(s *Settings) { s.ValveState[2] = 0x100 }, wantErr: true},
		{name: "negative valve state", modify: func(s *Settings) { s.ValveState[2] = -1 }, wantErr: true},
		{name: "mask over 8 bits", modify: func(s *Settings) { s.CycleValveMask = 300 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := Validate(&s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	s := Settings{CycleCount: 1, DurationMS: []int{100}}
	require.NoError(t, Validate(&s))
	assert.Len(t, s.DurationMS, 1)
	assert.Nil(t, s.ValveState)
}

func TestNormalize(t *testing.T) {
	s := Settings{CycleCount: 1, DurationMS: []int{100, 200}, ValveState: []int{1}}
	Normalize(&s)

	assert.Equal(t, []int{100, 200, 0, 0, 0, 0, 0, 0}, s.DurationMS)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0}, s.ValveState)

	// nil is tolerated
	Normalize(nil)
}

func TestClone(t *testing.T) {
	s := DefaultSettings()
	c := s.clone()
	c.DurationMS[0] = 1
	c.ValveState[0] = 1

	assert.Equal(t, 4000, s.DurationMS[0])
	assert.Equal(t, 0x09, s.ValveState[0])
}
