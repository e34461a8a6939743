package concentrator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNoPath is returned by Save on a store that is not backed by a file.
var ErrNoPath = errors.New("settings store has no file path")

// Store is the live, mutable concentrator configuration backed by a YAML
// file. It is safe for concurrent use by the command interpreters and the
// cycle engine.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings Settings
}

// Open loads the settings file at path. A missing file yields the default
// settings; the file is created on the first Save.
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Store{path: path, settings: DefaultSettings()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	settings, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Store{path: path, settings: settings}, nil
}

// NewStore returns a store holding settings. An empty path keeps the store
// in memory only.
func NewStore(path string, settings Settings) (*Store, error) {
	if err := Validate(&settings); err != nil {
		return nil, err
	}
	settings = settings.clone()
	Normalize(&settings)
	return &Store{path: path, settings: settings}, nil
}

// Decode parses, validates and normalizes a settings file.
func Decode(data []byte) (Settings, error) {
	f := File{Concentrator: DefaultSettings()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := Validate(&f.Concentrator); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	Normalize(&f.Concentrator)
	return f.Concentrator, nil
}

// Save writes the current settings to the store's file. The file is
// replaced atomically.
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}

	s.mu.RLock()
	data, err := yaml.Marshal(File{Concentrator: s.settings})
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.clone()
}

// CycleCount returns the highest valid cycle index.
func (s *Store) CycleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.CycleCount
}

// CycleDuration returns the duration of cycle in milliseconds.
func (s *Store) CycleDuration(cycle int) int {
	if !validCycle(cycle) {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.DurationMS[cycle]
}

// SetCycleDuration sets the duration of cycle in milliseconds.
func (s *Store) SetCycleDuration(cycle int, ms int) {
	if !validCycle(cycle) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DurationMS[cycle] = ms
}

// CycleValves returns the valve bit-mask of cycle.
func (s *Store) CycleValves(cycle int) uint8 {
	if !validCycle(cycle) {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint8(s.settings.ValveState[cycle])
}

// SetCycleValves sets the valve bit-mask of cycle.
func (s *Store) SetCycleValves(cycle int, state uint8) {
	if !validCycle(cycle) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ValveState[cycle] = int(state)
}

// CycleValveMask returns the mask of valves that switch while cycling.
func (s *Store) CycleValveMask() uint8 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint8(s.settings.CycleValveMask)
}

// SetCycleValveMask sets the mask of valves that switch while cycling.
func (s *Store) SetCycleValveMask(mask uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.CycleValveMask = int(mask)
}

func validCycle(cycle int) bool {
	return cycle >= 0 && cycle < MaxCycles
}
