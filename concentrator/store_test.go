package concentrator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		store, err := Open(filepath.Join(t.TempDir(), "settings.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), store.Snapshot())
	})

	t.Run("LoadsFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		data := []byte(`concentrator:
  cycle_count: 1
  duration_ms: [1000, 2000]
  valve_state: [0x03, 0x0c]
  cycle_valve_mask: 0xff
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		store, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, 1, store.CycleCount())
		assert.Equal(t, 2000, store.CycleDuration(1))
		assert.Equal(t, uint8(0x0c), store.CycleValves(1))
		assert.Equal(t, uint8(0xff), store.CycleValveMask())
		assert.Equal(t, 0, store.CycleDuration(7))
	})

	t.Run("RejectsInvalidFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concentrator:\n  cycle_count: 42\n"), 0o644))

		_, err := Open(path)
		assert.Error(t, err)
	})

	t.Run("RejectsMalformedYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concentrator: [unterminated"), 0o644))

		_, err := Open(path)
		assert.Error(t, err)
	})
}

func TestStoreSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store, err := Open(path)
	require.NoError(t, err)

	store.SetCycleDuration(2, 1234)
	store.SetCycleValves(3, 0xa5)
	store.SetCycleValveMask(0x3c)
	require.NoError(t, store.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot(), reopened.Snapshot())
	assert.Equal(t, 1234, reopened.CycleDuration(2))
	assert.Equal(t, uint8(0xa5), reopened.CycleValves(3))
	assert.Equal(t, uint8(0x3c), reopened.CycleValveMask())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestStoreSaveWithoutPath(t *testing.T) {
	store, err := NewStore("", DefaultSettings())
	require.NoError(t, err)
	assert.ErrorIs(t, store.Save(), ErrNoPath)
}

func TestNewStore(t *testing.T) {
	_, err := NewStore("", Settings{CycleCount: -1})
	assert.Error(t, err)

	s := Settings{CycleCount: 2, DurationMS: []int{1, 2, 3}}
	store, err := NewStore("", s)
	require.NoError(t, err)
	assert.Len(t, s.DurationMS, 3, "caller settings must not be modified")
	assert.Equal(t, 3, store.CycleDuration(2))
}

func TestStoreIgnoresOutOfRangeCycles(t *testing.T) {
	store, err := NewStore("", DefaultSettings())
	require.NoError(t, err)
	before := store.Snapshot()

	store.SetCycleDuration(-1, 10)
	store.SetCycleDuration(MaxCycles, 10)
	store.SetCycleValves(MaxCycles, 0xff)

	assert.Equal(t, before, store.Snapshot())
	assert.Equal(t, uint8(0), store.CycleValves(-1))
}

func TestSnapshotIsIndependent(t *testing.T) {
	store, err := NewStore("", DefaultSettings())
	require.NoError(t, err)

	snap := store.Snapshot()
	snap.DurationMS[0] = 1

	assert.Equal(t, 4000, store.CycleDuration(0))
}
