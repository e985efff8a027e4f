package recent

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssnote/internal/config"
	"ssnote/internal/logger"
)

const configPath = "/cfg/config.json"

func newTracker(t *testing.T) (*Tracker, *config.Config, *config.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store := config.NewStore(fs, configPath, logger.Nop())
	cfg := config.Default()
	return NewTracker(fs, store, &cfg, logger.Nop()), &cfg, store, fs
}

func TestRecordEvictsOldest(t *testing.T) {
	tracker, _, _, _ := newTracker(t)

	for i := 1; i <= 6; i++ {
		tracker.Record(fmt.Sprintf("P%d", i))
	}

	assert.Equal(t, []string{"P6", "P5", "P4", "P3", "P2"}, tracker.Paths())
}

func TestRecordExistingMovesToFront(t *testing.T) {
	tracker, _, _, _ := newTracker(t)
	for _, p := range []string{"a", "b", "c"} {
		tracker.Record(p)
	}

	tracker.Record("a")

	assert.Equal(t, []string{"a", "c", "b"}, tracker.Paths())
}

func TestRecordExistingAtCapacity(t *testing.T) {
	tracker, _, _, _ := newTracker(t)
	for _, p := range []string{"1", "2", "3", "4", "5"} {
		tracker.Record(p)
	}

	tracker.Record("3")

	assert.Equal(t, []string{"3", "5", "4", "2", "1"}, tracker.Paths())
}

func TestRecordIgnoresEmptyPath(t *testing.T) {
	tracker, _, _, _ := newTracker(t)
	tracker.Record("")
	assert.Empty(t, tracker.Paths())
}

func TestRefreshDropsMissingAndPersists(t *testing.T) {
	tracker, cfg, store, fs := newTracker(t)
	require.NoError(t, afero.WriteFile(fs, "/notes/keep.txt", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/notes/also.txt", []byte("y"), 0o644))
	cfg.RecentFiles = []string{"/notes/keep.txt", "/notes/gone.txt", "/notes/also.txt"}

	got := tracker.Refresh()

	assert.Equal(t, []string{"/notes/keep.txt", "/notes/also.txt"}, got)
	assert.Equal(t, got, cfg.RecentFiles)
	assert.Equal(t, got, store.Load().RecentFiles)
}

func TestPathsReturnsCopy(t *testing.T) {
	tracker, _, _, _ := newTracker(t)
	tracker.Record("a")

	paths := tracker.Paths()
	paths[0] = "mutated"

	assert.Equal(t, []string{"a"}, tracker.Paths())
}

func TestPush(t *testing.T) {
	assert.Equal(t, []string{"x"}, Push(nil, "x", 5))
	assert.Equal(t, []string{"b", "a"}, Push([]string{"a", "b"}, "b", 5))
	assert.Equal(t, []string{"z", "a"}, Push([]string{"a", "b", "c"}, "z", 2))
}
