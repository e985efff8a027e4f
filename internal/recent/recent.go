// Package recent keeps the most-recently-used file list stored in the config.
package recent

import (
	"slices"

	"github.com/spf13/afero"

	"ssnote/internal/config"
	"ssnote/internal/logger"
)

// Push moves path to the front of list and truncates to limit entries.
func Push(list []string, path string, limit int) []string {
	out := make([]string, 0, limit)
	out = append(out, path)
	for _, p := range list {
		if p == path {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, p)
	}
	return out
}

type Tracker struct {
	fs     afero.Fs
	store  *config.Store
	cfg    *config.Config
	logger logger.Logger
}

func NewTracker(fs afero.Fs, store *config.Store, cfg *config.Config, log logger.Logger) *Tracker {
	return &Tracker{fs: fs, store: store, cfg: cfg, logger: log}
}

// Record puts path at the front of the list. The caller persists the config.
func (t *Tracker) Record(path string) {
	if path == "" {
		return
	}
	t.cfg.RecentFiles = Push(t.cfg.RecentFiles, path, config.MaxRecentFiles)
}

// Refresh drops entries whose file is gone, persists the result and returns
// the surviving paths in display order.
func (t *Tracker) Refresh() []string {
	cleaned := make([]string, 0, len(t.cfg.RecentFiles))
	for _, path := range t.cfg.RecentFiles {
		exists, err := afero.Exists(t.fs, path)
		if err != nil || !exists {
			t.logger.Debug("RecentFiles", "dropping missing entry", map[string]interface{}{
				"path": path,
			})
			continue
		}
		cleaned = append(cleaned, path)
	}
	t.cfg.RecentFiles = cleaned

	if err := t.store.Save(*t.cfg); err != nil {
		t.logger.Warning("RecentFiles", "could not persist recent files", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return t.Paths()
}

func (t *Tracker) Paths() []string {
	return slices.Clone(t.cfg.RecentFiles)
}
