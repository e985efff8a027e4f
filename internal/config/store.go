package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"ssnote/internal/logger"
)

const (
	appDirName     = "ssnote"
	configFileName = "config.json"
)

// Store reads and writes the JSON configuration file.
type Store struct {
	fs     afero.Fs
	path   string
	logger logger.Logger
}

func NewStore(fs afero.Fs, path string, log logger.Logger) *Store {
	return &Store{fs: fs, path: path, logger: log}
}

// DefaultPath returns <user config dir>/ssnote/config.json, falling back to
// config.json in the working directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(dir, appDirName, configFileName)
}

func (s *Store) Path() string {
	return s.path
}

// Load never fails: a missing or unreadable file yields Default().
func (s *Store) Load() Config {
	cfg := Default()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warning("ConfigStore", "config unreadable, using defaults", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warning("ConfigStore", "config malformed, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return Default()
	}

	cfg.normalize()
	s.logger.Debug("ConfigStore", "config loaded", map[string]interface{}{
		"path":         s.path,
		"recent_files": len(cfg.RecentFiles),
	})
	return cfg
}

// Save rewrites the whole file.
func (s *Store) Save(cfg Config) error {
	cfg = cfg.Clone()
	cfg.normalize()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", s.path, err)
	}
	return nil
}
