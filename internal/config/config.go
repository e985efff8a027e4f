package config

import (
	"slices"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// MaxRecentFiles bounds Config.RecentFiles.
	MaxRecentFiles = 5
)

// Config is the persisted user configuration.
type Config struct {
	Theme       *string  `json:"theme,omitempty"`
	Wrap        bool     `json:"wrap"`
	LastFile    *string  `json:"last_file,omitempty"`
	// RecentFiles is never nil after Load or Default; an empty list is []string{}.
	RecentFiles []string `json:"recent_files"`
}

// Default returns the configuration used when nothing has been saved yet.
func Default() Config {
	return Config{
		Wrap:        true,
		RecentFiles: []string{},
	}
}

// ThemeOverride returns the user's theme choice, or "" when the host decides.
func (c *Config) ThemeOverride() string {
	if c.Theme == nil {
		return ""
	}
	return *c.Theme
}

func (c *Config) SetThemeOverride(name string) {
	if name == "" {
		c.Theme = nil
		return
	}
	c.Theme = &name
}

func (c *Config) LastFilePath() string {
	if c.LastFile == nil {
		return ""
	}
	return *c.LastFile
}

func (c *Config) SetLastFile(path string) {
	if path == "" {
		c.LastFile = nil
		return
	}
	c.LastFile = &path
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	if c.Theme != nil {
		theme := *c.Theme
		out.Theme = &theme
	}
	if c.LastFile != nil {
		last := *c.LastFile
		out.LastFile = &last
	}
	out.RecentFiles = slices.Clone(c.RecentFiles)
	if out.RecentFiles == nil {
		out.RecentFiles = []string{}
	}
	return out
}

// normalize enforces the recent list invariants: no blanks, no duplicates,
// at most MaxRecentFiles entries. An unknown theme name is dropped.
func (c *Config) normalize() {
	seen := make(map[string]struct{}, len(c.RecentFiles))
	cleaned := make([]string, 0, MaxRecentFiles)
	for _, path := range c.RecentFiles {
		if path == "" {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		cleaned = append(cleaned, path)
		if len(cleaned) == MaxRecentFiles {
			break
		}
	}
	c.RecentFiles = cleaned

	if c.Theme != nil && *c.Theme != ThemeLight && *c.Theme != ThemeDark {
		c.Theme = nil
	}
	if c.LastFile != nil && *c.LastFile == "" {
		c.LastFile = nil
	}
}
