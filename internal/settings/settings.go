// Package settings holds runtime options taken from flags and SSNOTE_*
// environment variables.
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ssnote/internal/autosave"
	"ssnote/internal/config"
	"ssnote/internal/logger"
)

const (
	EnvPrefix = "SSNOTE"

	KeyConfig           = "config"
	KeyLogLevel         = "log-level"
	KeyLogFormat        = "log-format"
	KeyAutoSaveInterval = "autosave-interval"
	KeyStatusInterval   = "status-interval"
	KeyNoStartupPrompt  = "no-startup-prompt"

	DefaultStatusInterval = time.Second
)

type Settings struct {
	ConfigPath       string
	LogLevel         string
	LogFormat        logger.Format
	AutoSaveInterval time.Duration
	StatusInterval   time.Duration
	StartupPrompt    bool

	// OpenPath is the file named on the command line, if any.
	OpenPath string
}

// New returns a viper instance reading SSNOTE_* variables, with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfig, config.DefaultPath())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, string(logger.FormatConsole))
	v.SetDefault(KeyAutoSaveInterval, autosave.DefaultInterval)
	v.SetDefault(KeyStatusInterval, DefaultStatusInterval)
	v.SetDefault(KeyNoStartupPrompt, false)
	return v
}

// RegisterFlags declares the command-line flags and binds them to v.
func RegisterFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.String(KeyConfig, config.DefaultPath(), "path to the JSON config file")
	flags.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(KeyLogFormat, string(logger.FormatConsole), "log format (console, json)")
	flags.Duration(KeyAutoSaveInterval, autosave.DefaultInterval, "time between auto-save ticks")
	flags.Duration(KeyStatusInterval, DefaultStatusInterval, "time between status bar refreshes")
	flags.Bool(KeyNoStartupPrompt, false, "do not ask for a file when starting without one")

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Load reads and validates the settings.
func Load(v *viper.Viper, args []string) (Settings, error) {
	s := Settings{
		ConfigPath:       v.GetString(KeyConfig),
		LogLevel:         v.GetString(KeyLogLevel),
		LogFormat:        logger.Format(strings.ToLower(v.GetString(KeyLogFormat))),
		AutoSaveInterval: v.GetDuration(KeyAutoSaveInterval),
		StatusInterval:   v.GetDuration(KeyStatusInterval),
		StartupPrompt:    !v.GetBool(KeyNoStartupPrompt),
	}
	if len(args) > 0 {
		s.OpenPath = args[0]
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.ConfigPath == "" {
		return fmt.Errorf("%s must not be empty", KeyConfig)
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.LogFormat {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("unknown %s %q", KeyLogFormat, s.LogFormat)
	}
	if s.AutoSaveInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyAutoSaveInterval, s.AutoSaveInterval)
	}
	if s.StatusInterval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyStatusInterval, s.StatusInterval)
	}
	return nil
}
