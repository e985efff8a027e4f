package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ssnote/internal/config"
	"ssnote/internal/logger"
	"ssnote/internal/recent"
	"ssnote/internal/settings"
)

// NewConfigCommand groups commands that inspect the editor's JSON config
// without opening a window.
func NewConfigCommand(v *viper.Viper) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the editor configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Load(v, nil)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.ConfigPath)
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective config, with defaults filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(v)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(store.Load(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "prune-recent",
		Short: "Drop recent files that no longer exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(v)
			if err != nil {
				return err
			}
			cfg := store.Load()
			tracker := recent.NewTracker(afero.NewOsFs(), store, &cfg, logger.Nop())
			for _, path := range tracker.Refresh() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	})

	return configCmd
}

func openStore(v *viper.Viper) (*config.Store, error) {
	s, err := settings.Load(v, nil)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(s)
	if err != nil {
		return nil, err
	}
	return config.NewStore(afero.NewOsFs(), s.ConfigPath, log), nil
}
