package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ssnote/internal/app"
	"ssnote/internal/logger"
	"ssnote/internal/settings"
)

// NewRootCommand creates the root command. Running it opens the editor.
func NewRootCommand() *cobra.Command {
	v := settings.New()

	rootCmd := &cobra.Command{
		Use:   "ssnote [file]",
		Short: "Stupidly simple notepad",
		Long: `ssnote is a plain-text notepad with auto-save, a recent files menu and
light/dark themes. With a file argument it opens that file, creating it if
it does not exist; otherwise it reopens the last file it worked on.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), v, args)
		},
	}

	if err := settings.RegisterFlags(rootCmd.PersistentFlags(), v); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewConfigCommand(v))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEditor(ctx context.Context, v *viper.Viper, args []string) error {
	s, err := settings.Load(v, args)
	if err != nil {
		return err
	}

	log, err := newLogger(s)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(ctx, s, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "init"})
		return fmt.Errorf("application initialization failed: %w", err)
	}

	if err := application.Run(); err != nil {
		return fmt.Errorf("application execution failed: %w", err)
	}

	log.Info("Main", "application terminated", nil)
	return nil
}

func newLogger(s settings.Settings) (logger.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(s.LogFormat, level)
}
