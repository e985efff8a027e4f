package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"ssnote/internal/app"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s/%s)\n",
				app.AppName, app.AppVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
