package cmd

import (
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"

	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the version of each platform service",
		Long: `Queries every platform service. A service that does not answer is
listed as "Not started" rather than failing the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.Status()
			})
		},
	}
}
