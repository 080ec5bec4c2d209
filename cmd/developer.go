package cmd

import (
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"

	"github.com/spf13/cobra"
)

// developerCmd builds a command reading the developer account of --id, or of
// the connected user when the flag is omitted.
func developerCmd(a *app, use, short string, build func(developerID string) cli.Command) *cobra.Command {
	var id string
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts.ID = id
			return a.run(cmd, opts, func(s *preferences.Session) cli.Command {
				return build(developerID(opts, s))
			})
		},
	}
	c.Flags().StringVar(&id, "id", "", "Developer id (defaults to the connected user)")
	return c
}

func developerID(opts cli.Options, s *preferences.Session) string {
	if opts.ID != "" {
		return opts.ID
	}
	return s.User.ID()
}

func newPaymentsCmd(a *app) *cobra.Command {
	return developerCmd(a, "payments", "Show the payment account of a developer", rainbow.Payments)
}

func newMethodsCmd(a *app) *cobra.Command {
	return developerCmd(a, "methods", "List the payment methods of a developer", rainbow.Methods)
}

func newSubscriptionsCmd(a *app) *cobra.Command {
	return developerCmd(a, "subscriptions", "List the subscriptions of a developer", rainbow.Subscriptions)
}
