package cmd

import (
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user, a PBX system or a payment account",
		Long: `Deletes an entity after asking for confirmation. Use --noconfirmation
in scripts.`,
	}
	c.AddCommand(
		deleteCmd(a, "user <id>", "Delete a user", rainbow.DeleteUser),
		deleteCmd(a, "system <id>", "Delete a PBX system", rainbow.DeleteSystem),
		newDeletePaymentCmd(a),
	)
	return c
}

func newDeletePaymentCmd(a *app) *cobra.Command {
	var (
		id   string
		skip bool
	)
	c := &cobra.Command{
		Use:   "payment",
		Short: "Cancel the payment account of a developer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts.ID = id
			opts.NoConfirmation = skip
			return a.run(cmd, opts, func(s *preferences.Session) cli.Command {
				return rainbow.DeletePayment(developerID(opts, s))
			})
		},
	}
	c.Flags().StringVar(&id, "id", "", "Developer id (defaults to the connected user)")
	cli.RegisterConfirmationFlag(c, &skip)
	return c
}

func deleteCmd(a *app, use, short string, build func(id string) cli.Command) *cobra.Command {
	var skip bool
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts.ID = args[0]
			opts.NoConfirmation = skip
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return build(opts.ID)
			})
		},
	}
	cli.RegisterConfirmationFlag(c, &skip)
	return c
}
