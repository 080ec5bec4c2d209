package cmd

import (
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"

	"github.com/spf13/cobra"
)

func newSystemsCmd(a *app) *cobra.Command {
	var (
		list   cli.ListFlags
		siteID string
	)
	c := &cobra.Command{
		Use:   "systems",
		Short: "List the PBX systems",
		Long: `Lists PBX systems, optionally only those linked to a site.

Examples:
  rbw systems
  rbw systems --site-id 57ea... --csv systems.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			list.Apply(&opts)
			opts.SiteID = siteID
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.ListSystems(opts)
			})
		},
	}
	cli.RegisterListFlags(c, &list)
	c.Flags().StringVar(&siteID, "site-id", "", "List the systems of a site")
	return c
}

func newSystemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "system <id>",
		Short: "Show a PBX system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.GetSystem(args[0])
			})
		},
	}
}

func newLinkCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "link",
		Short: "Link an entity to another one",
	}
	c.AddCommand(&cobra.Command{
		Use:   "system <systemId> <siteId>",
		Short: "Link a PBX system to a site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.LinkSystem(args[0], args[1])
			})
		},
	})
	return c
}

func newUnlinkCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "unlink",
		Short: "Unlink an entity from another one",
	}
	c.AddCommand(&cobra.Command{
		Use:   "system <systemId> <siteId>",
		Short: "Unlink a PBX system from a site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.UnlinkSystem(args[0], args[1])
			})
		},
	})
	return c
}
