package cmd

import (
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"

	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	var (
		list   cli.ListFlags
		filter cli.Options
	)
	c := &cobra.Command{
		Use:   "users",
		Short: "List the users you can administrate",
		Long: `Lists users page by page. Company admins only see their company and
organization admins only see their organization unless --company-id is given.

Examples:
  rbw users
  rbw users --name "John" --page 2 --limit 50
  rbw users --company-id 5a1b... --csv users.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			list.Apply(&opts)
			opts.Format = filter.Format
			opts.CompanyID = filter.CompanyID
			opts.Name = filter.Name
			opts.Company = filter.Company
			opts.OnlyTerminated = filter.OnlyTerminated
			return a.run(cmd, opts, func(s *preferences.Session) cli.Command {
				return rainbow.ListUsers(opts, s.User)
			})
		},
	}
	cli.RegisterListFlags(c, &list)
	c.Flags().StringVar(&filter.CompanyID, "company-id", "", "List the users of a company")
	c.Flags().StringVar(&filter.Name, "name", "", "Filter by display name")
	c.Flags().StringVar(&filter.Company, "company", "", "Filter by company name")
	c.Flags().BoolVar(&filter.OnlyTerminated, "terminated", false, "List only terminated users")
	c.Flags().StringVar(&filter.Format, "format", "", "Level of detail: small, medium or full")
	return c
}

func newUserCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts.ID = args[0]
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.GetUser(opts.ID)
			})
		},
	}
}

func newChangePasswordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "changepwd <id> <password>",
		Short: "Change the password of a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.ChangePassword(args[0], args[1])
			})
		},
	}
}
