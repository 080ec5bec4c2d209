package cmd

import (
	"fmt"
	"slices"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"

	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "create",
		Short: "Create a user or a PBX system",
	}
	c.AddCommand(newCreateUserCmd(a), newCreateSystemCmd(a))
	return c
}

func newCreateUserCmd(a *app) *cobra.Command {
	var (
		companyID string
		admin     bool
	)
	c := &cobra.Command{
		Use:   "user <email> <password> <firstname> <lastname>",
		Short: "Create a user",
		Long: `Creates a user in your company, or in --company-id.

Examples:
  rbw create user jdoe@company.com 'Passw0rd!' John Doe
  rbw create user jdoe@company.com 'Passw0rd!' John Doe --admin`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, func(s *preferences.Session) cli.Command {
				u := rainbow.NewUser{
					Email:     args[0],
					Password:  args[1],
					FirstName: args[2],
					LastName:  args[3],
					CompanyID: companyID,
					Admin:     admin,
				}
				if u.CompanyID == "" {
					u.CompanyID = s.User.CompanyID()
				}
				return rainbow.CreateUser(u)
			})
		},
	}
	c.Flags().StringVar(&companyID, "company-id", "", "Company of the user (defaults to yours)")
	c.Flags().BoolVar(&admin, "admin", false, "Make the user a company administrator")
	return c
}

func newCreateSystemCmd(a *app) *cobra.Command {
	var pbxType, country string
	c := &cobra.Command{
		Use:   "system <name> <siteId>",
		Short: "Create a PBX system in a site",
		Long: `Creates a PBX system. The type and the country are asked for when
not given.

Examples:
  rbw create system "Main PBX" 57ea... --type oxe --country FRA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			p := a.prompter(cmd)
			if pbxType == "" {
				if pbxType, err = p.Choose("Which type of system?", rainbow.PBXTypes); err != nil {
					return err
				}
			}
			if !slices.Contains(rainbow.PBXTypes, pbxType) {
				return fmt.Errorf("unsupported system type %q, expected one of %v", pbxType, rainbow.PBXTypes)
			}
			if country == "" {
				if country, err = p.Choose("In which country?", rainbow.Countries); err != nil {
					return err
				}
			}
			sys := rainbow.NewSystem{Name: args[0], SiteID: args[1], Type: pbxType, Country: country}
			return a.run(cmd, opts, func(*preferences.Session) cli.Command {
				return rainbow.CreateSystem(sys)
			})
		},
	}
	c.Flags().StringVar(&pbxType, "type", "", fmt.Sprintf("System type, one of %v", rainbow.PBXTypes))
	c.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-3 country code")
	return c
}
