package cmd

import (
	"errors"
	"fmt"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/rainbow"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"

	"github.com/spf13/cobra"
)

// hostChoices are offered by configure.
var hostChoices = []string{"sandbox", "official"}

func newLoginCmd(a *app) *cobra.Command {
	var host, proxy string
	c := &cobra.Command{
		Use:   "login [email] [password]",
		Short: "Sign in to a Rainbow platform",
		Long: `Signs in with the given credentials, or with the stored ones when
omitted, and keeps the session for the next commands.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			session, err := a.storage().Load()
			if err != nil {
				return err
			}

			changed := preferences.Session{Host: host, Proxy: proxy}
			if len(args) > 0 {
				changed.Email = args[0]
			}
			if len(args) > 1 {
				changed.Password = args[1]
			}
			applyCredentials(session, changed)
			if session.Email == "" || session.Password == "" {
				return errors.New("missing email or password: run 'rbw login <email> <password>' or 'rbw configure'")
			}

			if err := a.runWith(cmd, session, opts, rainbow.Login); err != nil {
				return err
			}
			return a.storage().Update(func(s *preferences.Session) error {
				applyCredentials(s, changed)
				return nil
			})
		},
	}
	c.Flags().StringVar(&host, "host", "", "Platform to use: sandbox, official or a hostname")
	c.Flags().StringVar(&proxy, "proxy", "", "HTTP proxy URL, e.g. http://proxy:8080")
	return c
}

// applyCredentials copies the non-empty credentials of changed into s.
func applyCredentials(s *preferences.Session, changed preferences.Session) {
	if changed.Email != "" {
		s.Email = changed.Email
	}
	if changed.Password != "" {
		s.Password = changed.Password
	}
	if changed.Host != "" {
		s.Host = changed.Host
	}
	if changed.Proxy != "" {
		s.Proxy = changed.Proxy
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		Long:  `Removes the stored token and user. Credentials are kept for the next login.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			if err := a.storage().Update(func(s *preferences.Session) error {
				s.Clear()
				return nil
			}); err != nil {
				return err
			}
			_, n := a.formatter(cmd, opts)
			n.Success("You have been logged out")
			return nil
		},
	}
}

func newWhoAmICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the connected user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			return a.run(cmd, opts, rainbow.WhoAmI)
		},
	}
}

func newConfigureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Enter your credentials interactively and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			p := a.prompter(cmd)

			var changed preferences.Session
			if changed.Email, err = p.Ask("Email", false); err != nil {
				return err
			}
			if changed.Password, err = p.Ask("Password", true); err != nil {
				return err
			}
			if changed.Host, err = p.Choose("Which platform do you want to use?", hostChoices); err != nil {
				return err
			}
			if changed.Email == "" || changed.Password == "" {
				return errors.New("email and password are required")
			}

			if err := a.storage().Update(func(s *preferences.Session) error {
				applyCredentials(s, changed)
				return nil
			}); err != nil {
				return err
			}
			return a.run(cmd, opts, rainbow.Login)
		},
	}
}

func newPreferencesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preferences",
		Short: "Show the stored preferences",
		Long:  `Shows the stored preferences. Secrets are masked.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			session, err := a.storage().Load()
			if err != nil {
				return err
			}

			record := cli.NewRecord()
			for _, kv := range session.Masked() {
				record.Set(kv[0], kv[1])
			}
			resp, err := sdk.NewResponse(record)
			if err != nil {
				return err
			}
			f, _ := a.formatter(cmd, opts)
			return f.Render(resp, cli.KeyValueView)
		},
	}
}

// preferenceSetter updates one stored preference from the command arguments.
type preferenceSetter struct {
	use   string
	short string
	args  int
	apply func(s *preferences.Session, args []string)
}

var setters = []preferenceSetter{
	{use: "email <email>", short: "Set the login email", args: 1, apply: func(s *preferences.Session, args []string) { s.Email = args[0] }},
	{use: "password <password>", short: "Set the password", args: 1, apply: func(s *preferences.Session, args []string) { s.Password = args[0] }},
	{use: "host <host>", short: "Set the platform: sandbox, official or a hostname", args: 1, apply: func(s *preferences.Session, args []string) { s.Host = args[0] }},
	{use: "proxy <url>", short: "Set the HTTP proxy", args: 1, apply: func(s *preferences.Session, args []string) { s.Proxy = args[0] }},
	{use: "keys <appid> <appsecret>", short: "Set the application id and secret", args: 2, apply: func(s *preferences.Session, args []string) {
		s.AppID = args[0]
		s.AppSecret = args[1]
	}},
}

func newSetCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "set",
		Short: "Change a stored preference",
	}
	for _, s := range setters {
		s := s
		c.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.ExactArgs(s.args),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updatePreferences(cmd, fmt.Sprintf("Preference '%s' saved", cmd.Name()), func(session *preferences.Session) {
					s.apply(session, args)
				})
			},
		})
	}
	return c
}

func newRemoveCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "remove",
		Short: "Remove stored preferences",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "preferences",
			Short: "Remove every stored preference, including the session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				opts, err := a.options()
				if err != nil {
					return err
				}
				if err := a.storage().Remove(); err != nil {
					return err
				}
				_, n := a.formatter(cmd, opts)
				n.Success("Preferences removed")
				return nil
			},
		},
		&cobra.Command{
			Use:   "proxy",
			Short: "Stop using a proxy",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updatePreferences(cmd, "Proxy removed", func(s *preferences.Session) { s.Proxy = "" })
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "Remove the application id and secret",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updatePreferences(cmd, "Application keys removed", func(s *preferences.Session) {
					s.AppID = ""
					s.AppSecret = ""
				})
			},
		},
	)
	return c
}

func (a *app) updatePreferences(cmd *cobra.Command, done string, fn func(*preferences.Session)) error {
	opts, err := a.options()
	if err != nil {
		return err
	}
	if err := a.storage().Update(func(s *preferences.Session) error {
		fn(s)
		return nil
	}); err != nil {
		return err
	}
	_, n := a.formatter(cmd, opts)
	n.Success(done)
	return nil
}
