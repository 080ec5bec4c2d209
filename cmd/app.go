package cmd

import (
	"io"
	"os"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
	"github.com/crazyrex/Rainbow-CLI-SDK/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app holds the root flags shared by every command of one tree.
type app struct {
	flags cli.CommandFlags
}

// setup runs before every command: it configures logging and turns colors
// off when stdout is not a terminal.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logging.InitForCLI(logging.LevelForVerbosity(a.flags.Verbose), cmd.ErrOrStderr())
	if !isTerminal(cmd.OutOrStdout()) {
		text.DisableColors()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (a *app) storage() *preferences.Storage {
	return preferences.NewStorageWithPath(a.flags.ConfigPath)
}

// options returns a fresh Options value from the root flags.
func (a *app) options() (cli.Options, error) {
	return a.flags.Options()
}

func (a *app) prompter(cmd *cobra.Command) cli.Prompter {
	in := cmd.InOrStdin()
	rc, ok := in.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(in)
	}
	return cli.NewReadlinePrompter(rc, cmd.OutOrStdout())
}

func (a *app) indicator(cmd *cobra.Command) cli.Indicator {
	if !isTerminal(cmd.ErrOrStderr()) {
		return cli.SilentIndicator
	}
	return cli.NewSpinner(cmd.ErrOrStderr(), "In progress, please wait...")
}

func (a *app) executor(cmd *cobra.Command, session *preferences.Session, opts cli.Options) *cli.Executor {
	version := cmd.Root().Version
	return cli.NewExecutor(cli.ExecutorConfig{
		Session:   session,
		Remote:    sdk.NewClient(sdk.WithUserAgent("rbw/" + version)),
		Recorder:  a.storage(),
		Prompter:  a.prompter(cmd),
		Out:       cmd.OutOrStdout(),
		ErrOut:    cmd.ErrOrStderr(),
		Options:   opts,
		Indicator: a.indicator(cmd),
		Version:   version,
	})
}

// run loads the stored session, builds the command from it and executes it.
// The returned error has already been shown to the user.
func (a *app) run(cmd *cobra.Command, opts cli.Options, build func(session *preferences.Session) cli.Command) error {
	session, err := a.storage().Load()
	if err != nil {
		return err
	}
	return a.runWith(cmd, session, opts, build)
}

func (a *app) runWith(cmd *cobra.Command, session *preferences.Session, opts cli.Options, build func(session *preferences.Session) cli.Command) error {
	e := a.executor(cmd, session, opts)
	outcome := e.Run(cmd.Context(), build(e.Session()))
	return outcome.Err
}

// formatter renders local data, such as stored preferences, without a
// remote call.
func (a *app) formatter(cmd *cobra.Command, opts cli.Options) (*cli.Formatter, *cli.Notifier) {
	n := cli.NewNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.MachineReadable())
	return cli.NewFormatter(cmd.OutOrStdout(), n, opts), n
}
