package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates any failure, including a declined confirmation.
	ExitCodeError = 1
)

// rootCmd is the command tree used by Execute.
var rootCmd = newRootCmd()

// newRootCmd builds the complete rbw command tree. Each call returns an
// independent tree with its own flag values.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rbw",
		Short: "Manage a Rainbow platform from the command line",
		Long: `rbw signs in to a Rainbow platform (sandbox or official) and manages
users, PBX systems, developer payments and subscriptions. Results are shown
as tables, or exported as JSON, YAML or CSV for scripting.`,
		// Errors are reported by the executor or by Execute, never twice.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	defaultConfigPath, err := preferences.DefaultConfigPath()
	if err != nil {
		defaultConfigPath = ".rbw"
	}
	cli.RegisterCommonFlags(root, &a.flags, defaultConfigPath)

	root.AddCommand(
		newVersionCmd(),
		newSelfUpdateCmd(),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoAmICmd(a),
		newConfigureCmd(a),
		newPreferencesCmd(a),
		newSetCmd(a),
		newRemoveCmd(a),
		newUsersCmd(a),
		newUserCmd(a),
		newChangePasswordCmd(a),
		newSystemsCmd(a),
		newSystemCmd(a),
		newPaymentsCmd(a),
		newMethodsCmd(a),
		newSubscriptionsCmd(a),
		newStatusCmd(a),
		newCreateCmd(a),
		newDeleteCmd(a),
		newLinkCmd(a),
		newUnlinkCmd(a),
	)
	return root
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the command line and exits with the outcome's exit code.
// Interrupting the process cancels the remote call in flight.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "rbw version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, text.FgRed.Sprint(cli.FormatError(err)))
		}
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps an outcome to the process exit code. Every failure
// kind, including a declined confirmation, shares ExitCodeError.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}
