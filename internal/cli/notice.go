package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Notifier prints the human-facing messages around a command: who is logged
// in, what is about to happen and how it ended. Errors always go to errOut;
// everything else is dropped in machine-readable modes.
type Notifier struct {
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// NewNotifier returns a Notifier writing to out and errOut.
func NewNotifier(out, errOut io.Writer, quiet bool) *Notifier {
	return &Notifier{out: out, errOut: errOut, quiet: quiet}
}

func (n *Notifier) printf(format string, args ...interface{}) {
	if n.quiet {
		return
	}
	fmt.Fprintf(n.out, format, args...)
}

// Welcome prints the banner.
func (n *Notifier) Welcome(version string) {
	n.printf("%s\n", text.FgHiBlack.Sprintf("Welcome to Rainbow CLI %s", version))
}

// LoggedIn reports the stored identity.
func (n *Notifier) LoggedIn(who string) {
	n.printf("You are logged in as %s\n", text.FgHiWhite.Sprint(who))
}

// NotLoggedIn tells the user how to sign in.
func (n *Notifier) NotLoggedIn() {
	n.printf("%s\n", FormatWarning("You are not logged in. Use 'rbw login <email> <password>' first."))
}

// Action announces the command about to run.
func (n *Notifier) Action(label, target string) {
	if target == "" {
		n.printf("%s\n", text.FgCyan.Sprintf("> %s", label))
		return
	}
	n.printf("%s '%s'\n", text.FgCyan.Sprintf("> %s", label), target)
}

// Success prints a confirmation line.
func (n *Notifier) Success(msg string) {
	n.printf("%s\n", text.FgGreen.Sprint(FormatSuccess(msg)))
}

// Info prints a neutral line.
func (n *Notifier) Info(msg string) {
	n.printf("%s\n", msg)
}

// Cancelled reports a declined confirmation.
func (n *Notifier) Cancelled() {
	n.printf("%s\n", FormatWarning("Your command has been canceled"))
}

// Error reports err on the error stream.
func (n *Notifier) Error(err error) {
	fmt.Fprintf(n.errOut, "%s\n", text.FgRed.Sprint(FormatError(err)))
}

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("✓ %s", msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return fmt.Sprintf("⚠ %s", msg)
}
