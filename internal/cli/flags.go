package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ValidateOutputFormat rejects unknown --output values.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (supported: table, json, yaml)", format)
	}
}

// Options holds the per-invocation flags every command reads.
type Options struct {
	// ID targets a single entity.
	ID string
	// Page is the 1-based page requested; 0 leaves the window to the server.
	Page int
	// Limit is the requested page size before clamping.
	Limit int
	// CSV is the destination file of a list export.
	CSV string
	// NoOutput prints the raw server payload instead of tables.
	NoOutput bool
	// NoConfirmation skips the prompt of destructive commands.
	NoConfirmation bool
	// Output is the --output value.
	Output OutputFormat

	// User search filters.
	Format         string
	CompanyID      string
	Name           string
	Company        string
	OnlyTerminated bool

	// SiteID filters systems.
	SiteID string
}

// Rendering returns the effective output format; --json wins over --output.
func (o Options) Rendering() OutputFormat {
	if o.NoOutput {
		return OutputFormatJSON
	}
	if o.Output == "" {
		return OutputFormatTable
	}
	return o.Output
}

// MachineReadable reports whether decorative output must be suppressed.
func (o Options) MachineReadable() bool {
	return o.Rendering() != OutputFormatTable
}

// EffectiveLimit returns the page size sent to the server.
func (o Options) EffectiveLimit() int {
	return ClampLimit(o.Limit)
}

// CommandFlags holds the flags registered on the root command.
type CommandFlags struct {
	// OutputFormat is the --output value (table, json, yaml).
	OutputFormat string
	// JSON is a shortcut for --output json.
	JSON bool
	// Verbose enables debug logging on stderr.
	Verbose bool
	// ConfigPath overrides the preferences directory.
	ConfigPath string
}

// RegisterCommonFlags registers the persistent flags shared by all commands:
//   - --output/-o: Output format (table, json, yaml), default: "table"
//   - --json: Print the raw JSON payload
//   - --verbose/-v: Log requests on stderr
//   - --config-path: Preferences directory
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags, defaultConfigPath string) {
	cmd.PersistentFlags().StringVarP(&flags.OutputFormat, "output", "o", string(OutputFormatTable), "Output format (table, json, yaml)")
	cmd.PersistentFlags().BoolVar(&flags.JSON, "json", false, "Print the raw JSON payload returned by the server")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log requests and responses on stderr")
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config-path", defaultConfigPath, "Preferences directory")
}

// Options converts the root flags into a fresh Options value.
func (f *CommandFlags) Options() (Options, error) {
	if err := ValidateOutputFormat(f.OutputFormat); err != nil {
		return Options{}, err
	}
	return Options{
		Output:   OutputFormat(f.OutputFormat),
		NoOutput: f.JSON,
	}, nil
}

// ListFlags holds the pagination and export flags of list commands.
type ListFlags struct {
	Page  int
	Limit int
	CSV   string
}

// RegisterListFlags registers --page, --limit and --csv.
func RegisterListFlags(cmd *cobra.Command, flags *ListFlags) {
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 0, "Display a specific page")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", DefaultLimit, fmt.Sprintf("Number of items per page (max %d)", MaxLimit))
	cmd.Flags().StringVar(&flags.CSV, "csv", "", "Export the list to a CSV file")
}

// Apply copies the list flags into opts.
func (f *ListFlags) Apply(opts *Options) {
	opts.Page = f.Page
	opts.Limit = f.Limit
	opts.CSV = f.CSV
}

// RegisterConfirmationFlag registers --noconfirmation on destructive commands.
func RegisterConfirmationFlag(cmd *cobra.Command, skip *bool) {
	cmd.Flags().BoolVar(skip, "noconfirmation", false, "Do not ask for confirmation")
}
