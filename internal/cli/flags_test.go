package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"table", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("wide"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestOptionsRendering(t *testing.T) {
	assert.Equal(t, OutputFormatTable, Options{}.Rendering())
	assert.Equal(t, OutputFormatYAML, Options{Output: OutputFormatYAML}.Rendering())
	assert.Equal(t, OutputFormatJSON, Options{Output: OutputFormatYAML, NoOutput: true}.Rendering())
	assert.False(t, Options{}.MachineReadable())
	assert.True(t, Options{NoOutput: true}.MachineReadable())
	assert.Equal(t, MaxLimit, Options{Limit: 9999}.EffectiveLimit())
}

func TestRegisterFlags(t *testing.T) {
	root := &cobra.Command{Use: "rbw"}
	var common CommandFlags
	RegisterCommonFlags(root, &common, "/tmp/rbw")

	list := &cobra.Command{Use: "users", RunE: func(*cobra.Command, []string) error { return nil }}
	var lf ListFlags
	RegisterListFlags(list, &lf)
	var skip bool
	RegisterConfirmationFlag(list, &skip)
	root.AddCommand(list)

	root.SetArgs([]string{"users", "--json", "-o", "yaml", "--page", "2", "--limit", "50", "--csv", "out.csv", "--noconfirmation"})
	require.NoError(t, root.Execute())

	opts, err := common.Options()
	require.NoError(t, err)
	lf.Apply(&opts)

	assert.True(t, opts.NoOutput)
	assert.Equal(t, OutputFormatYAML, opts.Output)
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 50, opts.Limit)
	assert.Equal(t, "out.csv", opts.CSV)
	assert.True(t, skip)
	assert.Equal(t, "/tmp/rbw", common.ConfigPath)
}

func TestCommandFlagsRejectUnknownOutput(t *testing.T) {
	_, err := (&CommandFlags{OutputFormat: "xml"}).Options()
	assert.Error(t, err)
}
