package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if GetVersion() != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	if root.Use != "rbw" {
		t.Errorf("Expected Use to be 'rbw', got %s", root.Use)
	}

	if root.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if root.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !root.SilenceUsage || !root.SilenceErrors {
		t.Error("Expected SilenceUsage and SilenceErrors to be true")
	}
}

func TestSubcommands(t *testing.T) {
	expectedCommands := []string{
		"version", "self-update", "login", "logout", "whoami", "configure",
		"preferences", "set", "remove", "users", "user", "changepwd",
		"systems", "system", "payments", "methods", "subscriptions",
		"status", "create", "delete", "link", "unlink",
	}

	foundCommands := make(map[string]bool)
	for _, cmd := range newRootCmd().Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"output", "json", "verbose", "config-path"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag --%s", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Error executing help command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "rbw") {
		t.Errorf("Help output should contain 'rbw'. Got: %q", output)
	}
	if !strings.Contains(output, "PBX systems") {
		t.Errorf("Help output should contain the long description. Got: %q", output)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitCodeSuccess},
		{"not authenticated", cli.MarkReported(&cli.NotAuthenticatedError{}), ExitCodeError},
		{"cancelled", cli.MarkReported(&cli.CancelledError{Action: "Delete user"}), ExitCodeError},
		{"remote call", &cli.RemoteCallError{Step: "List users", Reason: errors.New("boom")}, ExitCodeError},
		{"usage", errors.New("accepts 1 arg(s), received 0"), ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getExitCode(tt.err); got != tt.want {
				t.Errorf("getExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
