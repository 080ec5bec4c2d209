// Package cli runs rbw commands against the Rainbow platform and renders
// their results.
//
// # Core Components
//
// Executor drives every command through the same state machine:
//
//	START -> GATE_CHECK -> [CONFIRM] -> ESTABLISH_SESSION -> CALL_SEQUENCE -> RENDER -> DONE
//
// Any failing state ends the run: the progress indicator is stopped, the
// error is reported once and the outcome carries it back to the caller,
// which turns it into the process exit code.
//
// Sequence holds the remote calls of a command. Steps run strictly one
// after the other. A FailFast sequence stops at the first error; a Tolerant
// sequence replaces a failed result with a placeholder and carries on.
//
// Formatter renders payloads:
//   - raw JSON (--json) or YAML (--output yaml), member order preserved
//   - a single record as numbered Attribute/Value rows
//   - a list of records with a View's columns and a pagination banner
//   - a semicolon-delimited CSV file (--csv)
//
// Values are classified once into a Kind (null, empty string, empty list,
// singleton, many, mapping, scalar) and rendered by an exhaustive switch.
//
// # Gates
//
// EnsureAuthenticated refuses to run a command when no token and user are
// stored. Guard asks for confirmation before destructive commands unless
// --noconfirmation was given, in which case the Prompter is never called.
package cli
