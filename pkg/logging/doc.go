// Package logging provides subsystem-tagged structured logging for rbw.
//
// It is a thin facade over log/slog. Commands initialize it once from the
// --verbose flag:
//
//	logging.InitForCLI(logging.LevelForVerbosity(verbose), os.Stderr)
//
//	logging.Debug("Executor", "execute action %s", name)
//	logging.Warn("Preferences", "could not persist refreshed token")
//	logging.Error("SDK", err, "request to %s failed", path)
//
// Log output always goes to stderr. Standard output is reserved for command
// results so that tables and --json output can be piped to other tools.
package logging
