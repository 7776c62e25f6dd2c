// Package logging provides subsystem-tagged diagnostic logging for uniconsole,
// built on Go's standard slog package.
//
// Diagnostic logs are separate from what the console displays to its user:
// command results and errors go through the console's Display, while this
// package records what the registry, manifest loader and watcher are doing.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Registry", "Registered %d commands", n)
//	logging.Debug("Manifest", "Loaded %s", path)
//	logging.Warn("Registry", "Skipping command %q: %v", name, err)
//	logging.Error("Watcher", err, "Watcher failed")
//
// Until InitForCLI is called every message is dropped, which keeps library use
// and tests quiet.
//
// # Levels
//
// ParseLevel accepts "debug", "info", "warn"/"warning" and "error" so levels
// can come from configuration files and flags.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package logging
