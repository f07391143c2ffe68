// Package logging provides structured logging for camset.
//
// This package wraps a global zap logger with convenience functions. It is
// silent by default so the curated CLI output and the interactive picker
// are not disturbed; set CAMSET_LOG_LEVEL to "debug", "info", "warn" or
// "error" to enable it.
//
// # Log Levels
//
//   - Debug: every setting change, scheduler activity
//   - Info: mirror connections, config saves
//   - Warn: stale config values that no longer match a setting
//   - Error: bad data from a value store (missing override values)
//
// # Output
//
// Command-line subcommands log to stdout. The picker owns the terminal, so
// it calls InitializeWithOutput with a log file path:
//
//	if err := logging.InitializeWithOutput("", logPath); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Components that need an injected logger, such as the stepper, take
// logging.Named("stepper") rather than reaching for the global functions.
package logging
