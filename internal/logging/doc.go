// Package logging builds the slog loggers used across gazette.
//
// It provides console and JSON handlers behind one Options struct, typed
// attribute helpers so call sites stay terse, standardized field names for
// record identifiers and pipeline stages, and a no-op logger for tests.
package logging
