// Package log provides the logging abstraction used by the rangemap packages.
//
// Library code logs through the Logger interface and defaults to a no-op
// implementation, so nothing is printed unless the caller opts in. The
// command-line tool wires a zerolog-backed adapter:
//
//	logger, err := log.NewZerolog(log.Options{Level: "debug", Format: "console"})
//
// Tests can pass log.NewNoopLogger().
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
