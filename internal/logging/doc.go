// Package logging provides concrete implementations of the announce.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - ActionsLogger: Writes GitHub Actions workflow commands to stdout
//   - JSONLogger: Writes zerolog JSON lines for machine consumption
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
