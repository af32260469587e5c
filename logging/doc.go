// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and integrates with Uber's Fx dependency injection framework.
// Log lines that concern an input carry its location under the "source" key.
package logging
