// Package logging builds the zerolog loggers used across userpage.
//
// It resolves the configured level, format and destination, falls back to stderr
// when a log file cannot be opened, and carries a per-invocation trace ID through
// context.Context so that every event logged with .Ctx(ctx) can be correlated.
package logging
