// Package logging assembles structured slog loggers and formatting helpers used
// across rendezvous services.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so lifecycle code can tag log
// lines with appointment IDs, transition names, and correlation IDs. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging
