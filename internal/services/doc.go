// Package services defines shared error markers and context helpers consumed
// by the lifecycle manager, the generation orchestrator, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp appointment IDs, transition names, and
//     correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures with errors.Is regardless of where they were raised.
package services
