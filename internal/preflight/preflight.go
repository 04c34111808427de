package preflight

import (
	"context"

	"rendezvous/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Pinger is satisfied by the catalog.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RunAll executes every applicable check. catalog may be nil when the caller
// could not open it; the check then reports the failure.
func RunAll(ctx context.Context, cfg *config.Config, catalog Pinger) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Documents directory", cfg.Paths.DocumentsDir),
		CheckCatalog(ctx, cfg.Catalog.Driver, catalog),
	}
	if cfg.Notifications.NtfyTopic != "" {
		results = append(results, CheckNtfy(ctx, cfg.Notifications.NtfyTopic))
	}
	return results
}
