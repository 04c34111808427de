package testsupport

import (
	"path/filepath"
	"testing"

	"rendezvous/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The catalog uses a sqlite file next to the appointment database.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.DocumentsDir = filepath.Join(base, "documents")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Catalog.Driver = "sqlite"
	cfgVal.Catalog.DSN = filepath.Join(base, "data", "catalog.db")
	cfgVal.Organization = config.Organization{
		Name:              "Atelier Formation Test",
		Address:           "1 place du Test",
		City:              "Nantes",
		Siret:             "12345678900012",
		DeclarationNumber: "52440000044",
	}
	cfgVal.Impact.ReportBaseURL = "https://rapports.test"

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithNtfyTopic sets the notification topic URL.
func WithNtfyTopic(topic string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.NtfyTopic = topic
	}
}

// WithImpactDelay overrides the default impact follow-up delay.
func WithImpactDelay(months int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Impact.DelayMonths = months
	}
}

// WithAttendanceRows overrides the attendance sheet row bound.
func WithAttendanceRows(rows int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Layout.AttendanceRows = rows
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
