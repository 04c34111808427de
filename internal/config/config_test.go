package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"rendezvous/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("RENDEZVOUS_CATALOG_DSN", "")
	t.Setenv("RENDEZVOUS_NTFY_TOPIC", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "rendezvous")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.DocumentsDir != filepath.Join(wantData, "documents") {
		t.Fatalf("unexpected documents dir: %q", cfg.Paths.DocumentsDir)
	}
	if cfg.Catalog.Driver != "sqlite" {
		t.Fatalf("expected sqlite catalog by default, got %q", cfg.Catalog.Driver)
	}
	if cfg.Catalog.DSN != filepath.Join(wantData, "catalog.db") {
		t.Fatalf("unexpected catalog dsn: %q", cfg.Catalog.DSN)
	}
	if cfg.AppointmentsDBPath() != filepath.Join(wantData, "appointments.db") {
		t.Fatalf("unexpected appointments db path: %q", cfg.AppointmentsDBPath())
	}
	if cfg.Layout.PageWidth != 210 || cfg.Layout.PageHeight != 297 || cfg.Layout.Margin != 20 {
		t.Fatalf("unexpected page geometry: %+v", cfg.Layout)
	}
	if cfg.Layout.AttendanceRows != 15 {
		t.Fatalf("expected 15 attendance rows, got %d", cfg.Layout.AttendanceRows)
	}
	if cfg.Impact.DelayMonths != 6 {
		t.Fatalf("expected 6 month impact delay, got %d", cfg.Impact.DelayMonths)
	}
	if cfg.Notifications.NtfyTopic != "" {
		t.Fatalf("expected empty ntfy topic, got %q", cfg.Notifications.NtfyTopic)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	custom := config.Default()
	custom.Paths.DataDir = "~/rdv"
	custom.Paths.DocumentsDir = ""
	custom.Organization.Name = "  Atelier Nord  "
	custom.Organization.Siret = "123 456 789 00012"
	custom.Impact.ReportBaseURL = "https://rapports.example.org/"
	custom.Logging.Format = "JSON"

	configPath := filepath.Join(tempHome, "custom.toml")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.DataDir != filepath.Join(tempHome, "rdv") {
		t.Fatalf("unexpected data dir: %q", cfg.Paths.DataDir)
	}
	if cfg.Paths.DocumentsDir != filepath.Join(tempHome, "rdv", "documents") {
		t.Fatalf("expected documents dir derived from data dir, got %q", cfg.Paths.DocumentsDir)
	}
	if cfg.Organization.Name != "Atelier Nord" {
		t.Fatalf("expected trimmed organization name, got %q", cfg.Organization.Name)
	}
	if cfg.Organization.Siret != "12345678900012" {
		t.Fatalf("expected compact siret, got %q", cfg.Organization.Siret)
	}
	if cfg.Impact.ReportBaseURL != "https://rapports.example.org" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Impact.ReportBaseURL)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lower-cased log format, got %q", cfg.Logging.Format)
	}
}

func TestEnvVarFallbacks(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("RENDEZVOUS_CATALOG_DSN", "host=db user=rdv dbname=rdv")
	t.Setenv("RENDEZVOUS_NTFY_TOPIC", "https://ntfy.example/rdv")

	custom := config.Default()
	custom.Catalog.Driver = "postgres"
	configPath := filepath.Join(tempHome, "config.toml")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.DSN != "host=db user=rdv dbname=rdv" {
		t.Fatalf("expected catalog dsn from env, got %q", cfg.Catalog.DSN)
	}
	if cfg.Notifications.NtfyTopic != "https://ntfy.example/rdv" {
		t.Fatalf("expected ntfy topic from env, got %q", cfg.Notifications.NtfyTopic)
	}
}

func TestConfigFileTakesPrecedenceOverEnv(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("RENDEZVOUS_NTFY_TOPIC", "https://ntfy.example/env")

	custom := config.Default()
	custom.Notifications.NtfyTopic = "https://ntfy.example/file"
	configPath := filepath.Join(tempHome, "config.toml")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Notifications.NtfyTopic != "https://ntfy.example/file" {
		t.Fatalf("expected file topic to win, got %q", cfg.Notifications.NtfyTopic)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[organization]") {
		t.Fatalf("sample config missing organization section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.DataDir, "rendezvous") {
		t.Fatalf("expected data dir to contain rendezvous, got %q", cfg.Paths.DataDir)
	}
	if cfg.Layout.SignatureOffset != 60 {
		t.Fatalf("unexpected signature offset in sample: %v", cfg.Layout.SignatureOffset)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.DocumentsDir = filepath.Join(base, "data", "docs")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.DocumentsDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero page width", func(c *config.Config) { c.Layout.PageWidth = 0 }},
		{"margin too wide", func(c *config.Config) { c.Layout.Margin = 120 }},
		{"negative line height", func(c *config.Config) { c.Layout.LineHeightRatio = -1 }},
		{"signature offset past page", func(c *config.Config) { c.Layout.SignatureOffset = 400 }},
		{"unknown catalog driver", func(c *config.Config) { c.Catalog.Driver = "mysql" }},
		{"postgres without dsn", func(c *config.Config) { c.Catalog.Driver = "postgres"; c.Catalog.DSN = "" }},
		{"zero impact delay", func(c *config.Config) { c.Impact.DelayMonths = 0 }},
		{"relative report url", func(c *config.Config) { c.Impact.ReportBaseURL = "/rapports" }},
		{"unknown log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
