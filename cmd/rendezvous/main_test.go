package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rendezvous/internal/services"
)

type cliEnv struct {
	configPath   string
	documentsDir string
}

func setupCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("RENDEZVOUS_NTFY_TOPIC", "")
	t.Setenv("RENDEZVOUS_CATALOG_DSN", "")

	env := cliEnv{
		configPath:   filepath.Join(base, "rendezvous.toml"),
		documentsDir: filepath.Join(base, "documents"),
	}
	content := fmt.Sprintf(`[paths]
data_dir = %q
documents_dir = %q
log_dir = %q

[organization]
name = "Atelier Formation Test"

[impact]
report_base_url = "https://rapports.test/"

[logging]
level = "error"
`, filepath.Join(base, "data"), env.documentsDir, filepath.Join(base, "logs"))
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, env cliEnv, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func mustRunJSON(t *testing.T, env cliEnv, args ...string) map[string]any {
	t.Helper()
	out, err := runCLI(t, env, append(args, "--json")...)
	if err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	var view map[string]any
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode %v output %q: %v", args, out, err)
	}
	return view
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestAppointmentLifecycleThroughCLI(t *testing.T) {
	env := setupCLIEnv(t)

	created := mustRunJSON(t, env, "appointment", "create", "--first-name", "Léa", "--last-name", "Martin", "--objectives", "Tableurs")
	id, _ := created["id"].(string)
	if id == "" || created["status"] != "new" {
		t.Fatalf("unexpected create output %v", created)
	}

	validated := mustRunJSON(t, env, "appointment", "validate", id, "--channel", "remote video", "--at", "2026-05-04 10:00")
	if validated["status"] != "scheduled" || validated["channel"] != "visio" {
		t.Fatalf("unexpected validate output %v", validated)
	}

	mustRunJSON(t, env, "appointment", "synthesis", id, "--text", "Bonne base, motivée", "--notes", "privé")
	generated := mustRunJSON(t, env, "appointment", "generate", id)
	if generated["status"] != "program_generated" || generated["programId"] == nil || generated["dossierId"] == nil {
		t.Fatalf("unexpected generate output %v", generated)
	}
	if _, leaked := generated["notes"]; leaked {
		t.Fatal("private notes exposed in JSON view")
	}

	out, err := runCLI(t, env, "documents", "render", id)
	if err != nil {
		t.Fatalf("documents render failed: %v", err)
	}
	requireContains(t, out, "convention-")
	requireContains(t, out, "dossier-")
	entries, err := os.ReadDir(env.documentsDir)
	if err != nil {
		t.Fatalf("read documents dir: %v", err)
	}
	pdfs := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".pdf") {
			pdfs++
		}
	}
	if pdfs != 5 {
		t.Fatalf("expected 5 PDFs, got %d", pdfs)
	}

	impact := mustRunJSON(t, env, "impact", "plan", id)
	impactID, _ := impact["id"].(string)
	if impact["status"] != "impact_scheduled" || impact["rendezvousParentId"] != id {
		t.Fatalf("unexpected impact output %v", impact)
	}
	mustRunJSON(t, env, "impact", "evaluate", impactID, "--satisfaction", "4")

	out, err = runCLI(t, env, "impact", "report", impactID)
	if err != nil {
		t.Fatalf("impact report failed: %v", err)
	}
	if strings.TrimSpace(out) != "https://rapports.test/"+impactID {
		t.Fatalf("unexpected report url %q", out)
	}

	out, err = runCLI(t, env, "appointment", "list", "--kind", "impact")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	requireContains(t, out, "impact_evaluated")
}

func TestRescheduleCancelledReportsTransitionError(t *testing.T) {
	env := setupCLIEnv(t)
	created := mustRunJSON(t, env, "appointment", "create", "--first-name", "Léa", "--last-name", "Martin")
	id := created["id"].(string)
	mustRunJSON(t, env, "appointment", "cancel", id, "--reason", "indisponible")

	_, err := runCLI(t, env, "appointment", "reschedule", id, "--at", "2026-06-01 09:00")
	if !errors.Is(err, services.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if code := exitCode(err); code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if msg := describeError(err); msg != "cannot reschedule: appointment is cancelled" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestGenerateWithoutSynthesisIsValidationError(t *testing.T) {
	env := setupCLIEnv(t)
	created := mustRunJSON(t, env, "appointment", "create", "--first-name", "Léa", "--last-name", "Martin")
	id := created["id"].(string)
	mustRunJSON(t, env, "appointment", "validate", id)

	_, err := runCLI(t, env, "appointment", "generate", id)
	if exitCode(err) != 2 {
		t.Fatalf("expected validation exit code, got %v", err)
	}
}

func TestParseDateTime(t *testing.T) {
	for _, value := range []string{"2026-05-04 10:00", "04/05/2026 10:00", "2026-05-04T10:00", "2026-05-04"} {
		got, err := parseDateTime("at", value)
		if err != nil || got == nil {
			t.Fatalf("parseDateTime(%q) failed: %v", value, err)
		}
		if got.Year() != 2026 || got.Month() != 5 || got.Day() != 4 {
			t.Fatalf("parseDateTime(%q) = %v", value, got)
		}
	}
	if got, err := parseDateTime("at", ""); got != nil || err != nil {
		t.Fatalf("expected nil for empty input, got %v %v", got, err)
	}
	if _, err := parseDateTime("at", "demain"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLIEnv(t)
	target := filepath.Join(t.TempDir(), "sample.toml")
	out, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	requireContains(t, out, target)
	if _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when file exists")
	}
}

func TestStatusReportsReadiness(t *testing.T) {
	env := setupCLIEnv(t)
	out, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status failed: %v\n%s", err, out)
	}
	requireContains(t, out, "Documents directory")
	requireContains(t, out, "Catalog")
	requireContains(t, out, "No appointments")
}

func TestConfigValidatePrintsEffectiveSettings(t *testing.T) {
	env := setupCLIEnv(t)
	out, err := runCLI(t, env, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Atelier Formation Test")
	requireContains(t, out, env.documentsDir)
}
