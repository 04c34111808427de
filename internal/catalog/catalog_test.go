package catalog_test

import (
	"context"
	"errors"
	"testing"

	"rendezvous/internal/catalog"
	"rendezvous/internal/documents"
	"rendezvous/internal/services"
	"rendezvous/internal/testsupport"
)

func TestCreateAndGetProgram(t *testing.T) {
	cat := testsupport.MustOpenCatalog(t, testsupport.NewConfig(t))
	ctx := context.Background()

	in := documents.ProgramInput{Reference: "AB12CD34", Title: "Tableur", Synthesis: "Motivée"}
	id, err := cat.CreateProgram(ctx, "appt-1", in)
	if err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}

	program, err := cat.GetProgram(ctx, id)
	if err != nil {
		t.Fatalf("GetProgram failed: %v", err)
	}
	if program.AppointmentID != "appt-1" || program.RenderTarget != "formation-AB12CD34.pdf" {
		t.Fatalf("unexpected program: %+v", program)
	}
	if got := program.Input.Data(); got.Synthesis != "Motivée" || got.Title != "Tableur" {
		t.Fatalf("unexpected stored input: %+v", got)
	}
}

func TestCreateAndDeleteDossier(t *testing.T) {
	cat := testsupport.MustOpenCatalog(t, testsupport.NewConfig(t))
	ctx := context.Background()

	id, err := cat.CreateDossier(ctx, "appt-2", documents.DossierInput{Reference: "EF56GH78"})
	if err != nil {
		t.Fatalf("CreateDossier failed: %v", err)
	}
	dossier, err := cat.GetDossier(ctx, id)
	if err != nil || dossier.RenderTarget != "dossier-EF56GH78.pdf" {
		t.Fatalf("unexpected dossier %+v (%v)", dossier, err)
	}

	if err := cat.DeleteDossier(ctx, id); err != nil {
		t.Fatalf("DeleteDossier failed: %v", err)
	}
	if _, err := cat.GetDossier(ctx, id); !errors.Is(err, catalog.ErrNotFound) || !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := cat.DeleteDossier(ctx, id); err != nil {
		t.Fatalf("expected idempotent delete, got %v", err)
	}
}

func TestCounts(t *testing.T) {
	cat := testsupport.MustOpenCatalog(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if _, err := cat.CreateProgram(ctx, "appt-3", documents.ProgramInput{Reference: "X"}); err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}
	programs, dossiers, err := cat.Counts(ctx, "appt-3")
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if programs != 1 || dossiers != 0 {
		t.Fatalf("unexpected counts %d/%d", programs, dossiers)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Catalog.Driver = "oracle"
	if _, err := catalog.Open(cfg); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
