package archive

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"rendezvous/internal/documents"
	"rendezvous/internal/layout"
	"rendezvous/internal/services"
)

func renderer(t *testing.T) *documents.Renderer {
	t.Helper()
	engine, err := layout.NewEngine(layout.DefaultGeometry(), layout.FixedMeasurer{}, 0)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return documents.NewRenderer(engine, documents.DefaultOptions())
}

func TestWriteStoresPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "documents")
	arc, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out := renderer(t).Agreement(documents.AgreementInput{Reference: "AB12CD34", Title: "Tableur", Objet: "Tableur"})
	path, err := arc.Write(context.Background(), out)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if path != filepath.Join(dir, "convention-AB12CD34.pdf") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", data[:min(8, len(data))])
	}
}

func TestWriteAllIsSafeAcrossArchives(t *testing.T) {
	dir := t.TempDir()
	r := renderer(t)
	outputs := r.GenerateAllDocuments("EF56GH78", documents.Bundle{})

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			arc, err := New(dir, nil)
			if err != nil {
				errs <- err
				return
			}
			_, err = arc.WriteAll(context.Background(), outputs)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("WriteAll failed: %v", err)
		}
	}

	for _, name := range []string{"convention-EF56GH78.pdf", "programme-EF56GH78.pdf", "emargement-EF56GH78.pdf"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestWriteRejectsMissingFilename(t *testing.T) {
	arc, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = arc.Write(context.Background(), documents.Output{})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewRejectsEmptyDir(t *testing.T) {
	if _, err := New("", nil); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
