package app_test

import (
	"context"
	"strings"
	"testing"

	"rendezvous/internal/app"
	"rendezvous/internal/appointments"
	"rendezvous/internal/documents"
	"rendezvous/internal/lifecycle"
	"rendezvous/internal/testsupport"
)

func openApp(t *testing.T) *app.App {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	a, err := app.Open(cfg, nil)
	if err != nil {
		t.Fatalf("app.Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return a
}

func kinds(outputs []documents.Output) []documents.Kind {
	out := make([]documents.Kind, len(outputs))
	for i, o := range outputs {
		out[i] = o.Kind
	}
	return out
}

func TestRenderAppointmentAfterGeneration(t *testing.T) {
	a := openApp(t)
	ctx := context.Background()

	appt, err := a.Manager.Create(ctx, lifecycle.CreateInput{Participant: testsupport.Participant(), Channel: "visio"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	outputs, err := a.RenderAppointment(ctx, appt.ID)
	if err != nil {
		t.Fatalf("RenderAppointment failed: %v", err)
	}
	if len(outputs) != 3 {
		t.Fatalf("expected bundle of 3 before generation, got %v", kinds(outputs))
	}

	if _, err := a.Manager.Validate(ctx, appt.ID, lifecycle.ValidateInput{}); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if _, err := a.Manager.RecordSynthesis(ctx, appt.ID, lifecycle.SynthesisInput{Synthesis: "Motivée", Notes: "note privée"}); err != nil {
		t.Fatalf("RecordSynthesis failed: %v", err)
	}
	if _, err := a.Manager.GenerateProgramAndDossier(ctx, appt.ID); err != nil {
		t.Fatalf("GenerateProgramAndDossier failed: %v", err)
	}

	outputs, err = a.RenderAppointment(ctx, appt.ID)
	if err != nil {
		t.Fatalf("RenderAppointment failed: %v", err)
	}
	want := []documents.Kind{
		documents.KindAgreement, documents.KindDetailedProgram, documents.KindAttendance,
		documents.KindProgram, documents.KindDossier,
	}
	got := kinds(outputs)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	for _, out := range outputs {
		for _, line := range out.Document.Text() {
			if strings.Contains(line, "note privée") {
				t.Fatalf("%s renders private notes", out.Kind)
			}
		}
	}

	paths, err := a.Archive.WriteAll(ctx, outputs)
	if err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if len(paths) != len(outputs) {
		t.Fatalf("expected %d archived files, got %d", len(outputs), len(paths))
	}
}

func TestRenderImpactRequiresEvaluation(t *testing.T) {
	a := openApp(t)
	ctx := context.Background()
	impact := &appointments.Appointment{
		Kind:        appointments.KindImpact,
		Status:      appointments.StatusImpactScheduled,
		Participant: testsupport.Participant(),
	}
	if _, err := a.Store.Create(ctx, impact); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := a.RenderAppointment(ctx, impact.ID); err == nil {
		t.Fatal("expected transition error before evaluation")
	}

	if _, err := a.Manager.RecordImpactEvaluation(ctx, impact.ID, lifecycle.ImpactEvaluationInput{Satisfaction: 5}); err != nil {
		t.Fatalf("RecordImpactEvaluation failed: %v", err)
	}
	outputs, err := a.RenderAppointment(ctx, impact.ID)
	if err != nil {
		t.Fatalf("RenderAppointment failed: %v", err)
	}
	if len(outputs) != 1 || outputs[0].Kind != documents.KindImpactReport {
		t.Fatalf("expected impact report, got %v", kinds(outputs))
	}
}
