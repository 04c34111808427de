package services_test

import (
	"context"
	"testing"

	"rendezvous/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithAppointmentID(ctx, "a1b2")
	ctx = services.WithTransition(ctx, "reschedule")
	ctx = services.WithRequestID(ctx, "req-123")

	if id, ok := services.AppointmentIDFromContext(ctx); !ok || id != "a1b2" {
		t.Fatalf("unexpected appointment id: %v %v", id, ok)
	}
	if name, ok := services.TransitionFromContext(ctx); !ok || name != "reschedule" {
		t.Fatalf("unexpected transition: %v %v", name, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithTransition(ctx, "")
	ctx = services.WithAppointmentID(ctx, "")
	if _, ok := services.TransitionFromContext(ctx); ok {
		t.Fatal("expected no transition value")
	}
	if _, ok := services.AppointmentIDFromContext(ctx); ok {
		t.Fatal("expected no appointment id value")
	}
}
