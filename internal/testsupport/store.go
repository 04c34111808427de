package testsupport

import (
	"context"
	"testing"

	"rendezvous/internal/appointments"
	"rendezvous/internal/catalog"
	"rendezvous/internal/config"
)

// MustOpenStore opens an appointments.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *appointments.Store {
	t.Helper()

	store, err := appointments.Open(cfg)
	if err != nil {
		t.Fatalf("appointments.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustOpenCatalog opens the program/dossier catalog for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		cat.Close()
	})
	return cat
}

// Participant returns a complete intake snapshot.
func Participant() appointments.Participant {
	return appointments.Participant{
		FirstName:    "Léa",
		LastName:     "Martin",
		Email:        "lea.martin@example.org",
		Phone:        "06 12 34 56 78",
		Situation:    "Assistante administrative",
		Objectives:   "Gagner en autonomie sur les tableurs",
		CurrentLevel: "Débutante",
	}
}

// NewAppointment inserts a standard appointment in the given status.
func NewAppointment(t testing.TB, store *appointments.Store, status appointments.Status) *appointments.Appointment {
	t.Helper()

	appt := &appointments.Appointment{
		Kind:        appointments.KindStandard,
		Status:      status,
		Participant: Participant(),
	}
	if _, err := store.Create(context.Background(), appt); err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return appt
}
