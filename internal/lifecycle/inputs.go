package lifecycle

import (
	"time"

	"rendezvous/internal/appointments"
)

// CreateInput opens a new standard appointment.
type CreateInput struct {
	Participant appointments.Participant
	ScheduledAt *time.Time
	// Channel accepts canonical names and aliases; empty leaves it unset.
	Channel string
}

// ValidateInput confirms an appointment. Nil or empty fields keep the stored
// values.
type ValidateInput struct {
	Channel     string
	ScheduledAt *time.Time
}

// CancelInput cancels an appointment. The reason lands in the comment log.
type CancelInput struct {
	Reason string
}

// RescheduleInput moves a scheduled appointment.
type RescheduleInput struct {
	ScheduledAt time.Time
	Channel     string
}

// SynthesisInput records the compte-rendu. Notes are private and never
// rendered; an empty value keeps the stored notes.
type SynthesisInput struct {
	Synthesis string
	Notes     string
}

// PlanImpactInput schedules the impact follow-up. A nil date defaults to the
// configured delay after now.
type PlanImpactInput struct {
	ImpactDate *time.Time
}

// ImpactEvaluationInput is the assessment recorded on an impact appointment.
type ImpactEvaluationInput = appointments.ImpactEvaluation

// ImpactReport locates the report of an evaluated impact appointment.
type ImpactReport struct {
	AppointmentID string
	RapportURL    string
}
