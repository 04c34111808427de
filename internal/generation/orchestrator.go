package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"rendezvous/internal/appointments"
	"rendezvous/internal/documents"
	"rendezvous/internal/logging"
)

// Catalog persists programs and dossiers.
type Catalog interface {
	CreateProgram(ctx context.Context, appointmentID string, in documents.ProgramInput) (string, error)
	CreateDossier(ctx context.Context, appointmentID string, in documents.DossierInput) (string, error)
	DeleteProgram(ctx context.Context, id string) error
	DeleteDossier(ctx context.Context, id string) error
}

// Result carries the identifiers of a completed generation.
type Result struct {
	ProgramID string
	DossierID string
}

// Orchestrator creates the program/dossier pair for an appointment.
type Orchestrator struct {
	catalog      Catalog
	organization documents.Organization
	logger       *slog.Logger
}

// NewOrchestrator wires an orchestrator against a catalog.
func NewOrchestrator(catalog Catalog, org documents.Organization, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Orchestrator{
		catalog:      catalog,
		organization: org,
		logger:       logging.NewComponentLogger(logger, "generation"),
	}
}

// Generate creates the program then the dossier. On any failure nothing
// created by this call remains in the catalog.
func (o *Orchestrator) Generate(ctx context.Context, appt *appointments.Appointment) (Result, error) {
	logger := logging.WithContext(ctx, o.logger)

	programID, err := o.catalog.CreateProgram(ctx, appt.ID, ProgramInput(appt))
	if err != nil {
		return Result{}, &GenerationError{Step: StepProgram, Err: err}
	}

	dossierID, err := o.catalog.CreateDossier(ctx, appt.ID, DossierInput(appt, o.organization))
	if err != nil {
		genErr := &GenerationError{Step: StepDossier, Err: err}
		if delErr := o.catalog.DeleteProgram(ctx, programID); delErr != nil {
			logging.ErrorWithContext(logger, "program rollback failed", "generation_rollback",
				logging.String("program_id", programID),
				logging.Error(delErr),
			)
			genErr.Err = errors.Join(err, fmt.Errorf("rollback program %s: %w", programID, delErr))
		}
		return Result{}, genErr
	}

	logger.Info("program and dossier created",
		logging.String("program_id", programID),
		logging.String("dossier_id", dossierID),
	)
	return Result{ProgramID: programID, DossierID: dossierID}, nil
}

// Discard removes a generated pair that could not be attached to its
// appointment.
func (o *Orchestrator) Discard(ctx context.Context, result Result) error {
	var errs []error
	if result.DossierID != "" {
		if err := o.catalog.DeleteDossier(ctx, result.DossierID); err != nil {
			errs = append(errs, err)
		}
	}
	if result.ProgramID != "" {
		if err := o.catalog.DeleteProgram(ctx, result.ProgramID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ProgramInput derives the personalised program from the participant snapshot
// and the synthesis.
func ProgramInput(appt *appointments.Appointment) documents.ProgramInput {
	p := appt.Participant
	return documents.ProgramInput{
		Reference:    appt.Reference(),
		Title:        programTitle(p),
		Trainee:      trainee(p),
		Situation:    p.Situation,
		Objectives:   p.Objectives,
		CurrentLevel: p.CurrentLevel,
		Synthesis:    appt.Synthesis,
		Channel:      appt.Channel.Label(),
	}
}

// DossierInput derives the regulatory dossier from the participant snapshot
// and the synthesis.
func DossierInput(appt *appointments.Appointment, org documents.Organization) documents.DossierInput {
	p := appt.Participant
	in := documents.DossierInput{
		Reference:    appt.Reference(),
		Organization: org,
		Trainee:      trainee(p),
		Title:        programTitle(p),
		Situation:    p.Situation,
		Objectives:   p.Objectives,
		CurrentLevel: p.CurrentLevel,
		Synthesis:    appt.Synthesis,
		Channel:      appt.Channel.Label(),
	}
	if appt.ScheduledAt != nil {
		in.PositioningDate = appt.ScheduledAt.Format("02/01/2006")
	}
	return in
}

// Bundle maps an appointment to the inputs of the agreement, the detailed
// program and the attendance sheet.
func Bundle(appt *appointments.Appointment, org documents.Organization) documents.Bundle {
	p := appt.Participant
	ref := appt.Reference()
	title := programTitle(p)
	var dates string
	if appt.ScheduledAt != nil {
		dates = "À partir du " + appt.ScheduledAt.Format("02/01/2006")
	}
	return documents.Bundle{
		Agreement: documents.AgreementInput{
			Reference:    ref,
			Organization: org,
			Trainee:      trainee(p),
			Title:        title,
			Objet:        title,
			Objectifs:    p.Objectives,
			Contenu:      appt.Synthesis,
			Dates:        dates,
			Modalites:    appt.Channel.Label(),
		},
		DetailedProgram: documents.DetailedProgramInput{
			Reference:             ref,
			Organization:          org,
			Title:                 title,
			PublicVise:            p.Situation,
			Prerequis:             p.CurrentLevel,
			ObjectifsSpecifiques:  p.Objectives,
			Contenu:               appt.Synthesis,
			ModalitesPedagogiques: appt.Channel.Label(),
			Formateur:             org.Representative,
		},
		Attendance: documents.AttendanceInput{
			Reference:    ref,
			Organization: org,
			Trainee:      trainee(p),
			Title:        title,
			Dates:        dates,
			Formateur:    org.Representative,
		},
	}
}

// ImpactReportInput maps an evaluated impact appointment to the report input.
func ImpactReportInput(appt *appointments.Appointment, org documents.Organization) documents.ImpactReportInput {
	in := documents.ImpactReportInput{
		Reference:             appt.Reference(),
		Organization:          org,
		Trainee:               trainee(appt.Participant),
		CompetencesAppliquees: appt.CompetencesAppliquees,
		Ameliorations:         appt.Ameliorations,
		Commentaires:          appt.ImpactComments,
		EvaluatedAt:           appt.UpdatedAt.Format("02/01/2006"),
	}
	if appt.Satisfaction != nil {
		in.Satisfaction = fmt.Sprintf("%d / %d", *appt.Satisfaction, appointments.MaxSatisfaction)
	}
	return in
}

func trainee(p appointments.Participant) documents.Trainee {
	return documents.Trainee{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

func programTitle(p appointments.Participant) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return "Programme de formation personnalisé"
	}
	return "Programme de formation personnalisé de " + name
}
