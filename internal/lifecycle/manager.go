package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rendezvous/internal/appointments"
	"rendezvous/internal/generation"
	"rendezvous/internal/logging"
	"rendezvous/internal/notifications"
	"rendezvous/internal/services"
)

// DefaultImpactDelayMonths is used when Options leaves the delay unset.
const DefaultImpactDelayMonths = 6

// Repository persists appointments with an expected-status precondition.
type Repository interface {
	Load(ctx context.Context, id string) (*appointments.Appointment, error)
	Save(ctx context.Context, a *appointments.Appointment, expected appointments.Status) error
	Create(ctx context.Context, a *appointments.Appointment) (string, error)
	List(ctx context.Context, filter appointments.ListFilter) ([]*appointments.Appointment, error)
}

// Generator creates and discards program/dossier pairs.
type Generator interface {
	Generate(ctx context.Context, appt *appointments.Appointment) (generation.Result, error)
	Discard(ctx context.Context, result generation.Result) error
}

// Options configures a Manager.
type Options struct {
	ImpactDelayMonths int
	ReportBaseURL     string
	Notifier          notifications.Service
	Logger            *slog.Logger
	Clock             func() time.Time
}

// Manager owns appointment status changes.
type Manager struct {
	repo        Repository
	generator   Generator
	notifier    notifications.Service
	logger      *slog.Logger
	now         func() time.Time
	impactDelay int
	reportBase  string
}

// NewManager wires a lifecycle manager.
func NewManager(repo Repository, generator Generator, opts Options) *Manager {
	m := &Manager{
		repo:        repo,
		generator:   generator,
		notifier:    opts.Notifier,
		logger:      opts.Logger,
		now:         opts.Clock,
		impactDelay: opts.ImpactDelayMonths,
		reportBase:  strings.TrimRight(opts.ReportBaseURL, "/"),
	}
	if m.notifier == nil {
		m.notifier = notifications.Noop()
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	m.logger = logging.NewComponentLogger(m.logger, "lifecycle")
	if m.now == nil {
		m.now = time.Now
	}
	if m.impactDelay <= 0 {
		m.impactDelay = DefaultImpactDelayMonths
	}
	return m
}

// Get returns the stored appointment.
func (m *Manager) Get(ctx context.Context, id string) (*appointments.Appointment, error) {
	return m.repo.Load(ctx, id)
}

// List returns appointments matching filter.
func (m *Manager) List(ctx context.Context, filter appointments.ListFilter) ([]*appointments.Appointment, error) {
	return m.repo.List(ctx, filter)
}

// Create opens a standard appointment in status new.
func (m *Manager) Create(ctx context.Context, in CreateInput) (*appointments.Appointment, error) {
	if err := in.Participant.Validate(); err != nil {
		return nil, err
	}
	appt := &appointments.Appointment{
		Kind:        appointments.KindStandard,
		Status:      appointments.StatusNew,
		Participant: in.Participant,
		ScheduledAt: copyTime(in.ScheduledAt),
		CreatedAt:   m.now().UTC(),
	}
	if strings.TrimSpace(in.Channel) != "" {
		ch, err := appointments.ParseChannel(in.Channel)
		if err != nil {
			return nil, err
		}
		appt.Channel = ch
	}
	if _, err := m.repo.Create(ctx, appt); err != nil {
		return nil, services.Wrap(services.ErrTransient, "lifecycle", "create", "store appointment", err)
	}
	ctx = services.WithAppointmentID(ctx, appt.ID)
	logging.WithContext(ctx, m.logger).Info("appointment created",
		logging.String(logging.FieldStatus, string(appt.Status)),
	)
	return appt, nil
}

// CorrectParticipant replaces the participant snapshot without changing status.
// Once documents exist the snapshot they were built from is frozen.
func (m *Manager) CorrectParticipant(ctx context.Context, id string, participant appointments.Participant) (*appointments.Appointment, error) {
	if err := participant.Validate(); err != nil {
		return nil, err
	}
	current, err := m.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.HasDocuments() {
		return nil, &appointments.ValidationError{Field: "participant", Message: "documents already issued from this snapshot"}
	}
	next := current.Clone()
	next.Participant = participant
	if err := m.save(ctx, next, current.Status, "correct_participant"); err != nil {
		return nil, err
	}
	return next, nil
}

// Validate confirms the appointment and optionally sets channel and date.
func (m *Manager) Validate(ctx context.Context, id string, in ValidateInput) (*appointments.Appointment, error) {
	var channel appointments.Channel
	if strings.TrimSpace(in.Channel) != "" {
		ch, err := appointments.ParseChannel(in.Channel)
		if err != nil {
			return nil, err
		}
		channel = ch
	}
	appt, err := m.apply(ctx, id, appointments.TransitionValidate, func(a *appointments.Appointment) error {
		if channel != "" {
			a.Channel = channel
		}
		if in.ScheduledAt != nil {
			a.ScheduledAt = copyTime(in.ScheduledAt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.publish(ctx, notifications.EventAppointmentValidated, eventPayload(appt))
	return appt, nil
}

// Cancel cancels a new or scheduled appointment.
func (m *Manager) Cancel(ctx context.Context, id string, in CancelInput) (*appointments.Appointment, error) {
	appt, err := m.apply(ctx, id, appointments.TransitionCancel, func(a *appointments.Appointment) error {
		if reason := strings.TrimSpace(in.Reason); reason != "" {
			a.AppendComment("Annulation : " + reason)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	payload := eventPayload(appt)
	payload["reason"] = in.Reason
	m.publish(ctx, notifications.EventAppointmentCancelled, payload)
	return appt, nil
}

// Reschedule moves a scheduled appointment to a new date and optional channel.
func (m *Manager) Reschedule(ctx context.Context, id string, in RescheduleInput) (*appointments.Appointment, error) {
	var channel appointments.Channel
	if strings.TrimSpace(in.Channel) != "" {
		ch, err := appointments.ParseChannel(in.Channel)
		if err != nil {
			return nil, err
		}
		channel = ch
	}
	appt, err := m.apply(ctx, id, appointments.TransitionReschedule, func(a *appointments.Appointment) error {
		if in.ScheduledAt.IsZero() {
			return &appointments.ValidationError{Field: "scheduled_at", Message: "is required"}
		}
		at := in.ScheduledAt
		a.ScheduledAt = &at
		if channel != "" {
			a.Channel = channel
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.publish(ctx, notifications.EventAppointmentRescheduled, eventPayload(appt))
	return appt, nil
}

// RecordSynthesis stores the compte-rendu and moves the appointment to
// conducted. It may be repeated until the program is generated.
func (m *Manager) RecordSynthesis(ctx context.Context, id string, in SynthesisInput) (*appointments.Appointment, error) {
	appt, err := m.apply(ctx, id, appointments.TransitionRecordSynthesis, func(a *appointments.Appointment) error {
		if strings.TrimSpace(in.Synthesis) == "" {
			return &appointments.ValidationError{Field: "synthesis", Message: "is required"}
		}
		a.Synthesis = in.Synthesis
		if in.Notes != "" {
			a.Notes = in.Notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.publish(ctx, notifications.EventSynthesisRecorded, eventPayload(appt))
	return appt, nil
}

// GenerateProgramAndDossier creates the program and dossier and records both
// ids. The synthesis gate is checked before the status so an empty synthesis
// is always reported as a validation failure.
func (m *Manager) GenerateProgramAndDossier(ctx context.Context, id string) (*appointments.Appointment, error) {
	transition := appointments.TransitionGenerateProgram
	ctx = m.scope(ctx, id, transition)
	logger := logging.WithContext(ctx, m.logger)

	current, err := m.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(current.Synthesis) == "" {
		err := &appointments.ValidationError{Field: "synthesis", Message: "is required before generating the program"}
		m.reject(logger, current, err)
		return nil, err
	}
	target, err := appointments.Target(current, transition)
	if err != nil {
		m.reject(logger, current, err)
		return nil, err
	}

	result, err := m.generator.Generate(ctx, current)
	if err != nil {
		logging.ErrorWithContext(logger, "program generation failed", "generation_failed",
			logging.String(logging.FieldStatus, string(current.Status)),
			logging.Error(err),
		)
		m.publish(ctx, notifications.EventError, notifications.Payload{
			"context": string(transition),
			"error":   err.Error(),
		})
		return nil, err
	}

	next := current.Clone()
	if err := next.SetDocuments(result.ProgramID, result.DossierID); err != nil {
		m.discard(ctx, logger, result)
		return nil, err
	}
	next.Status = target
	if err := m.save(ctx, next, current.Status, transition); err != nil {
		m.discard(ctx, logger, result)
		return nil, err
	}

	logger.Info("appointment transitioned",
		logging.String(logging.FieldStatus, string(next.Status)),
		logging.String("program_id", next.ProgramID),
		logging.String("dossier_id", next.DossierID),
	)
	m.publish(ctx, notifications.EventProgramGenerated, eventPayload(next))
	return next, nil
}

// PlanImpact creates an impact follow-up for a standard appointment whose
// program has been generated. The source appointment is not modified.
func (m *Manager) PlanImpact(ctx context.Context, id string, in PlanImpactInput) (*appointments.Appointment, error) {
	transition := appointments.TransitionPlanImpact
	ctx = m.scope(ctx, id, transition)
	logger := logging.WithContext(ctx, m.logger)

	source, err := m.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := appointments.Target(source, transition); err != nil {
		m.reject(logger, source, err)
		return nil, err
	}

	now := m.now().UTC()
	date := now.AddDate(0, m.impactDelay, 0)
	if in.ImpactDate != nil {
		date = in.ImpactDate.UTC()
	}
	impact := &appointments.Appointment{
		Kind:        appointments.KindImpact,
		Status:      appointments.StatusImpactScheduled,
		Participant: source.Participant,
		Channel:     source.Channel,
		ScheduledAt: &date,
		ParentID:    source.ID,
		CreatedAt:   now,
	}
	if _, err := m.repo.Create(ctx, impact); err != nil {
		return nil, services.Wrap(services.ErrTransient, "lifecycle", string(transition), "store impact appointment", err)
	}

	logger.Info("impact follow-up planned",
		logging.String("impact_id", impact.ID),
		logging.Time("impact_date", date),
	)
	m.publish(ctx, notifications.EventImpactPlanned, eventPayload(impact))
	return impact, nil
}

// RecordImpactEvaluation stores the impact assessment.
func (m *Manager) RecordImpactEvaluation(ctx context.Context, id string, in ImpactEvaluationInput) (*appointments.Appointment, error) {
	appt, err := m.apply(ctx, id, appointments.TransitionRecordImpactEvaluation, func(a *appointments.Appointment) error {
		return a.SetImpactEvaluation(in)
	})
	if err != nil {
		return nil, err
	}
	payload := eventPayload(appt)
	payload["satisfaction"] = in.Satisfaction
	m.publish(ctx, notifications.EventImpactEvaluated, payload)
	return appt, nil
}

// CloseImpact closes an evaluated impact appointment.
func (m *Manager) CloseImpact(ctx context.Context, id string) (*appointments.Appointment, error) {
	appt, err := m.apply(ctx, id, appointments.TransitionCloseImpact, nil)
	if err != nil {
		return nil, err
	}
	m.publish(ctx, notifications.EventImpactClosed, eventPayload(appt))
	return appt, nil
}

// GenerateImpactReport returns the report locator of an evaluated impact
// appointment. It does not change state.
func (m *Manager) GenerateImpactReport(ctx context.Context, id string) (ImpactReport, error) {
	transition := appointments.TransitionGenerateImpactReport
	ctx = m.scope(ctx, id, transition)
	logger := logging.WithContext(ctx, m.logger)

	appt, err := m.repo.Load(ctx, id)
	if err != nil {
		return ImpactReport{}, err
	}
	if _, err := appointments.Target(appt, transition); err != nil {
		m.reject(logger, appt, err)
		return ImpactReport{}, err
	}
	return ImpactReport{
		AppointmentID: appt.ID,
		RapportURL:    fmt.Sprintf("%s/%s", m.reportBase, appt.ID),
	}, nil
}

// apply runs one table-driven transition. mutate works on a scratch copy; the
// stored record changes only if the conditional save succeeds.
func (m *Manager) apply(ctx context.Context, id string, transition appointments.Transition, mutate func(*appointments.Appointment) error) (*appointments.Appointment, error) {
	ctx = m.scope(ctx, id, transition)
	logger := logging.WithContext(ctx, m.logger)

	current, err := m.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	target, err := appointments.Target(current, transition)
	if err != nil {
		m.reject(logger, current, err)
		return nil, err
	}

	next := current.Clone()
	if mutate != nil {
		if err := mutate(next); err != nil {
			m.reject(logger, current, err)
			return nil, err
		}
	}
	next.Status = target
	if err := m.save(ctx, next, current.Status, transition); err != nil {
		return nil, err
	}

	logger.Info("appointment transitioned",
		logging.String("from", string(current.Status)),
		logging.String(logging.FieldStatus, string(next.Status)),
	)
	return next, nil
}

// save writes next conditioned on expected. A lost race is reported as a
// TransitionError carrying the status found after the race.
func (m *Manager) save(ctx context.Context, next *appointments.Appointment, expected appointments.Status, transition appointments.Transition) error {
	err := m.repo.Save(ctx, next, expected)
	if err == nil {
		return nil
	}
	if !errors.Is(err, appointments.ErrStale) {
		return services.Wrap(services.ErrTransient, "lifecycle", string(transition), "save appointment", err)
	}
	state := expected
	if reloaded, loadErr := m.repo.Load(ctx, next.ID); loadErr == nil {
		state = reloaded.Status
	}
	terr := &appointments.TransitionError{CurrentState: state, AttemptedTransition: transition}
	logging.WarnWithContext(logging.WithContext(ctx, m.logger), "transition lost concurrent update", "transition_conflict",
		logging.String(logging.FieldStatus, string(state)),
		logging.String(logging.FieldErrorHint, "reload the appointment and retry"),
	)
	return terr
}

func (m *Manager) discard(ctx context.Context, logger *slog.Logger, result generation.Result) {
	if err := m.generator.Discard(ctx, result); err != nil {
		logging.ErrorWithContext(logger, "discard generated documents failed", "generation_discard_failed",
			logging.String("program_id", result.ProgramID),
			logging.String("dossier_id", result.DossierID),
			logging.Error(err),
		)
	}
}

func (m *Manager) reject(logger *slog.Logger, current *appointments.Appointment, err error) {
	logging.WarnWithContext(logger, "transition rejected", "transition_rejected",
		logging.String(logging.FieldStatus, string(current.Status)),
		logging.String("category", services.Category(err)),
		logging.Error(err),
	)
}

func (m *Manager) scope(ctx context.Context, id string, transition appointments.Transition) context.Context {
	ctx = services.WithAppointmentID(ctx, id)
	return services.WithTransition(ctx, string(transition))
}

func (m *Manager) publish(ctx context.Context, event notifications.Event, payload notifications.Payload) {
	if err := m.notifier.Publish(ctx, event, payload); err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, m.logger), "notification failed", "notification_failed",
			logging.String(logging.FieldEventType, string(event)),
			logging.Error(err),
		)
	}
}

func eventPayload(a *appointments.Appointment) notifications.Payload {
	payload := notifications.Payload{
		"id":          a.ID,
		"reference":   a.Reference(),
		"participant": strings.TrimSpace(a.Participant.FirstName + " " + strings.ToUpper(a.Participant.LastName)),
		"status":      string(a.Status),
		"channel":     string(a.Channel),
	}
	if a.ScheduledAt != nil {
		payload["scheduledAt"] = a.ScheduledAt.Format("02/01/2006 15:04")
	}
	return payload
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
