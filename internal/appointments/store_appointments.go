package appointments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows List results. Zero values match everything.
type ListFilter struct {
	Statuses []Status
	Kind     Kind
	ParentID string
}

// Create inserts a new appointment and returns its id. A missing id is
// generated; the version starts at 1.
func (s *Store) Create(ctx context.Context, a *Appointment) (string, error) {
	if a == nil {
		return "", errors.New("create appointment: nil appointment")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = a.CreatedAt
	a.Version = 1

	_, err := s.execWithRetry(ctx,
		`INSERT INTO appointments (`+appointmentColumns+`)
         VALUES (`+makePlaceholders(25)+`)`,
		a.ID,
		a.Kind,
		a.Status,
		a.Version,
		nullableString(a.Participant.FirstName),
		nullableString(a.Participant.LastName),
		nullableString(a.Participant.Email),
		nullableString(a.Participant.Phone),
		nullableString(a.Participant.Situation),
		nullableString(a.Participant.Objectives),
		nullableString(a.Participant.CurrentLevel),
		nullableTime(a.ScheduledAt),
		nullableString(string(a.Channel)),
		nullableString(a.Synthesis),
		nullableString(a.Notes),
		nullableString(a.Comments),
		nullableString(a.ProgramID),
		nullableString(a.DossierID),
		nullableString(a.ParentID),
		nullableInt(a.Satisfaction),
		nullableString(a.CompetencesAppliquees),
		nullableString(a.Ameliorations),
		nullableString(a.ImpactComments),
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("insert appointment: %w", err)
	}
	return a.ID, nil
}

// Load fetches an appointment by id. It returns ErrNotFound when absent.
func (s *Store) Load(ctx context.Context, id string) (*Appointment, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id)
	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	return a, nil
}

// Save writes every mutable field of a, conditioned on the stored row still
// having the expected status and a's version. On success a.Version is
// incremented. A failed precondition yields ErrStale and changes nothing.
func (s *Store) Save(ctx context.Context, a *Appointment, expected Status) error {
	if a == nil {
		return errors.New("save appointment: nil appointment")
	}
	now := time.Now().UTC()
	res, err := s.execWithRetry(ctx,
		`UPDATE appointments SET
            status = ?, version = version + 1,
            first_name = ?, last_name = ?, email = ?, phone = ?,
            situation = ?, objectives = ?, current_level = ?,
            scheduled_at = ?, channel = ?,
            synthesis = ?, notes = ?, comments = ?,
            program_id = ?, dossier_id = ?, parent_id = ?,
            satisfaction = ?, competences_appliquees = ?, ameliorations = ?, impact_comments = ?,
            updated_at = ?
         WHERE id = ? AND status = ? AND version = ?`,
		a.Status,
		nullableString(a.Participant.FirstName),
		nullableString(a.Participant.LastName),
		nullableString(a.Participant.Email),
		nullableString(a.Participant.Phone),
		nullableString(a.Participant.Situation),
		nullableString(a.Participant.Objectives),
		nullableString(a.Participant.CurrentLevel),
		nullableTime(a.ScheduledAt),
		nullableString(string(a.Channel)),
		nullableString(a.Synthesis),
		nullableString(a.Notes),
		nullableString(a.Comments),
		nullableString(a.ProgramID),
		nullableString(a.DossierID),
		nullableString(a.ParentID),
		nullableInt(a.Satisfaction),
		nullableString(a.CompetencesAppliquees),
		nullableString(a.Ameliorations),
		nullableString(a.ImpactComments),
		formatTime(now),
		a.ID,
		expected,
		a.Version,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update appointment rows: %w", err)
	}
	if affected == 0 {
		if _, loadErr := s.Load(ctx, a.ID); errors.Is(loadErr, ErrNotFound) {
			return loadErr
		}
		return fmt.Errorf("%w: %s", ErrStale, a.ID)
	}
	a.Version++
	a.UpdatedAt = now
	return nil
}

// List returns appointments matching filter, oldest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]*Appointment, error) {
	ctx = ensureContext(ctx)
	var (
		clauses []string
		args    []any
	)
	if len(filter.Statuses) > 0 {
		clauses = append(clauses, "status IN ("+makePlaceholders(len(filter.Statuses))+")")
		for _, status := range filter.Statuses {
			args = append(args, status)
		}
	}
	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, filter.Kind)
	}
	if filter.ParentID != "" {
		clauses = append(clauses, "parent_id = ?")
		args = append(args, filter.ParentID)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var out []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return out, nil
}
