package appointments

import (
	"database/sql"
	"errors"
	"time"
)

const appointmentColumns = "id, kind, status, version, first_name, last_name, email, phone, situation, objectives, current_level, scheduled_at, channel, synthesis, notes, comments, program_id, dossier_id, parent_id, satisfaction, competences_appliquees, ameliorations, impact_comments, created_at, updated_at"

func scanAppointment(scanner interface{ Scan(dest ...any) error }) (*Appointment, error) {
	var (
		a              Appointment
		kind           string
		status         string
		firstName      sql.NullString
		lastName       sql.NullString
		email          sql.NullString
		phone          sql.NullString
		situation      sql.NullString
		objectives     sql.NullString
		currentLevel   sql.NullString
		scheduledRaw   sql.NullString
		channel        sql.NullString
		synthesis      sql.NullString
		notes          sql.NullString
		comments       sql.NullString
		programID      sql.NullString
		dossierID      sql.NullString
		parentID       sql.NullString
		satisfaction   sql.NullInt64
		competences    sql.NullString
		ameliorations  sql.NullString
		impactComments sql.NullString
		createdRaw     string
		updatedRaw     string
	)

	if err := scanner.Scan(
		&a.ID,
		&kind,
		&status,
		&a.Version,
		&firstName,
		&lastName,
		&email,
		&phone,
		&situation,
		&objectives,
		&currentLevel,
		&scheduledRaw,
		&channel,
		&synthesis,
		&notes,
		&comments,
		&programID,
		&dossierID,
		&parentID,
		&satisfaction,
		&competences,
		&ameliorations,
		&impactComments,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	a.Kind = Kind(kind)
	a.Status = Status(status)
	a.Participant = Participant{
		FirstName:    firstName.String,
		LastName:     lastName.String,
		Email:        email.String,
		Phone:        phone.String,
		Situation:    situation.String,
		Objectives:   objectives.String,
		CurrentLevel: currentLevel.String,
	}
	a.Channel = Channel(channel.String)
	a.Synthesis = synthesis.String
	a.Notes = notes.String
	a.Comments = comments.String
	a.ProgramID = programID.String
	a.DossierID = dossierID.String
	a.ParentID = parentID.String
	a.CompetencesAppliquees = competences.String
	a.Ameliorations = ameliorations.String
	a.ImpactComments = impactComments.String

	if satisfaction.Valid {
		score := int(satisfaction.Int64)
		a.Satisfaction = &score
	}
	if scheduledRaw.Valid {
		if at, err := parseTimeString(scheduledRaw.String); err == nil {
			a.ScheduledAt = &at
		}
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		a.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		a.UpdatedAt = updated
	}
	return &a, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
