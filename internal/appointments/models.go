package appointments

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle position of an appointment.
type Status string

const (
	StatusNew              Status = "new"
	StatusScheduled        Status = "scheduled"
	StatusConducted        Status = "conducted"
	StatusProgramGenerated Status = "program_generated"
	StatusCancelled        Status = "cancelled"
	StatusImpactScheduled  Status = "impact_scheduled"
	StatusImpactEvaluated  Status = "impact_evaluated"
	StatusImpactClosed     Status = "impact_closed"
)

var allStatuses = []Status{
	StatusNew,
	StatusScheduled,
	StatusConducted,
	StatusProgramGenerated,
	StatusCancelled,
	StatusImpactScheduled,
	StatusImpactEvaluated,
	StatusImpactClosed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns every known status in lifecycle order.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ParseStatus converts a string to a Status.
func ParseStatus(value string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	_, ok := statusSet[status]
	return status, ok
}

// Kind distinguishes positioning appointments from impact follow-ups.
type Kind string

const (
	KindStandard Kind = "standard"
	KindImpact   Kind = "impact"
)

// Channel is how the appointment takes place.
type Channel string

const (
	ChannelVisio      Channel = "visio"
	ChannelTelephone  Channel = "telephone"
	ChannelPresentiel Channel = "presentiel"
)

var channelAliases = map[string]Channel{
	"visio":        ChannelVisio,
	"remote video": ChannelVisio,
	"video":        ChannelVisio,
	"telephone":    ChannelTelephone,
	"téléphone":    ChannelTelephone,
	"phone":        ChannelTelephone,
	"presentiel":   ChannelPresentiel,
	"présentiel":   ChannelPresentiel,
	"in person":    ChannelPresentiel,
}

// ParseChannel accepts canonical channel names and their common aliases.
func ParseChannel(value string) (Channel, error) {
	key := strings.ToLower(strings.Join(strings.Fields(value), " "))
	if ch, ok := channelAliases[key]; ok {
		return ch, nil
	}
	return "", &ValidationError{Field: "channel", Message: fmt.Sprintf("unknown channel %q", value)}
}

// Label returns the French label printed on documents.
func (c Channel) Label() string {
	switch c {
	case ChannelVisio:
		return "Visioconférence"
	case ChannelTelephone:
		return "Téléphone"
	case ChannelPresentiel:
		return "Présentiel"
	default:
		return ""
	}
}

// Participant is the intake snapshot of the trainee.
type Participant struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Situation    string
	Objectives   string
	CurrentLevel string
}

// Validate checks the fields required at intake.
func (p Participant) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &ValidationError{Field: "participant.first_name", Message: "is required"}
	}
	if strings.TrimSpace(p.LastName) == "" {
		return &ValidationError{Field: "participant.last_name", Message: "is required"}
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return &ValidationError{Field: "participant.email", Message: "is not an email address"}
	}
	return nil
}

// ImpactEvaluation is the post-training assessment recorded on an impact appointment.
type ImpactEvaluation struct {
	Satisfaction          int
	CompetencesAppliquees string
	Ameliorations         string
	Commentaires          string
}

const (
	MinSatisfaction = 1
	MaxSatisfaction = 5
)

// Appointment is a positioning or impact appointment with one trainee.
type Appointment struct {
	ID          string
	Kind        Kind
	Status      Status
	Version     int64
	Participant Participant

	ScheduledAt *time.Time
	Channel     Channel

	Synthesis string
	Notes     string
	Comments  string

	ProgramID string
	DossierID string
	ParentID  string

	Satisfaction          *int
	CompetencesAppliquees string
	Ameliorations         string
	ImpactComments        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reference is the short human reference used in document filenames.
func (a *Appointment) Reference() string {
	compact := strings.ReplaceAll(a.ID, "-", "")
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return strings.ToUpper(compact)
}

// HasDocuments reports whether the program and dossier have been issued.
func (a *Appointment) HasDocuments() bool {
	return a.ProgramID != "" && a.DossierID != ""
}

// SetDocuments records the generated program and dossier. Both identifiers are
// required: the pair is set together or not at all.
func (a *Appointment) SetDocuments(programID, dossierID string) error {
	if programID == "" || dossierID == "" {
		return &ValidationError{Field: "documents", Message: "program and dossier ids must be set together"}
	}
	a.ProgramID = programID
	a.DossierID = dossierID
	return nil
}

// SetImpactEvaluation writes the impact fields. It rejects standard appointments.
func (a *Appointment) SetImpactEvaluation(eval ImpactEvaluation) error {
	if a.Kind != KindImpact {
		return &ValidationError{Field: "kind", Message: "impact fields are only writable on impact appointments"}
	}
	if eval.Satisfaction < MinSatisfaction || eval.Satisfaction > MaxSatisfaction {
		return &ValidationError{
			Field:   "satisfaction",
			Message: fmt.Sprintf("must be between %d and %d", MinSatisfaction, MaxSatisfaction),
		}
	}
	score := eval.Satisfaction
	a.Satisfaction = &score
	a.CompetencesAppliquees = eval.CompetencesAppliquees
	a.Ameliorations = eval.Ameliorations
	a.ImpactComments = eval.Commentaires
	return nil
}

// AppendComment adds a line to the free-text comment log.
func (a *Appointment) AppendComment(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if a.Comments == "" {
		a.Comments = text
		return
	}
	a.Comments += "\n" + text
}

// Clone returns a deep copy so transitions can work on a scratch value.
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	clone := *a
	if a.ScheduledAt != nil {
		at := *a.ScheduledAt
		clone.ScheduledAt = &at
	}
	if a.Satisfaction != nil {
		score := *a.Satisfaction
		clone.Satisfaction = &score
	}
	return &clone
}
