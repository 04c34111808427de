package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"rendezvous/internal/appointments"
)

// appointmentView is the JSON shape printed by --json. Private notes are
// omitted.
type appointmentView struct {
	ID                    string     `json:"id"`
	Reference             string     `json:"reference"`
	Kind                  string     `json:"kind"`
	Status                string     `json:"status"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	ScheduledAt           *time.Time `json:"scheduledAt,omitempty"`
	Channel               string     `json:"channel,omitempty"`
	Synthesis             string     `json:"synthesis,omitempty"`
	Comments              string     `json:"comments,omitempty"`
	ProgramID             string     `json:"programId,omitempty"`
	DossierID             string     `json:"dossierId,omitempty"`
	ParentID              string     `json:"rendezvousParentId,omitempty"`
	Satisfaction          *int       `json:"satisfaction,omitempty"`
	CompetencesAppliquees string     `json:"competencesAppliquees,omitempty"`
	Ameliorations         string     `json:"ameliorations,omitempty"`
	ImpactComments        string     `json:"impactComments,omitempty"`
	Available             []string   `json:"availableTransitions"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func newAppointmentView(a *appointments.Appointment) appointmentView {
	available := appointments.Available(a)
	names := make([]string, len(available))
	for i, t := range available {
		names[i] = string(t)
	}
	return appointmentView{
		ID:                    a.ID,
		Reference:             a.Reference(),
		Kind:                  string(a.Kind),
		Status:                string(a.Status),
		FirstName:             a.Participant.FirstName,
		LastName:              a.Participant.LastName,
		Email:                 a.Participant.Email,
		Phone:                 a.Participant.Phone,
		ScheduledAt:           a.ScheduledAt,
		Channel:               string(a.Channel),
		Synthesis:             a.Synthesis,
		Comments:              a.Comments,
		ProgramID:             a.ProgramID,
		DossierID:             a.DossierID,
		ParentID:              a.ParentID,
		Satisfaction:          a.Satisfaction,
		CompetencesAppliquees: a.CompetencesAppliquees,
		Ameliorations:         a.Ameliorations,
		ImpactComments:        a.ImpactComments,
		Available:             names,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func renderAppointmentList(list []*appointments.Appointment) string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			a.Reference(),
			string(a.Kind),
			string(a.Status),
			strings.TrimSpace(a.Participant.FirstName + " " + a.Participant.LastName),
			formatDateTime(a.ScheduledAt),
			orDash(a.Channel.Label()),
			strconv.FormatInt(a.Version, 10),
		})
	}
	spec := tableSpec{
		headers: []string{"Ref", "Kind", "Status", "Participant", "Date", "Channel", "Ver"},
		numeric: []int{6},
	}
	return spec.render(rows)
}

func printAppointment(w io.Writer, a *appointments.Appointment) {
	fmt.Fprintf(w, "%-14s %s (%s)\n", "Appointment:", a.ID, a.Reference())
	fmt.Fprintf(w, "%-14s %s\n", "Kind:", a.Kind)
	fmt.Fprintf(w, "%-14s %s\n", "Status:", a.Status)
	fmt.Fprintf(w, "%-14s %s %s\n", "Participant:", a.Participant.FirstName, a.Participant.LastName)
	fmt.Fprintf(w, "%-14s %s\n", "Date:", formatDateTime(a.ScheduledAt))
	fmt.Fprintf(w, "%-14s %s\n", "Channel:", orDash(a.Channel.Label()))
	if a.Synthesis != "" {
		fmt.Fprintf(w, "%-14s %s\n", "Synthesis:", a.Synthesis)
	}
	if a.HasDocuments() {
		fmt.Fprintf(w, "%-14s %s\n", "Program:", a.ProgramID)
		fmt.Fprintf(w, "%-14s %s\n", "Dossier:", a.DossierID)
	}
	if a.ParentID != "" {
		fmt.Fprintf(w, "%-14s %s\n", "Parent:", a.ParentID)
	}
	if a.Satisfaction != nil {
		fmt.Fprintf(w, "%-14s %d/%d\n", "Satisfaction:", *a.Satisfaction, appointments.MaxSatisfaction)
	}
	if a.Comments != "" {
		fmt.Fprintf(w, "%-14s %s\n", "Comments:", strings.ReplaceAll(a.Comments, "\n", "; "))
	}
	if next := appointments.Available(a); len(next) > 0 {
		names := make([]string, len(next))
		for i, t := range next {
			names[i] = string(t)
		}
		fmt.Fprintf(w, "%-14s %s\n", "Next:", strings.Join(names, ", "))
	}
}
