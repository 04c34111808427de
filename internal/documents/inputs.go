package documents

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Organization identifies the training organization issuing a document.
type Organization struct {
	Name              string `json:"name"`
	Address           string `json:"address"`
	City              string `json:"city"`
	Siret             string `json:"siret"`
	DeclarationNumber string `json:"declaration_number"`
	Representative    string `json:"representative"`
	Email             string `json:"email"`
}

// Trainee is the participant named on a document.
type Trainee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DisplayName formats the trainee as "Prénom NOM".
func (t Trainee) DisplayName() string {
	first := cases.Title(language.French).String(strings.TrimSpace(t.FirstName))
	last := cases.Upper(language.French).String(strings.TrimSpace(t.LastName))
	return strings.TrimSpace(first + " " + last)
}

// AgreementInput feeds the training agreement.
type AgreementInput struct {
	Reference    string       `json:"reference"`
	Organization Organization `json:"organization"`
	Trainee      Trainee      `json:"trainee"`
	Title        string       `json:"title"`
	Objet        string       `json:"objet"`
	Objectifs    string       `json:"objectifs"`
	Contenu      string       `json:"contenu"`
	Duree        string       `json:"duree"`
	Dates        string       `json:"dates"`
	Modalites    string       `json:"modalites"`
	Tarif        string       `json:"tarif"`
	Annulation   string       `json:"annulation"`
	SignedAt     string       `json:"signed_at"`
}

// DetailedProgramInput feeds the detailed program.
type DetailedProgramInput struct {
	Reference             string       `json:"reference"`
	Organization          Organization `json:"organization"`
	Title                 string       `json:"title"`
	PublicVise            string       `json:"public_vise"`
	Prerequis             string       `json:"prerequis"`
	ObjectifsSpecifiques  string       `json:"objectifs_specifiques"`
	Contenu               string       `json:"contenu"`
	Duree                 string       `json:"duree"`
	ModalitesPedagogiques string       `json:"modalites_pedagogiques"`
	Moyens                string       `json:"moyens"`
	EvaluationPrevue      string       `json:"evaluation_prevue"`
	Accessibilite         string       `json:"accessibilite"`
	Formateur             string       `json:"formateur"`
}

// AttendanceInput feeds the attendance sheet.
type AttendanceInput struct {
	Reference    string       `json:"reference"`
	Organization Organization `json:"organization"`
	Trainee      Trainee      `json:"trainee"`
	Title        string       `json:"title"`
	Dates        string       `json:"dates"`
	Lieu         string       `json:"lieu"`
	Formateur    string       `json:"formateur"`
}

// ProgramInput feeds the personalised training program. It is derived from the
// participant snapshot and the appointment synthesis only.
type ProgramInput struct {
	Reference    string  `json:"reference"`
	Title        string  `json:"title"`
	Trainee      Trainee `json:"trainee"`
	Situation    string  `json:"situation"`
	Objectives   string  `json:"objectives"`
	CurrentLevel string  `json:"current_level"`
	Synthesis    string  `json:"synthesis"`
	Channel      string  `json:"channel"`
}

// DossierInput feeds the regulatory dossier.
type DossierInput struct {
	Reference       string       `json:"reference"`
	Organization    Organization `json:"organization"`
	Trainee         Trainee      `json:"trainee"`
	Title           string       `json:"title"`
	Situation       string       `json:"situation"`
	Objectives      string       `json:"objectives"`
	CurrentLevel    string       `json:"current_level"`
	Synthesis       string       `json:"synthesis"`
	PositioningDate string       `json:"positioning_date"`
	Channel         string       `json:"channel"`
}

// ImpactReportInput feeds the post-training impact report.
type ImpactReportInput struct {
	Reference             string       `json:"reference"`
	Organization          Organization `json:"organization"`
	Trainee               Trainee      `json:"trainee"`
	Satisfaction          string       `json:"satisfaction"`
	CompetencesAppliquees string       `json:"competences_appliquees"`
	Ameliorations         string       `json:"ameliorations"`
	Commentaires          string       `json:"commentaires"`
	EvaluatedAt           string       `json:"evaluated_at"`
}

// Bundle groups the three documents issued together for one appointment.
type Bundle struct {
	Agreement       AgreementInput
	DetailedProgram DetailedProgramInput
	Attendance      AttendanceInput
}
