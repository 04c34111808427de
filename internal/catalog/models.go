package catalog

import (
	"time"

	"gorm.io/datatypes"

	"rendezvous/internal/documents"
)

// TrainingProgram is a personalised program issued for one appointment.
type TrainingProgram struct {
	ID            string                                   `gorm:"type:varchar(36);primaryKey" json:"id"`
	AppointmentID string                                   `gorm:"type:varchar(36);not null;index" json:"appointment_id"`
	Reference     string                                   `gorm:"type:varchar(16);not null" json:"reference"`
	Title         string                                   `gorm:"type:text" json:"title"`
	RenderTarget  string                                   `gorm:"type:text;not null" json:"render_target"`
	Input         datatypes.JSONType[documents.ProgramInput] `json:"input"`
	CreatedAt     time.Time                                `json:"created_at"`
	UpdatedAt     time.Time                                `json:"updated_at"`
}

func (TrainingProgram) TableName() string { return "training_programs" }

// Dossier is the regulatory record issued alongside a program.
type Dossier struct {
	ID            string                                   `gorm:"type:varchar(36);primaryKey" json:"id"`
	AppointmentID string                                   `gorm:"type:varchar(36);not null;index" json:"appointment_id"`
	Reference     string                                   `gorm:"type:varchar(16);not null" json:"reference"`
	Title         string                                   `gorm:"type:text" json:"title"`
	RenderTarget  string                                   `gorm:"type:text;not null" json:"render_target"`
	Input         datatypes.JSONType[documents.DossierInput] `json:"input"`
	CreatedAt     time.Time                                `json:"created_at"`
	UpdatedAt     time.Time                                `json:"updated_at"`
}

func (Dossier) TableName() string { return "dossiers" }
