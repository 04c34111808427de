package generation

import (
	"fmt"

	"rendezvous/internal/services"
)

// Step identifies which half of the generation failed.
type Step string

const (
	StepProgram Step = "program"
	StepDossier Step = "dossier"
)

// GenerationError reports a failed program or dossier creation.
type GenerationError struct {
	Step Step
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Step, e.Err)
}

// Unwrap exposes both the generation marker and the underlying cause.
func (e *GenerationError) Unwrap() []error {
	return []error{services.ErrGeneration, e.Err}
}
