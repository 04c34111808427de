package appointments

import (
	"errors"
	"fmt"

	"rendezvous/internal/services"
)

var (
	// ErrNotFound is returned when no appointment has the requested id.
	ErrNotFound = fmt.Errorf("appointment %w", services.ErrNotFound)
	// ErrStale is returned by Store.Save when the stored status or version no
	// longer matches the caller's expectation.
	ErrStale = fmt.Errorf("appointment changed since load: %w", services.ErrConflict)
)

// TransitionError reports an attempt to apply a transition outside its
// declared source states.
type TransitionError struct {
	CurrentState        Status
	AttemptedTransition Transition
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s appointment in status %s", e.AttemptedTransition, e.CurrentState)
}

func (e *TransitionError) Unwrap() error {
	return services.ErrInvalidTransition
}

// ValidationError reports a missing or malformed field at a transition boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return services.ErrValidation
}

// AsTransitionError extracts a TransitionError from err.
func AsTransitionError(err error) (*TransitionError, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
