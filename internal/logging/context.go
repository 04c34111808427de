package logging

import (
	"context"
	"log/slog"

	"rendezvous/internal/services"
)

const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldAppointmentID is the structured logging key for appointment identifiers.
	FieldAppointmentID = "appointment_id"
	// FieldTransition is the structured logging key for lifecycle transition names.
	FieldTransition = "transition"
	// FieldStatus is the structured logging key for appointment statuses.
	FieldStatus = "status"
	// FieldCorrelationID is the structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact describes the user-facing consequence of a warning.
	FieldImpact = "impact"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.AppointmentIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldAppointmentID, id))
	}
	if name, ok := services.TransitionFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldTransition, name))
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
