package services

import "context"

type contextKey string

const (
	appointmentIDKey contextKey = "appointment_id"
	transitionKey    contextKey = "transition"
	requestIDKey     contextKey = "request_id"
)

// WithAppointmentID annotates context with the appointment identifier.
func WithAppointmentID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, appointmentIDKey, id)
}

// AppointmentIDFromContext extracts the appointment identifier if present.
func AppointmentIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(appointmentIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTransition annotates context with the lifecycle transition being applied.
func WithTransition(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, transitionKey, name)
}

// TransitionFromContext returns the transition name if present.
func TransitionFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(transitionKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
