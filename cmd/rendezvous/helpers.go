package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rendezvous/internal/appointments"
	"rendezvous/internal/services"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
	"2006-01-02",
	"02/01/2006",
}

// parseDateTime accepts ISO and French day-first layouts in local time.
func parseDateTime(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, &appointments.ValidationError{Field: field, Message: fmt.Sprintf("unrecognised date %q", value)}
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("02/01/2006 15:04")
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError renders an error with its category for terminal output.
func describeError(err error) string {
	if te, ok := appointments.AsTransitionError(err); ok {
		return fmt.Sprintf("cannot %s: appointment is %s", te.AttemptedTransition, te.CurrentState)
	}
	if ve, ok := appointments.AsValidationError(err); ok {
		return fmt.Sprintf("invalid %s: %s", ve.Field, ve.Message)
	}
	return fmt.Sprintf("%s: %v", services.Category(err), err)
}
