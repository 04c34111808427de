package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rendezvous/internal/config"
)

const userAgent = "Rendezvous-Go/0.1.0"

// Event enumerates lifecycle milestones.
type Event string

const (
	EventAppointmentValidated   Event = "appointment_validated"
	EventAppointmentRescheduled Event = "appointment_rescheduled"
	EventAppointmentCancelled   Event = "appointment_cancelled"
	EventSynthesisRecorded      Event = "synthesis_recorded"
	EventProgramGenerated       Event = "program_generated"
	EventImpactPlanned          Event = "impact_planned"
	EventImpactEvaluated        Event = "impact_evaluated"
	EventImpactClosed           Event = "impact_closed"
	EventError                  Event = "error"
	EventTest                   Event = "test"
)

// Payload carries event-specific values.
type Payload map[string]any

// Service publishes lifecycle events.
type Service interface {
	Publish(ctx context.Context, event Event, payload Payload) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		enabled:  enabledEvents(cfg.Notifications),
	}
}

func enabledEvents(n config.Notifications) map[Event]bool {
	return map[Event]bool{
		EventAppointmentValidated:   n.Validation,
		EventAppointmentRescheduled: n.Validation,
		EventAppointmentCancelled:   n.Cancellation,
		EventProgramGenerated:       n.ProgramGenerated,
		EventImpactPlanned:          n.ImpactPlanned,
		EventImpactEvaluated:        n.ImpactEvaluations,
		EventImpactClosed:           n.ImpactEvaluations,
		EventError:                  n.Errors,
		EventTest:                   true,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	enabled  map[Event]bool
}

func (n *ntfyService) Publish(ctx context.Context, event Event, data Payload) error {
	if n == nil || !n.enabled[event] {
		return nil
	}
	msg, ok := format(event, data)
	if !ok {
		return nil
	}
	return n.send(ctx, msg)
}

func format(event Event, data Payload) (payload, bool) {
	name := text(data, "participant")
	when := text(data, "scheduledAt")
	switch event {
	case EventAppointmentValidated:
		return payload{
			title:   "Rendez-vous - Confirmé",
			message: withDetail(fmt.Sprintf("📅 Rendez-vous confirmé : %s", name), when),
			tags:    []string{"rendezvous", "validate", text(data, "channel")},
		}, true
	case EventAppointmentRescheduled:
		return payload{
			title:   "Rendez-vous - Reporté",
			message: withDetail(fmt.Sprintf("🔁 Rendez-vous reporté : %s", name), when),
			tags:    []string{"rendezvous", "reschedule"},
		}, true
	case EventAppointmentCancelled:
		return payload{
			title:   "Rendez-vous - Annulé",
			message: withDetail(fmt.Sprintf("🚫 Rendez-vous annulé : %s", name), text(data, "reason")),
			tags:    []string{"rendezvous", "cancel"},
		}, true
	case EventProgramGenerated:
		return payload{
			title:   "Rendez-vous - Programme généré",
			message: fmt.Sprintf("📄 Programme et dossier générés : %s (%s)", name, text(data, "reference")),
			tags:    []string{"rendezvous", "program", "generated"},
		}, true
	case EventImpactPlanned:
		return payload{
			title:   "Rendez-vous - Impact planifié",
			message: withDetail(fmt.Sprintf("🗓️ Suivi d'impact planifié : %s", name), when),
			tags:    []string{"rendezvous", "impact", "planned"},
		}, true
	case EventImpactEvaluated:
		return payload{
			title:   "Rendez-vous - Impact évalué",
			message: fmt.Sprintf("⭐ Évaluation d'impact : %s (satisfaction %s)", name, text(data, "satisfaction")),
			tags:    []string{"rendezvous", "impact", "evaluated"},
		}, true
	case EventImpactClosed:
		return payload{
			title:   "Rendez-vous - Impact clôturé",
			message: fmt.Sprintf("✅ Suivi d'impact clôturé : %s", name),
			tags:    []string{"rendezvous", "impact", "closed"},
		}, true
	case EventError:
		var builder strings.Builder
		builder.WriteString("❌ Erreur")
		if label := text(data, "context"); label != "" {
			builder.WriteString(" (")
			builder.WriteString(label)
			builder.WriteString(")")
		}
		builder.WriteString(" : ")
		if detail := text(data, "error"); detail != "" {
			builder.WriteString(detail)
		} else {
			builder.WriteString("inconnue")
		}
		return payload{
			title:    "Rendez-vous - Erreur",
			message:  builder.String(),
			tags:     []string{"rendezvous", "error", "alert"},
			priority: "high",
		}, true
	case EventTest:
		return payload{
			title:    "Rendez-vous - Test",
			message:  "🧪 Test des notifications",
			tags:     []string{"rendezvous", "test"},
			priority: "low",
		}, true
	default:
		return payload{}, false
	}
}

func text(data Payload, key string) string {
	if data == nil {
		return ""
	}
	switch v := data[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func withDetail(message, detail string) string {
	if detail == "" {
		return message
	}
	return message + "\n" + detail
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	tags := make([]string, 0, len(data.tags))
	for _, tag := range data.tags {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) > 0 {
		req.Header.Set("Tags", strings.Join(tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) Publish(context.Context, Event, Payload) error { return nil }

// Noop returns a service that drops every event.
func Noop() Service { return noopService{} }
