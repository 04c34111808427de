package notifications_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rendezvous/internal/config"
	"rendezvous/internal/notifications"
)

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = ""
	svc := notifications.NewService(&cfg)
	if err := svc.Publish(context.Background(), notifications.EventAppointmentCancelled, notifications.Payload{"participant": "Léa MARTIN"}); err != nil {
		t.Fatalf("expected noop notifier to return nil, got %v", err)
	}
}

func TestNtfyServiceFormatsPayloads(t *testing.T) {
	tests := []struct {
		name           string
		event          notifications.Event
		payload        notifications.Payload
		expectTitle    string
		expectMessage  string
		expectTags     string
		expectPriority string
	}{
		{
			name:  "validated",
			event: notifications.EventAppointmentValidated,
			payload: notifications.Payload{
				"participant": "Léa MARTIN",
				"channel":     "visio",
				"scheduledAt": "09/03/2026 10:00",
			},
			expectTitle:   "Rendez-vous - Confirmé",
			expectMessage: "📅 Rendez-vous confirmé : Léa MARTIN\n09/03/2026 10:00",
			expectTags:    "rendezvous,validate,visio",
		},
		{
			name:  "cancelled without reason",
			event: notifications.EventAppointmentCancelled,
			payload: notifications.Payload{
				"participant": "Léa MARTIN",
			},
			expectTitle:   "Rendez-vous - Annulé",
			expectMessage: "🚫 Rendez-vous annulé : Léa MARTIN",
			expectTags:    "rendezvous,cancel",
		},
		{
			name:  "program generated",
			event: notifications.EventProgramGenerated,
			payload: notifications.Payload{
				"participant": "Léa MARTIN",
				"reference":   "0F3A9C1E",
			},
			expectTitle:   "Rendez-vous - Programme généré",
			expectMessage: "📄 Programme et dossier générés : Léa MARTIN (0F3A9C1E)",
			expectTags:    "rendezvous,program,generated",
		},
		{
			name:  "impact evaluated",
			event: notifications.EventImpactEvaluated,
			payload: notifications.Payload{
				"participant":  "Léa MARTIN",
				"satisfaction": 4,
			},
			expectTitle:   "Rendez-vous - Impact évalué",
			expectMessage: "⭐ Évaluation d'impact : Léa MARTIN (satisfaction 4)",
			expectTags:    "rendezvous,impact,evaluated",
		},
		{
			name:  "error",
			event: notifications.EventError,
			payload: notifications.Payload{
				"context": "generate_program_and_dossier",
				"error":   "catalog unavailable",
			},
			expectTitle:    "Rendez-vous - Erreur",
			expectMessage:  "❌ Erreur (generate_program_and_dossier) : catalog unavailable",
			expectTags:     "rendezvous,error,alert",
			expectPriority: "high",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var captured struct {
				title    string
				tags     string
				priority string
				body     string
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("unexpected method: %s", r.Method)
				}
				captured.title = r.Header.Get("Title")
				captured.tags = r.Header.Get("Tags")
				captured.priority = r.Header.Get("Priority")
				body, err := io.ReadAll(r.Body)
				if err != nil {
					t.Errorf("read body: %v", err)
				}
				captured.body = string(body)
				_ = r.Body.Close()
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			cfg := config.Default()
			cfg.Notifications.NtfyTopic = server.URL
			cfg.Notifications.RequestTimeout = 5

			svc := notifications.NewService(&cfg)
			if err := svc.Publish(context.Background(), tc.event, tc.payload); err != nil {
				t.Fatalf("notification returned error: %v", err)
			}

			if captured.title != tc.expectTitle {
				t.Fatalf("expected title %q, got %q", tc.expectTitle, captured.title)
			}
			if captured.body != tc.expectMessage {
				t.Fatalf("expected message %q, got %q", tc.expectMessage, captured.body)
			}
			if captured.tags != tc.expectTags {
				t.Fatalf("expected tags %q, got %q", tc.expectTags, captured.tags)
			}
			if captured.priority != tc.expectPriority {
				t.Fatalf("expected priority %q, got %q", tc.expectPriority, captured.priority)
			}
		})
	}
}

func TestNtfyServiceIgnoresSuppressedEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected call for suppressed event: %s", r.URL.String())
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	cfg.Notifications.Cancellation = false

	svc := notifications.NewService(&cfg)
	suppressed := []notifications.Event{
		notifications.EventAppointmentCancelled,
		notifications.EventSynthesisRecorded,
		notifications.Event("unknown"),
	}
	for _, event := range suppressed {
		if err := svc.Publish(context.Background(), event, notifications.Payload{"participant": "ignored"}); err != nil {
			t.Fatalf("expected no error for suppressed event %s, got %v", event, err)
		}
	}
}

func TestNtfyServiceReportsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic locked", http.StatusForbidden)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL

	err := notifications.NewService(&cfg).Publish(context.Background(), notifications.EventTest, nil)
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected 403 error, got %v", err)
	}
}
