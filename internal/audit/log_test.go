package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"studenthub.org/internal/auth"
	"studenthub.org/internal/obs"
)

func TestLogEvent(t *testing.T) {
	logger := obs.Logger()
	original := logger.Writer()
	logger.SetFlags(0)
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(original)

	ctx := context.Background()
	ctx = WithRequestID(ctx, "req-123")
	ctx = auth.ContextWithAccount(ctx, &auth.Account{ID: 42, Email: "alice@x.edu", Role: auth.RoleAdmin})

	if err := LogEvent(ctx, "dashboard.event.create", map[string]any{"event_id": 7}); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	line := buf.String()
	if line == "" {
		t.Fatal("expected log output")
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log not valid JSON: %v", err)
	}
	if entry["type"] != "audit" {
		t.Fatalf("unexpected type: %v", entry["type"])
	}
	if entry["event"] != "dashboard.event.create" {
		t.Fatalf("unexpected event: %v", entry["event"])
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("unexpected request id: %v", entry["request_id"])
	}
	if entry["account_email"] != "alice@x.edu" {
		t.Fatalf("unexpected account email: %v", entry["account_email"])
	}
	if entry["account_role"] != "ADMIN" {
		t.Fatalf("unexpected account role: %v", entry["account_role"])
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["event_id"] != float64(7) {
		t.Fatalf("fields missing or incorrect: %v", entry["fields"])
	}
}

func TestLogEventRequiresName(t *testing.T) {
	if err := LogEvent(context.Background(), "   ", nil); err == nil {
		t.Fatal("expected error for empty event name")
	}
}
