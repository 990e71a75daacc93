package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"pollywolly.org/internal/obs"
)

func TestLogEvent(t *testing.T) {
	var buf bytes.Buffer
	obs.SetOutput(&buf)
	defer obs.SetOutput(io.Discard)

	ctx := WithSessionID(context.Background(), "sess-123")

	if err := LogEvent(ctx, "audit.test", map[string]any{"foo": "bar"}); err != nil {
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
	if entry["event"] != "audit.test" {
		t.Fatalf("unexpected event: %v", entry["event"])
	}
	if entry["session_id"] != "sess-123" {
		t.Fatalf("unexpected session id: %v", entry["session_id"])
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["foo"] != "bar" {
		t.Fatalf("fields missing or incorrect: %v", entry["fields"])
	}
}

func TestLogEventRequiresName(t *testing.T) {
	if err := LogEvent(context.Background(), "  ", nil); err == nil {
		t.Fatal("expected error for empty event name")
	}
}
