package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("api", &buf)

	l.Info("request served", F("path", "/students"), F("status", 200))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["level"] != "info" || entry["msg"] != "request served" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if entry["component"] != "api" {
		t.Errorf("expected component api, got %v", entry["component"])
	}
	fields, ok := entry["fields"].(map[string]any)
	if !ok || fields["path"] != "/students" {
		t.Errorf("fields missing: %v", entry)
	}
}

func TestLogger_NoFieldsOmitsBlock(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("", &buf)

	l.Warn("plain message")

	if strings.Contains(buf.String(), `"fields"`) {
		t.Errorf("empty fields must be omitted: %s", buf.String())
	}
	if strings.Contains(buf.String(), `"component"`) {
		t.Errorf("empty component must be omitted: %s", buf.String())
	}
}

func TestLogger_WithChangesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("root", &buf)

	l.With("child").Error("boom")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["component"] != "child" || entry["level"] != "error" {
		t.Errorf("unexpected entry: %v", entry)
	}
}
