package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "json", &buf)
	log.Info().Str("set", "fixtures").Int("points", 6).Msg("plotted")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if entry["message"] != "plotted" || entry["set"] != "fixtures" || entry["level"] != "info" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", "json", &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("level filter not applied: %q", out)
	}
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("loud", "console", &buf)
	log.Debug().Msg("debug line")
	log.Info().Msg("info line")

	out := buf.String()
	if strings.Contains(out, "debug line") || !strings.Contains(out, "info line") {
		t.Errorf("unexpected console output: %q", out)
	}
}
