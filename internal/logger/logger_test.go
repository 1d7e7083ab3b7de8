package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

type testLogConfig struct {
	level  string
	format string
}

func (c testLogConfig) Level() string  { return c.level }
func (c testLogConfig) Format() string { return c.format }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(testLogConfig{level: "info", format: "json"}, &buf)

	cl := Component(l, "slots")
	cl.Info().Msg("spin")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "slots" {
		t.Errorf("expected component 'slots', got %v", entry["component"])
	}
	if entry["message"] != "spin" {
		t.Errorf("expected message 'spin', got %v", entry["message"])
	}
}
