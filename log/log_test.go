package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf)
	l.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "key=value") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestMake_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON))
	l.Info("hello", "key", "value")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if record["msg"] != "hello" || record["key"] != "value" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestMake_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(slog.LevelWarn))
	l.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("info record not filtered: %q", buf.String())
	}

	l.Warn("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestZeroLogger_Safe(t *testing.T) {
	var l Logger

	// Must not panic.
	l.LogAttrs(context.Background(), slog.LevelInfo, "nothing")

	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("zero logger reports enabled")
	}
}

func TestWrap_Attrs(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf).Wrap(slog.String("component", "parser"))
	l.Info("hello")

	if !strings.Contains(buf.String(), "component=parser") {
		t.Errorf("wrapped attr missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("json not recognized")
	}

	if ParseFormat("JSON") != FormatJSON {
		t.Error("format is not case-insensitive")
	}

	if ParseFormat("text") != FormatText {
		t.Error("text not recognized")
	}
}
