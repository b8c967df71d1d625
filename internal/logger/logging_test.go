package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "kompositum", log.WarnLevel)

	l.Info("hidden")
	l.Warn("dictionary missing", "path", "words.txt")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "dictionary missing") || !strings.Contains(out, "kompositum") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"error", log.ErrorLevel},
		{"nonsense", log.InfoLevel},
	}

	for _, tt := range tests {
		if got := SetLevel(tt.input); got != tt.expected {
			t.Errorf("SetLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
		if log.GetLevel() != tt.expected {
			t.Errorf("global level after SetLevel(%q) = %v, want %v", tt.input, log.GetLevel(), tt.expected)
		}
	}
}
