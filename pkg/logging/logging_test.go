package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevel(t *testing.T) {
	cases := map[string]log.Level{
		"":        log.WarnLevel,
		"debug":   log.DebugLevel,
		" error ": log.ErrorLevel,
		"bogus":   log.WarnLevel,
	}
	for in, want := range cases {
		if got := Level(in); got != want {
			t.Fatalf("Level(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesWarnings(t *testing.T) {
	t.Setenv(EnvLevel, "")
	var buf bytes.Buffer
	l := New(&buf)
	l.Info("hidden")
	l.Warn("persist snapshot", "err", "disk full")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "disk full") || !strings.Contains(out, "daylist") {
		t.Fatalf("expected prefixed warning, got %q", out)
	}
}
