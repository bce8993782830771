package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Infof("compressed %s", "a.txt")
	l.Errorf("failed after %d bytes", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "[INFO] compressed a.txt") {
		t.Errorf("info line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[ERROR] failed after 42 bytes") {
		t.Errorf("error line = %q", lines[1])
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Infof("dropped")
	l.Errorf("dropped")
}
