package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	w := NewColorWriter(&buf)

	w.Info("rendered %d expressions", 3)
	w.Warn("table %q shadowed", "greek")
	w.Error("cannot open %s", "pack.yaml")
	w.Crit("registry corrupt")
	w.Debug("cursor at %d", 7)

	out := buf.String()
	for _, want := range []string{
		"rendered 3 expressions",
		`Warning: table "greek" shadowed`,
		"Error: cannot open pack.yaml",
		"Critical: registry corrupt",
		"DBG: cursor at 7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorWriter_Mute(t *testing.T) {
	var buf bytes.Buffer
	w := NewColorWriter(&buf)

	w.Mute()
	if !w.Muted() {
		t.Error("Muted() = false after Mute")
	}
	w.Info("hidden")
	w.Error("hidden too")
	if buf.Len() != 0 {
		t.Errorf("muted writer produced output: %q", buf.String())
	}

	w.Unmute()
	w.Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("unmuted writer stayed silent")
	}
}
