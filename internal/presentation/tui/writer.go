// Package tui provides terminal presentation helpers for the CLI:
// a leveled color writer and a markdown renderer.
package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// ColorWriter prints leveled, colored messages to a terminal. Colors
// degrade automatically on dumb terminals via termenv's profile
// detection. A muted writer drops everything.
type ColorWriter struct {
	out   *termenv.Output
	muted bool
}

// NewColorWriter creates a writer on w, detecting the color profile
// from the environment.
func NewColorWriter(w io.Writer) *ColorWriter {
	return &ColorWriter{out: termenv.NewOutput(w)}
}

// Mute silences the writer.
func (c *ColorWriter) Mute() { c.muted = true }

// Unmute re-enables the writer.
func (c *ColorWriter) Unmute() { c.muted = false }

// Muted reports whether the writer is silenced.
func (c *ColorWriter) Muted() bool { return c.muted }

// Debug prints a dim diagnostic line.
func (c *ColorWriter) Debug(format string, a ...any) {
	c.print(termenv.ANSIBrightBlack, "DBG: ", format, a...)
}

// Info prints an informational line.
func (c *ColorWriter) Info(format string, a ...any) {
	if c.muted {
		return
	}
	msg := c.out.String(fmt.Sprintf(format, a...)).Foreground(termenv.ANSIGreen)
	fmt.Fprintln(c.out, msg)
}

// Warn prints a warning line.
func (c *ColorWriter) Warn(format string, a ...any) {
	c.print(termenv.ANSIYellow, "Warning: ", format, a...)
}

// Error prints an error line.
func (c *ColorWriter) Error(format string, a ...any) {
	c.print(termenv.ANSIBrightRed, "Error: ", format, a...)
}

// Crit prints a critical error line.
func (c *ColorWriter) Crit(format string, a ...any) {
	c.print(termenv.ANSIBrightMagenta, "Critical: ", format, a...)
}

// print colors only the level prefix; the message stays in the default
// foreground.
func (c *ColorWriter) print(color termenv.Color, prefix, format string, a ...any) {
	if c.muted {
		return
	}
	p := c.out.String(prefix).Foreground(color)
	fmt.Fprintf(c.out, "%s%s\n", p, fmt.Sprintf(format, a...))
}
