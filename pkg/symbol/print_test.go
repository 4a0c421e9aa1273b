package symbol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTables_FprintTable(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "d", "digits", []Entry{
		{"a", "1"},
		{"b", "2"},
	})

	var buf bytes.Buffer
	if err := ts.FprintTable(&buf, Unicode, "d", false); err != nil {
		t.Fatal(err)
	}

	// a non-terminal writer gets the 80-column layout: two one-byte pairs
	// fit side by side with the capped six-space separator
	want := strings.Join([]string{
		"  Lookup Table: unicode:d  digits",
		"k c      k c",
		"— —      — —",
		"a 1      b 2",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("FprintTable output:\n%q\nwant:\n%q", got, want)
	}
}

func TestTables_FprintTableASCII(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "greek", "Greek letters", []Entry{{"alpha", "α"}})

	var buf bytes.Buffer
	if err := ts.FprintTable(&buf, Unicode, "greek", true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `\u03b1`) {
		t.Errorf("ascii listing missing escape form:\n%s", out)
	}
	if strings.Contains(out, "α") {
		t.Errorf("ascii listing contains raw glyph:\n%s", out)
	}
}

func TestTables_FprintTableMissing(t *testing.T) {
	ts := NewTables()
	var buf bytes.Buffer
	if err := ts.FprintTable(&buf, Unicode, "nope", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestTables_FprintTableOddEntryCount(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "d", "digits", []Entry{
		{"a", "1"},
		{"b", "2"},
		{"c", "3"},
	})

	var buf bytes.Buffer
	if err := ts.FprintTable(&buf, Unicode, "d", false); err != nil {
		t.Fatal(err)
	}
	// a partially filled last row still ends with a newline
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output not newline terminated: %q", out)
	}
	if !strings.Contains(out, "c 3") {
		t.Errorf("last entry missing:\n%s", out)
	}
}
