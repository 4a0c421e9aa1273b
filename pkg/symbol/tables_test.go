package symbol

import (
	"errors"
	"testing"
)

func TestTables_InstallAndLookup(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "greek", "Greek letters", []Entry{
		{"alpha", "α"},
		{"beta", "β"},
	})

	code, err := ts.Mapped(Unicode, "greek", "alpha")
	if err != nil {
		t.Fatal(err)
	}
	if code != "α" {
		t.Errorf("Mapped = %q, want %q", code, "α")
	}

	desc, err := ts.Description(Unicode, "greek")
	if err != nil {
		t.Fatal(err)
	}
	if desc != "Greek letters" {
		t.Errorf("Description = %q", desc)
	}
}

func TestTables_ErrorsDistinguishAbsence(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "greek", "Greek letters", []Entry{{"alpha", "α"}})

	// format with no namespace at all
	_, err := ts.Mapped(LaTeX, "greek", "alpha")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing format error = %v, want ErrNotFound", err)
	}

	// format present, table id absent
	_, err = ts.Mapped(Unicode, "hebrew", "alef")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing table error = %v, want ErrNotFound", err)
	}

	// table present, key absent
	_, err = ts.Mapped(Unicode, "greek", "omega")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("missing key error = %v, want ErrInvalidKey", err)
	}
}

func TestTables_ReinstallOverwrites(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "greek", "first", []Entry{{"alpha", "a"}})
	ts.Install(Unicode, "greek", "second", []Entry{{"alpha", "α"}, {"beta", "β"}})

	if got := ts.TableIDs(Unicode); len(got) != 1 || got[0] != "greek" {
		t.Fatalf("TableIDs = %v, want [greek]", got)
	}
	tbl, err := ts.Table(Unicode, "greek")
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Desc != "second" || tbl.Len() != 2 {
		t.Errorf("reinstall kept old table: desc=%q len=%d", tbl.Desc, tbl.Len())
	}
}

func TestTables_Uninstall(t *testing.T) {
	ts := NewTables()
	ts.Install(Unicode, "greek", "Greek letters", []Entry{{"alpha", "α"}})
	ts.Uninstall(Unicode, "greek")
	if ts.Contains(Unicode, "greek") {
		t.Error("table still installed after Uninstall")
	}
	ts.Uninstall(Unicode, "greek") // no-op
}

func TestTables_NonspacingMarks(t *testing.T) {
	ts := NewTables()
	ts.SetMarks(Unicode, []string{"̄", "̅"})

	if n := ts.CountMarks(Unicode, "ūd̄"); n != 2 {
		t.Errorf("CountMarks = %d, want 2", n)
	}
	if n := ts.CountMarks(Unicode, "plain"); n != 0 {
		t.Errorf("CountMarks = %d, want 0", n)
	}
	if !ts.HasLeadingMark(Unicode, "̅x") {
		t.Error("HasLeadingMark = false, want true")
	}
	if ts.HasLeadingMark(Unicode, "x̅") {
		t.Error("HasLeadingMark = true, want false")
	}
}

func TestTable_PreservesInsertionOrder(t *testing.T) {
	tbl := NewTable("t", []Entry{{"b", "2"}, {"a", "1"}, {"c", "3"}})
	want := []string{"b", "a", "c"}
	got := tbl.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}

	// re-setting a key replaces the code without moving the key
	tbl.Set("a", "9")
	if code, _ := tbl.Get("a"); code != "9" {
		t.Errorf("Get(a) = %q, want 9", code)
	}
	if got := tbl.Keys(); len(got) != 3 || got[1] != "a" {
		t.Errorf("Keys() after Set = %v", got)
	}
}

func TestTables_Formats(t *testing.T) {
	ts := NewTables()
	ts.Install(LaTeX, "math", "m", nil)
	ts.Install(Plain, "math", "m", nil)
	got := ts.Formats()
	if len(got) != 2 || got[0] != Plain || got[1] != LaTeX {
		t.Errorf("Formats() = %v, want [plain latex]", got)
	}
}
