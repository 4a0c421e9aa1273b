package symbol

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one key/code pair of a lookup table. Keys are ASCII strings;
// codes are format-specific encoded strings.
type Entry struct {
	Key  string
	Code string
}

// Table is one named lookup table: a description plus an ordered mapping
// from ASCII key to encoded string. Insertion order is irrelevant for
// lookup but is preserved for printing.
type Table struct {
	Desc    string
	keys    []string
	mapping map[string]string
}

// NewTable builds a table from entries. A repeated key overwrites the code
// without duplicating the key.
func NewTable(desc string, entries []Entry) *Table {
	t := &Table{Desc: desc, mapping: make(map[string]string, len(entries))}
	for _, e := range entries {
		t.Set(e.Key, e.Code)
	}
	return t
}

// Set inserts or replaces one mapping entry.
func (t *Table) Set(key, code string) {
	if _, ok := t.mapping[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.mapping[key] = code
}

// Get returns the code mapped to key.
func (t *Table) Get(key string) (string, bool) {
	code, ok := t.mapping[key]
	return code, ok
}

// Keys returns the table keys in insertion order.
func (t *Table) Keys() []string { return t.keys }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Tables is the shared registry of lookup tables, one namespace per format,
// plus the set of nonspacing marks for each format. It is populated while
// encoders are constructed and treated as read-only afterwards; mutation
// after startup is not race-safe by design.
type Tables struct {
	installed map[Format]map[string]*Table
	marks     map[Format][]string
}

// NewTables creates an empty registry.
func NewTables() *Tables {
	return &Tables{
		installed: make(map[Format]map[string]*Table),
		marks:     make(map[Format][]string),
	}
}

// Install inserts or replaces the table identified by (format, tid). The
// format namespace and its empty mark set are created on first use.
func (ts *Tables) Install(f Format, tid, desc string, entries []Entry) {
	ts.namespace(f)[tid] = NewTable(desc, entries)
}

// Uninstall removes a table. Removing an absent table is a no-op.
func (ts *Tables) Uninstall(f Format, tid string) {
	if tbls, ok := ts.installed[f]; ok {
		delete(tbls, tid)
	}
}

// Table returns the table identified by (format, tid). The error
// distinguishes an uninstalled format from a missing table id.
func (ts *Tables) Table(f Format, tid string) (*Table, error) {
	tbls, ok := ts.installed[f]
	if !ok {
		return nil, fmt.Errorf("%s encoding has no tables: %w", f, ErrNotFound)
	}
	tbl, ok := tbls[tid]
	if !ok {
		return nil, fmt.Errorf("%s encoding has no table %q: %w", f, tid, ErrNotFound)
	}
	return tbl, nil
}

// Mapped returns the code mapped to key in table (format, tid).
func (ts *Tables) Mapped(f Format, tid, key string) (string, error) {
	tbl, err := ts.Table(f, tid)
	if err != nil {
		return "", err
	}
	code, ok := tbl.Get(key)
	if !ok {
		return "", fmt.Errorf("%s table %q has no key %q: %w", f, tid, key, ErrInvalidKey)
	}
	return code, nil
}

// Description returns the description of table (format, tid).
func (ts *Tables) Description(f Format, tid string) (string, error) {
	tbl, err := ts.Table(f, tid)
	if err != nil {
		return "", err
	}
	return tbl.Desc, nil
}

// Contains reports whether table tid is installed for format f.
func (ts *Tables) Contains(f Format, tid string) bool {
	_, err := ts.Table(f, tid)
	return err == nil
}

// SetMarks sets the nonspacing marks associated with a format. A mark is a
// code string that combines with the previous rendered unit instead of
// occupying its own column.
func (ts *Tables) SetMarks(f Format, marks []string) {
	ts.namespace(f)
	ts.marks[f] = marks
}

// Marks returns the nonspacing marks for a format.
func (ts *Tables) Marks(f Format) []string { return ts.marks[f] }

// CountMarks counts the nonspacing marks occurring in s. Used for display
// column arithmetic only.
func (ts *Tables) CountMarks(f Format, s string) int {
	n := 0
	for _, m := range ts.marks[f] {
		if m != "" {
			n += strings.Count(s, m)
		}
	}
	return n
}

// HasLeadingMark reports whether s begins with a nonspacing mark.
func (ts *Tables) HasLeadingMark(f Format, s string) bool {
	for _, m := range ts.marks[f] {
		if m != "" && strings.HasPrefix(s, m) {
			return true
		}
	}
	return false
}

// TableIDs returns the sorted table ids installed for a format.
func (ts *Tables) TableIDs(f Format) []string {
	tbls := ts.installed[f]
	ids := make([]string, 0, len(tbls))
	for tid := range tbls {
		ids = append(ids, tid)
	}
	sort.Strings(ids)
	return ids
}

// Formats returns the formats that have at least one namespace installed,
// in declaration order.
func (ts *Tables) Formats() []Format {
	var fs []Format
	for _, f := range AllFormats() {
		if _, ok := ts.installed[f]; ok {
			fs = append(fs, f)
		}
	}
	return fs
}

func (ts *Tables) namespace(f Format) map[string]*Table {
	tbls, ok := ts.installed[f]
	if !ok {
		tbls = make(map[string]*Table)
		ts.installed[f] = tbls
		if _, ok := ts.marks[f]; !ok {
			ts.marks[f] = nil
		}
	}
	return tbls
}
