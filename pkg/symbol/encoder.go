package symbol

import (
	"fmt"
	"strings"
)

// Renderer turns the parsed arguments of a $gid(...) call into an encoded
// string for one format. The group id is passed so shared implementations
// can report which group failed.
type Renderer func(gid string, args []string) (string, error)

type renderGroup struct {
	fn   Renderer
	desc string
}

// Encoder binds one output format to its renderer set and to the shared
// table registry. Encoders hold no state between Parse calls; concurrent
// parses on one encoder are safe once registration is finished.
type Encoder struct {
	format    Format
	tables    *Tables
	renderers map[string]renderGroup
	order     []string
	finish    func(fragments []string) string
}

func newEncoder(f Format, tables *Tables, finish func([]string) string) *Encoder {
	return &Encoder{
		format:    f,
		tables:    tables,
		renderers: make(map[string]renderGroup),
		finish:    finish,
	}
}

// Format returns the encoder's bound format.
func (e *Encoder) Format() Format { return e.format }

// Tables returns the shared table registry the encoder consults.
func (e *Encoder) Tables() *Tables { return e.tables }

// Register installs a renderer for a group id. If entries is non-nil a
// table with the same id is installed into the registry under the encoder's
// format. A nil fn selects the default single-key lookup. Re-registering a
// group overwrites it.
func (e *Encoder) Register(gid, desc string, fn Renderer, entries []Entry) {
	if entries != nil {
		e.tables.Install(e.format, gid, desc, entries)
	}
	if fn == nil {
		fn = e.Lookup
	}
	if _, ok := e.renderers[gid]; !ok {
		e.order = append(e.order, gid)
	}
	e.renderers[gid] = renderGroup{fn: fn, desc: desc}
}

// InstallTable installs a lookup table under the encoder's format without
// registering a renderer.
func (e *Encoder) InstallTable(tid, desc string, entries []Entry) {
	e.tables.Install(e.format, tid, desc, entries)
}

// Lookup is the default renderer strategy: a single-key table lookup under
// the group's table.
func (e *Encoder) Lookup(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s group %q takes one key, got %d: %w",
			e.format, gid, len(args), ErrBadArgument)
	}
	return e.lookupKey(gid, args[0])
}

func (e *Encoder) lookupKey(gid, key string) (string, error) {
	tbl, err := e.tables.Table(e.format, gid)
	if err != nil {
		return "", fmt.Errorf("no %s table %q: %w", e.format, gid, ErrUnknownGroup)
	}
	code, ok := tbl.Get(key)
	if !ok {
		return "", fmt.Errorf("%s table %q has no key %q: %w",
			e.format, gid, key, ErrUnknownKey)
	}
	return code, nil
}

// ConcatLookup treats every character of keys as its own table key and
// concatenates the looked-up codes. Used for subscript, superscript, script
// and digit groups where characters map independently.
func (e *Encoder) ConcatLookup(gid, keys string) (string, error) {
	tbl, err := e.tables.Table(e.format, gid)
	if err != nil {
		return "", fmt.Errorf("no %s table %q: %w", e.format, gid, ErrUnknownGroup)
	}
	var b strings.Builder
	for _, r := range keys {
		code, ok := tbl.Get(string(r))
		if !ok {
			return "", fmt.Errorf("%s table %q has no key %q: %w",
				e.format, gid, string(r), ErrUnknownKey)
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

func (e *Encoder) concatRenderer(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s group %q takes one argument, got %d: %w",
			e.format, gid, len(args), ErrBadArgument)
	}
	return e.ConcatLookup(gid, args[0])
}

// Translate runs the encoder's finishing pass over already rendered text.
// Parse applies it exactly once per call; exposing it lets callers sanitize
// text that bypassed the parser.
func (e *Encoder) Translate(s string) string {
	return e.finish([]string{s})
}

// Parse renders an expression in lenient mode: unknown calls and failed
// renderer lookups degrade to the space-joined call arguments. Syntax
// errors still fail.
func (e *Encoder) Parse(expr string) (string, error) {
	return (&parser{enc: e}).parse(expr)
}

// ParseStrict renders an expression, failing on unknown calls and renderer
// lookup errors as well as on syntax errors.
func (e *Encoder) ParseStrict(expr string) (string, error) {
	return (&parser{enc: e, strict: true}).parse(expr)
}

// Groups returns the registered group ids in registration order.
func (e *Encoder) Groups() []string {
	gids := make([]string, len(e.order))
	copy(gids, e.order)
	return gids
}

// GroupDescription returns the description a group was registered with.
func (e *Encoder) GroupDescription(gid string) (string, bool) {
	g, ok := e.renderers[gid]
	if !ok {
		return "", false
	}
	return g.desc, true
}

// TableIDs returns the ids of the tables installed under this encoder's
// format.
func (e *Encoder) TableIDs() []string {
	return e.tables.TableIDs(e.format)
}
