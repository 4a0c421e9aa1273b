package symbol

import "fmt"

// Engine owns the shared table registry and one encoder per format. It is
// the explicit replacement for a process-global registry: construct one at
// startup, register any extra symbol groups, then treat it as read-only.
type Engine struct {
	tables   *Tables
	encoders map[Format]*Encoder
}

// NewEngine builds a registry and the four builtin encoders. The Unicode
// encoder is constructed first because the HTML renderers resolve symbols
// through the Unicode tables.
func NewEngine() *Engine {
	tables := NewTables()
	eng := &Engine{
		tables:   tables,
		encoders: make(map[Format]*Encoder, 4),
	}
	eng.encoders[Unicode] = NewUnicodeEncoder(tables)
	eng.encoders[Plain] = NewPlainEncoder(tables)
	eng.encoders[HTML] = NewHTMLEncoder(tables)
	eng.encoders[LaTeX] = NewLaTeXEncoder(tables)
	return eng
}

// Tables returns the shared registry.
func (g *Engine) Tables() *Tables { return g.tables }

// Encoder returns the encoder bound to a format.
func (g *Engine) Encoder(f Format) *Encoder { return g.encoders[f] }

// Parse renders expr for one format in lenient mode.
func (g *Engine) Parse(f Format, expr string) (string, error) {
	return g.encoders[f].Parse(expr)
}

// ParseStrict renders expr for one format in strict mode.
func (g *Engine) ParseStrict(f Format, expr string) (string, error) {
	return g.encoders[f].ParseStrict(expr)
}

// Register installs a renderer group on every encoder with the same
// description and (per-format) renderer strategy. Use the per-encoder
// Register when formats need to diverge.
func (g *Engine) Register(gid, desc string, entries map[Format][]Entry) error {
	for f, enc := range g.encoders {
		es, ok := entries[f]
		if !ok {
			return fmt.Errorf("no %s entries for group %q", f, gid)
		}
		enc.Register(gid, desc, nil, es)
	}
	return nil
}
