package symbol

import "fmt"

// Rendering holds one expression rendered in all four formats. It is a
// plain value: the engine caches nothing across Render calls.
type Rendering struct {
	expr  string
	codes map[Format]string
	def   Format
}

// Render parses expr with every encoder in lenient mode and bundles the
// results. The first parse failure aborts; with lenient encoders only
// syntax errors and bad renderer arguments can fail, and those fail
// identically for every format.
func (g *Engine) Render(expr string) (*Rendering, error) {
	return g.render(expr, func(e *Encoder) (string, error) { return e.Parse(expr) })
}

// RenderStrict is Render with strict parsing.
func (g *Engine) RenderStrict(expr string) (*Rendering, error) {
	return g.render(expr, func(e *Encoder) (string, error) { return e.ParseStrict(expr) })
}

func (g *Engine) render(expr string, parse func(*Encoder) (string, error)) (*Rendering, error) {
	r := &Rendering{
		expr:  expr,
		codes: make(map[Format]string, 4),
		def:   Unicode,
	}
	for _, f := range AllFormats() {
		code, err := parse(g.encoders[f])
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		r.codes[f] = code
	}
	return r, nil
}

// Expr returns the source expression.
func (r *Rendering) Expr() string { return r.expr }

// Code returns the rendering for one format.
func (r *Rendering) Code(f Format) string { return r.codes[f] }

// Plain returns the ASCII rendering.
func (r *Rendering) Plain() string { return r.codes[Plain] }

// Unicode returns the Unicode rendering.
func (r *Rendering) Unicode() string { return r.codes[Unicode] }

// HTML returns the HTML rendering.
func (r *Rendering) HTML() string { return r.codes[HTML] }

// LaTeX returns the LaTeX rendering.
func (r *Rendering) LaTeX() string { return r.codes[LaTeX] }

// Default returns the rendering for the default format (Unicode unless
// changed with SetDefault).
func (r *Rendering) Default() string { return r.codes[r.def] }

// SetDefault changes which format Default and String return.
func (r *Rendering) SetDefault(f Format) { r.def = f }

func (r *Rendering) String() string { return r.Default() }
