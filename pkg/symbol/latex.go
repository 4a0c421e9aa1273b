package symbol

import (
	"fmt"
	"strings"
)

var latexGreekLetters = []Entry{
	// lower case
	{"alpha", `\alpha`}, {"beta", `\beta`},
	{"gamma", `\gamma`}, {"delta", `\delta`},
	{"epsilon", `\epsilon`}, {"zeta", `\zeta`},
	{"eta", `\eta`}, {"theta", `\theta`},
	{"iota", `\iota`}, {"kappa", `\kappa`},
	{"lambda", `\lambda`}, {"mu", `\mu`},
	{"nu", `\nu`}, {"xi", `\xi`},
	{"omicron", "o"}, {"pi", `\pi`},
	{"rho", `\rho`}, {"sigma", `\sigma`},
	{"tau", `\tau`}, {"upsilon", `\upsilon`},
	{"phi", `\phi`}, {"chi", `\chi`},
	{"psi", `\psi`}, {"omega", `\omega`},

	// upper case; letters without a macro fall back to the Latin capital
	{"Alpha", "A"}, {"Beta", "B"},
	{"Gamma", `\Gamma`}, {"Delta", `\Delta`},
	{"Epsilon", "E"}, {"Zeta", "Z"},
	{"Eta", "H"}, {"Theta", `\Theta`},
	{"Iota", "I"}, {"Kappa", "K"},
	{"Lambda", `\Lambda`}, {"Mu", "M"},
	{"Nu", "N"}, {"Xi", `\Xi`},
	{"Omicron", "O"}, {"Pi", `\Pi`},
	{"Rho", "P"}, {"Sigma", `\Sigma`},
	{"Tau", "T"}, {"Upsilon", `\Upsilon`},
	{"Phi", `\Phi`}, {"Chi", "X"},
	{"Psi", `\Psi`}, {"Omega", `\Omega`},
}

var latexMathSymbols = []Entry{
	// binary comparators
	{"<", "<"}, {"<=", `\leq`}, {"=", "="},
	{">=", `\geq`}, {">", ">"}, {"!=", `\neq`},

	// range
	{"+-", `\pm`}, {"-+", `\mp`},

	// binary arithmetic operators
	{"+", "+"}, {"-", "-"},
	{"*", `\times`}, {"/", "/"},
	{"frac", "/"},
	{"obelus", `\div`},

	// common use symbols
	{"inf", `\infty`}, {"deg", `^\circ`}, {"sum", `\sum`},
	{"int", `\int`}, {"null", `\emptyset`},

	// primes
	{"'", "'"}, {"''", "''"}, {"'''", "'''"}, {"''''", "''''"},

	// accents overlaying the previous letter
	{"hat", `\^`}, {"twiddle", `\~`},
	{"dot", `\.`}, {"dotdot", `\"`},
	{"bar", `\bar`}, {"bbar", `\overline`},
}

// latexMarks are the accent macros that must be reordered to precede the
// unit they decorate. Order matters: marks are rewritten in this sequence.
var latexMarks = []string{`\^`, `\~`, `\.`, `\"`, `\bar`, `\overline`}

// NewLaTeXEncoder constructs the LaTeX encoder. Its finishing pass first
// moves accent macros in front of the fragment they follow (LaTeX accents
// precede their target), then maps newline, space and non-ASCII units.
func NewLaTeXEncoder(tables *Tables) *Encoder {
	e := newEncoder(LaTeX, tables, latexFinish)

	e.Register("arabic", "Arabic digits 0-9", latexArabic, nil)
	e.Register("frac", "fractions", e.latexFraction, nil)
	e.Register("greek", "Greek letters", nil, latexGreekLetters)
	e.Register("math", "math symbols", nil, latexMathSymbols)
	e.Register("script", "script capital letters", latexScript, nil)
	e.Register("sub", "subscripts", latexWrap("_{%s}"), nil)
	e.Register("sup", "superscripts", latexWrap("^{%s}"), nil)

	tables.SetMarks(LaTeX, latexMarks)
	return e
}

func latexFinish(frags []string) string {
	return latexTranslate(strings.Join(reorderMarks(frags, latexMarks), ""))
}

// reorderMarks rewrites the fragment list so each accent mark precedes the
// fragment it followed. A decorated multi-character fragment has its first
// character wrapped in braces; fragments already starting with a brace or a
// macro are taken whole.
func reorderMarks(frags []string, marks []string) []string {
	out := frags
	for _, mark := range marks {
		if len(out) == 0 {
			break
		}
		next := []string{out[0]}
		for j := 1; j < len(out); j++ {
			if out[j] != mark {
				next = append(next, out[j])
				continue
			}
			prev := next[len(next)-1]
			next = next[:len(next)-1]
			next = append(next, mark)
			switch {
			case prev == "":
				next = append(next, prev)
			case prev[0] == '{' || prev[0] == '\\':
				next = append(next, prev)
			default:
				next = append(next, "{"+prev[:1]+"}"+prev[1:])
			}
		}
		out = next
	}
	return out
}

// latexTranslate maps newline to \\, space to "\ ", passes ASCII through
// and renders any other unit as \unicode{hex}. The \unicode macro is not
// standard LaTeX; documents must define it.
func latexTranslate(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\\`)
		case r == ' ':
			b.WriteString(`\ `)
		case r < 128:
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, `\unicode{%x}`, r)
		}
	}
	return b.String()
}

func latexArabic(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &argCountError{LaTeX, gid, 1, len(args)}
	}
	return args[0], nil
}

func (e *Encoder) latexFraction(gid string, args []string) (string, error) {
	n, d, err := fractionArgs(e.format, gid, args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`\frac{%s}{%s}`, n, d), nil
}

func latexScript(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &argCountError{LaTeX, gid, 1, len(args)}
	}
	return fmt.Sprintf(`\mathcal{%s}`, strings.TrimSpace(args[0])), nil
}

func latexWrap(format string) Renderer {
	return func(gid string, args []string) (string, error) {
		if len(args) != 1 {
			return "", &argCountError{LaTeX, gid, 1, len(args)}
		}
		return fmt.Sprintf(format, args[0]), nil
	}
}
