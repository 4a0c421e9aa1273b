package symbol

import (
	"fmt"
	"strings"
)

// NewHTMLEncoder constructs the HTML encoder. It installs no tables of its
// own: symbol lookups go through the Unicode tables in the shared registry
// and the resulting code points are emitted as numeric character
// references.
func NewHTMLEncoder(tables *Tables) *Encoder {
	e := newEncoder(HTML, tables, func(frags []string) string {
		return htmlTranslate(strings.Join(frags, ""))
	})

	e.Register("arabic", "Arabic digits 0-9", e.htmlConcatRefs("arabic"), nil)
	e.Register("frac", "fractions", e.htmlFraction, nil)
	e.Register("greek", "Greek letters", e.htmlGreek, nil)
	e.Register("math", "math symbols", e.htmlMath, nil)
	e.Register("script", "script capital letters", e.htmlConcatRefs("script"), nil)
	e.Register("sub", "subscripts", e.htmlTag("sub"), nil)
	e.Register("sup", "superscripts", e.htmlTag("sup"), nil)

	return e
}

// htmlRef converts one code point to its hexadecimal character reference.
func htmlRef(r rune) string {
	return fmt.Sprintf("&#x%x;", r)
}

// htmlTranslate is the HTML finishing pass: newline to <br>, ASCII passes
// through, everything else becomes a numeric character reference.
func htmlTranslate(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString("<br>")
		case r < 128:
			b.WriteRune(r)
		default:
			b.WriteString(htmlRef(r))
		}
	}
	return b.String()
}

// htmlConcatRefs maps each character of the argument through the Unicode
// table tid and emits the characters as references.
func (e *Encoder) htmlConcatRefs(tid string) Renderer {
	return func(gid string, args []string) (string, error) {
		if len(args) != 1 {
			return "", &argCountError{e.format, gid, 1, len(args)}
		}
		var b strings.Builder
		for _, r := range strings.TrimSpace(args[0]) {
			code, err := e.tables.Mapped(Unicode, tid, string(r))
			if err != nil {
				return "", wrapLookup(e.format, gid, string(r), err)
			}
			for _, u := range code {
				b.WriteString(htmlRef(u))
			}
		}
		return b.String(), nil
	}
}

func (e *Encoder) htmlFraction(gid string, args []string) (string, error) {
	n, d, err := fractionArgs(e.format, gid, args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<sup>%s</sup>/<sub>%s</sub>",
		htmlTranslate(n), htmlTranslate(d)), nil
}

// htmlGreek emits the named entity; browsers define &alpha; through
// &Omega; so no table is consulted.
func (e *Encoder) htmlGreek(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &argCountError{e.format, gid, 1, len(args)}
	}
	return "&" + htmlTranslate(strings.TrimSpace(args[0])) + ";", nil
}

func (e *Encoder) htmlMath(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &argCountError{e.format, gid, 1, len(args)}
	}
	key := args[0]
	code, err := e.tables.Mapped(Unicode, gid, key)
	if err != nil {
		return "", wrapLookup(e.format, gid, key, err)
	}
	var b strings.Builder
	for _, r := range code {
		b.WriteString(htmlRef(r))
	}
	return b.String(), nil
}

func (e *Encoder) htmlTag(tag string) Renderer {
	return func(gid string, args []string) (string, error) {
		if len(args) != 1 {
			return "", &argCountError{e.format, gid, 1, len(args)}
		}
		return fmt.Sprintf("<%s>%s</%s>", tag, htmlTranslate(args[0]), tag), nil
	}
}
