package symbol

import (
	"strings"
)

// Plain math spellings. Keys missing here (comparators, operators) render
// as themselves.
var plainMathSymbols = []Entry{
	{"frac", "/"},
	{"obelus", "/"},

	// common use symbols
	{"inf", "inf"}, {"deg", "degrees"}, {"sum", "sum"},
	{"int", "integral"}, {"null", "null"},

	// hypothetical overlays with the previous letter
	{"hat", "-hat"}, {"twiddle", "-twiddle"},
	{"dot", "-dot"}, {"dotdot", "-dotdot"},
	{"bar", "-bar"}, {"bbar", "-bar"},
}

// NewPlainEncoder constructs the plain-ASCII encoder. Its finishing pass
// replaces any unit outside 7-bit ASCII with '?'.
func NewPlainEncoder(tables *Tables) *Encoder {
	e := newEncoder(Plain, tables, func(frags []string) string {
		return plainTranslate(strings.Join(frags, ""))
	})

	e.Register("arabic", "Arabic digits 0-9", plainTrim, nil)
	e.Register("frac", "fractions", e.plainFraction, nil)
	e.Register("greek", "Greek letters", plainTrim, nil)
	e.Register("math", "math symbols", e.plainMath, plainMathSymbols)
	e.Register("script", "script capital letters", plainTrim, nil)
	e.Register("sub", "subscripts", plainWrap("_"), nil)
	e.Register("sup", "superscripts", plainWrap(""), nil)

	return e
}

func plainTranslate(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// plainTrim renders the argument as itself: Greek names, script letters
// and digit runs have no plain-text decoration.
func plainTrim(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &argCountError{Plain, gid, 1, len(args)}
	}
	return strings.TrimSpace(args[0]), nil
}

func (e *Encoder) plainFraction(gid string, args []string) (string, error) {
	n, d, err := fractionArgs(e.format, gid, args)
	if err != nil {
		return "", err
	}
	return n + "/" + d, nil
}

// plainMath looks the symbol up in the plain table and falls back to the
// symbol itself; ASCII operators like ">=" are already their own spelling.
func (e *Encoder) plainMath(gid string, args []string) (string, error) {
	if len(args) != 1 {
		return "", &argCountError{Plain, gid, 1, len(args)}
	}
	key := strings.TrimSpace(args[0])
	if code, err := e.lookupKey(gid, key); err == nil {
		return code, nil
	}
	return key, nil
}

func plainWrap(prefix string) Renderer {
	return func(gid string, args []string) (string, error) {
		if len(args) != 1 {
			return "", &argCountError{Plain, gid, 1, len(args)}
		}
		return prefix + args[0], nil
	}
}
