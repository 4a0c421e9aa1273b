package symbol

import "strings"

// Builtin Unicode lookup tables. The other encoders consult some of these
// through the shared registry (HTML derives numeric character references
// from the Unicode code points), so the Unicode encoder is always
// constructed first by NewEngine.

var unicodeArabicDigits = []Entry{
	{"0", "٠"}, {"1", "١"}, {"2", "٢"}, {"3", "٣"},
	{"4", "٤"}, {"5", "٥"}, {"6", "٦"}, {"7", "٧"},
	{"8", "٨"}, {"9", "٩"},
}

var unicodeSuperscripts = []Entry{
	{"0", "⁰"}, {"1", "¹"}, {"2", "²"}, {"3", "³"},
	{"4", "⁴"}, {"5", "⁵"}, {"6", "⁶"}, {"7", "⁷"},
	{"8", "⁸"}, {"9", "⁹"},
	{"+", "⁺"}, {"-", "⁻"}, {"=", "⁼"},
	{"(", "⁽"}, {")", "⁾"},
	{"i", "ⁱ"}, {"n", "ⁿ"},

	{"o", "°"}, // degrees (little o)

	// quotation marks
	{"\"", "\""}, {"'", "'"},
	{"ldquo", "“"}, {"rdquo", "”"},
}

var unicodeSubscripts = []Entry{
	{"0", "₀"}, {"1", "₁"}, {"2", "₂"}, {"3", "₃"},
	{"4", "₄"}, {"5", "₅"}, {"6", "₆"}, {"7", "₇"},
	{"8", "₈"}, {"9", "₉"},
	{"+", "₊"}, {"-", "₋"}, {"=", "₌"},
	{"(", "₍"}, {")", "₎"},
	{"a", "ₐ"}, {"e", "ₑ"}, {"o", "ₒ"}, {"x", "ₓ"},
	{"@", "ₔ"}, // schwa
	{"h", "ₕ"}, {"k", "ₖ"}, {"l", "ₗ"}, {"m", "ₘ"},
	{"n", "ₙ"}, {"p", "ₚ"}, {"s", "ₛ"}, {"t", "ₜ"},
}

// Precomposed vulgar fractions. Anything absent is synthesized from
// superscript, fraction slash and subscript.
var unicodeFractions = []Entry{
	{"1/2", "½"},
	{"0/3", "↉"}, {"1/3", "⅓"}, {"2/3", "⅔"},
	{"1/4", "¼"}, {"3/4", "¾"}, {"1/5", "⅕"},
	{"2/5", "⅖"}, {"3/5", "⅗"}, {"4/5", "⅘"},
	{"1/6", "⅙"}, {"5/6", "⅚"},
	{"1/7", "⅐"},
	{"1/8", "⅛"}, {"3/8", "⅜"}, {"5/8", "⅝"}, {"7/8", "⅞"},
	{"1/9", "⅑"},
	{"1/10", "⅒"},
}

var unicodeGreekLetters = []Entry{
	// lower case
	{"alpha", "α"}, {"beta", "β"},
	{"gamma", "γ"}, {"delta", "δ"},
	{"epsilon", "ε"}, {"zeta", "ζ"},
	{"eta", "η"}, {"theta", "θ"},
	{"iota", "ι"}, {"kappa", "κ"},
	{"lambda", "λ"}, {"mu", "μ"},
	{"nu", "ν"}, {"xi", "ξ"},
	{"omicron", "ο"}, {"pi", "π"},
	{"rho", "ρ"}, {"sigma", "σ"},
	{"tau", "τ"}, {"upsilon", "υ"},
	{"phi", "φ"}, {"chi", "χ"},
	{"psi", "ψ"}, {"omega", "ω"},

	// upper case
	{"Alpha", "Α"}, {"Beta", "Β"},
	{"Gamma", "Γ"}, {"Delta", "Δ"},
	{"Epsilon", "Ε"}, {"Zeta", "Ζ"},
	{"Eta", "Η"}, {"Theta", "Θ"},
	{"Iota", "Ι"}, {"Kappa", "Κ"},
	{"Lambda", "Λ"}, {"Mu", "Μ"},
	{"Nu", "Ν"}, {"Xi", "Ξ"},
	{"Omicron", "Ο"}, {"Pi", "Π"},
	{"Rho", "Ρ"}, {"Sigma", "Σ"},
	{"Tau", "Τ"}, {"Upsilon", "Υ"},
	{"Phi", "Φ"}, {"Chi", "Χ"},
	{"Psi", "Ψ"}, {"Omega", "Ω"},
}

var unicodeScriptCapitals = []Entry{
	{"A", "\U0001d49c"}, {"B", "ℬ"}, {"C", "\U0001d49e"}, {"D", "\U0001d49f"},
	{"E", "ℰ"}, {"F", "ℱ"}, {"G", "\U0001d4a2"}, {"H", "ℋ"},
	{"I", "ℐ"}, {"J", "\U0001d4a5"}, {"K", "\U0001d4a6"}, {"L", "ℒ"},
	{"M", "ℳ"}, {"N", "\U0001d4a9"}, {"O", "\U0001d4aa"}, {"P", "\U0001d4ab"},
	{"Q", "\U0001d4ac"}, {"R", "ℛ"}, {"S", "\U0001d4ae"}, {"T", "\U0001d4af"},
	{"U", "\U0001d4b0"}, {"V", "\U0001d4b1"}, {"W", "\U0001d4b2"}, {"X", "\U0001d4b3"},
	{"Y", "\U0001d4b4"}, {"Z", "\U0001d4b5"},
}

var unicodeMathSymbols = []Entry{
	// binary comparators
	{"<", "<"}, {"<=", "≤"}, {"=", "="},
	{">=", "≥"}, {">", ">"}, {"!=", "≠"},

	// range
	{"+-", "±"}, {"-+", "∓"},

	// binary arithmetic operators
	{"+", "₊"}, {"-", "₋"},
	{"*", "×"}, {"/", "∕"},
	{"frac", "⁄"},   // fraction slash
	{"obelus", "÷"}, // horizontal line with over/under dots

	// common use symbols
	{"inf", "∞"}, {"deg", "°"}, {"sum", "⅀"},
	{"int", "∫"}, {"null", "Ø"},

	// primes
	{"'", "′"}, {"''", "″"}, {"'''", "‴"}, {"''''", "⁗"},

	// marks combining with the previous character
	{"hat", "\u0302"}, {"twiddle", "\u0303"},
	{"dot", "\u0307"}, {"dotdot", "\u0308"},
	{"bar", "\u0304"}, {"bbar", "\u0305"},
}

var unicodeCombiningMarks = []string{
	"\u0302", // circumflex
	"\u0303", // tilde
	"\u0307", // single dot
	"\u0308", // double dot
	"\u0304", // bar
	"\u0305", // big bar
}

// NewUnicodeEncoder constructs the Unicode encoder and installs its builtin
// renderer groups and tables into the registry. The translate pass is the
// identity.
func NewUnicodeEncoder(tables *Tables) *Encoder {
	e := newEncoder(Unicode, tables, func(frags []string) string {
		return strings.Join(frags, "")
	})

	e.Register("arabic", "Arabic digits 0-9", e.concatRenderer, unicodeArabicDigits)
	e.Register("frac", "fractions", e.unicodeFraction, unicodeFractions)
	e.Register("greek", "Greek letters", nil, unicodeGreekLetters)
	e.Register("math", "math symbols", nil, unicodeMathSymbols)
	e.Register("script", "script capital letters", e.concatRenderer, unicodeScriptCapitals)
	e.Register("sub", "subscripts", e.concatRenderer, unicodeSubscripts)
	e.Register("sup", "superscripts", e.concatRenderer, unicodeSuperscripts)

	tables.SetMarks(Unicode, unicodeCombiningMarks)
	return e
}

// unicodeFraction renders $frac(n,d). A precomposed vulgar-fraction glyph
// is preferred; otherwise the fraction is synthesized as
// superscript-numerator, fraction slash, subscript-denominator. If even the
// synthesized form fails the raw "n/d" key is returned.
func (e *Encoder) unicodeFraction(gid string, args []string) (string, error) {
	n, d, err := fractionArgs(e.format, gid, args)
	if err != nil {
		return "", err
	}
	switch d {
	case "1":
		return n, nil
	case "0":
		return "inf", nil
	}
	key := n + "/" + d
	if code, lerr := e.lookupKey(gid, key); lerr == nil {
		return code, nil
	}
	sup, err1 := e.ConcatLookup("sup", n)
	slash, err2 := e.lookupKey("math", "frac")
	sub, err3 := e.ConcatLookup("sub", d)
	if err1 != nil || err2 != nil || err3 != nil {
		return key, nil
	}
	return sup + slash + sub, nil
}

func fractionArgs(f Format, gid string, args []string) (n, d string, err error) {
	if len(args) != 2 {
		return "", "", &argCountError{f, gid, 2, len(args)}
	}
	return strings.TrimSpace(args[0]), strings.TrimSpace(args[1]), nil
}
