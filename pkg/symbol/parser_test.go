package symbol

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_LiteralRoundTrip(t *testing.T) {
	eng := NewEngine()
	inputs := []string{
		"",
		"My plain world.",
		"no calls here, just text (with parens) and, commas",
	}
	for _, f := range []Format{Plain, Unicode} {
		for _, in := range inputs {
			got, err := eng.Parse(f, in)
			if err != nil {
				t.Fatalf("%s Parse(%q) error = %v", f, in, err)
			}
			if got != in {
				t.Errorf("%s Parse(%q) = %q, want identity", f, in, got)
			}
		}
	}
}

func TestParse_EscapedDollar(t *testing.T) {
	eng := NewEngine()
	for _, f := range AllFormats() {
		got, err := eng.Parse(f, `\$50`)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if got != "$50" {
			t.Errorf("%s Parse(`\\$50`) = %q, want %q", f, got, "$50")
		}
	}
}

func TestParse_GreekAcrossFormats(t *testing.T) {
	eng := NewEngine()
	tests := []struct {
		format Format
		want   string
	}{
		{Plain, "alpha"},
		{Unicode, "α"},
		{HTML, "&alpha;"},
		{LaTeX, `\alpha`},
	}
	for _, tt := range tests {
		got, err := eng.Parse(tt.format, "$greek(alpha)")
		if err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("%s $greek(alpha) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParse_MathSymbols(t *testing.T) {
	eng := NewEngine()
	tests := []struct {
		format Format
		expr   string
		want   string
	}{
		{Unicode, "$math(>=)", "≥"},
		{Unicode, "$math(inf)", "∞"},
		{Plain, "$math(inf)", "inf"},
		{Plain, "$math(>=)", ">="}, // no plain entry, symbol is its own spelling
		{LaTeX, "$math(>=)", `\geq`},
		{HTML, "$math(>=)", "&#x2265;"},
	}
	for _, tt := range tests {
		got, err := eng.Parse(tt.format, tt.expr)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.format, tt.expr, err)
		}
		if got != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.format, tt.expr, got, tt.want)
		}
	}
}

func TestParse_SubSup(t *testing.T) {
	eng := NewEngine()
	tests := []struct {
		format Format
		expr   string
		want   string
	}{
		{Unicode, "H$sub(2)O", "H₂O"},
		{Unicode, "x$sup(2)", "x²"},
		{Plain, "H$sub(2)O", "H_2O"},
		{Plain, "x$sup(2)", "x2"},
		{HTML, "x$sup(2)", "x<sup>2</sup>"},
		{LaTeX, "x$sup(2)", "x^{2}"},
		{LaTeX, "H$sub(2)O", "H_{2}O"},
	}
	for _, tt := range tests {
		got, err := eng.Parse(tt.format, tt.expr)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.format, tt.expr, err)
		}
		if got != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.format, tt.expr, got, tt.want)
		}
	}
}

func TestParse_NestedCall(t *testing.T) {
	eng := NewEngine()

	got, err := eng.Parse(HTML, "$sub($frac(1,2))")
	if err != nil {
		t.Fatal(err)
	}
	want := "<sub><sup>1</sup>/<sub>2</sub></sub>"
	if got != want {
		t.Errorf("html nested = %q, want %q", got, want)
	}

	got, err = eng.Parse(LaTeX, "$sub($frac(1,2))")
	if err != nil {
		t.Fatal(err)
	}
	want = `_{\frac{1}{2}}`
	if got != want {
		t.Errorf("latex nested = %q, want %q", got, want)
	}

	// Unicode: the precomposed ½ has no subscript mapping, so the lenient
	// parser degrades the outer call to its evaluated argument.
	got, err = eng.Parse(Unicode, "$sub($frac(1,2))")
	if err != nil {
		t.Fatal(err)
	}
	if got != "½" {
		t.Errorf("unicode nested = %q, want %q", got, "½")
	}
}

func TestParse_StrictVsLenient(t *testing.T) {
	eng := NewEngine()

	_, err := eng.ParseStrict(Unicode, "$unknownfn(x)")
	if !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("strict error = %v, want ErrUnknownGroup", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("strict error is %T, want *ParseError", err)
	}
	if perr.Source != "$unknownfn(x)" {
		t.Errorf("ParseError.Source = %q", perr.Source)
	}

	// Lenient mode falls back to the space-joined arguments. Note this is
	// deliberately NOT the literal "$unknownfn(x)" text.
	got, err := eng.Parse(Unicode, "$unknownfn(x)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("lenient fallback = %q, want %q", got, "x")
	}
}

func TestParse_LenientFallbackJoinsArgs(t *testing.T) {
	eng := NewEngine()
	got, err := eng.Parse(Plain, "$nosuch(a,b,c)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "a b c" {
		t.Errorf("fallback = %q, want %q", got, "a b c")
	}
}

func TestParse_LenientUnknownKey(t *testing.T) {
	eng := NewEngine()

	// greek has no key "qoppa": strict fails, lenient degrades.
	if _, err := eng.ParseStrict(Unicode, "$greek(qoppa)"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("strict error = %v, want ErrUnknownKey", err)
	}
	got, err := eng.Parse(Unicode, "$greek(qoppa)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "qoppa" {
		t.Errorf("lenient = %q, want %q", got, "qoppa")
	}
}

func TestParse_SyntaxErrorsNeverForgiven(t *testing.T) {
	eng := NewEngine()
	cases := []struct {
		expr       string
		wantOffset int
	}{
		{"$math(>=", 8},     // missing ')', cursor at end of source
		{"$greek alpha", 7}, // missing '(' after identifier
		{"$", 1},            // missing identifier
	}
	for _, tt := range cases {
		for _, parse := range []func(string) (string, error){
			eng.Encoder(Unicode).Parse,
			eng.Encoder(Unicode).ParseStrict,
		} {
			_, err := parse(tt.expr)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.expr, err)
			}
			if perr.Offset != tt.wantOffset {
				t.Errorf("Parse(%q) offset = %d, want %d", tt.expr, perr.Offset, tt.wantOffset)
			}
			if perr.Source != tt.expr {
				t.Errorf("Parse(%q) source = %q", tt.expr, perr.Source)
			}
		}
	}
}

func TestParse_BadArgumentAlwaysFatal(t *testing.T) {
	eng := NewEngine()
	for _, parse := range []func(string) (string, error){
		eng.Encoder(Unicode).Parse,
		eng.Encoder(Unicode).ParseStrict,
	} {
		_, err := parse("$greek(alpha,beta)")
		if !errors.Is(err, ErrBadArgument) {
			t.Errorf("error = %v, want ErrBadArgument", err)
		}
	}
}

func TestParse_EscapesInsideArgs(t *testing.T) {
	eng := NewEngine()

	// escaped comma and parenthesis stay literal inside an argument
	got, err := eng.Parse(Plain, `$nosuch(a\,b)`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a,b" {
		t.Errorf("escaped comma = %q, want %q", got, "a,b")
	}

	got, err = eng.Parse(Plain, `$nosuch(a\)b)`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a)b" {
		t.Errorf("escaped rparen = %q, want %q", got, "a)b")
	}
}

func TestParse_MixedText(t *testing.T) {
	eng := NewEngine()
	got, err := eng.Parse(Unicode, "Spodumene cation: LiAlSi$sub(2)O$sub(6)$sup(+)")
	if err != nil {
		t.Fatal(err)
	}
	want := "Spodumene cation: LiAlSi₂O₆⁺"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseError_Caret(t *testing.T) {
	eng := NewEngine()
	_, err := eng.Parse(Unicode, "$math(>=")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatal(err)
	}
	caret := perr.Caret()
	lines := strings.Split(caret, "\n")
	if len(lines) != 3 {
		t.Fatalf("caret has %d lines: %q", len(lines), caret)
	}
	if lines[0] != "$math(>=" {
		t.Errorf("caret source line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "^") {
		t.Errorf("caret line = %q", lines[1])
	}
}
