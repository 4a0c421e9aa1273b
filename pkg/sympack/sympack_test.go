package sympack

import (
	"errors"
	"strings"
	"testing"

	"github.com/notatehq/notate/pkg/symbol"
)

const explicitPack = `
group: elem
desc: element symbols
formats:
  plain:
    - {key: Fe, code: Fe}
  unicode:
    - {key: Fe, code: Fe}
  html:
    - {key: Fe, code: Fe}
  latex:
    - {key: Fe, code: '\mathrm{Fe}'}
`

const renderPack = `
group: ions
desc: common ions
render: true
entries:
  - {key: hydronium, code: 'H$sub(3)O$sup(+)'}
  - {key: sulfate, code: 'SO$sub(4)$sup(2-)'}
`

func TestLoad_Explicit(t *testing.T) {
	p, err := Load(strings.NewReader(explicitPack))
	if err != nil {
		t.Fatal(err)
	}
	if p.Group != "elem" || p.Desc != "element symbols" {
		t.Errorf("pack header = %q %q", p.Group, p.Desc)
	}

	eng := symbol.NewEngine()
	if err := p.Install(eng); err != nil {
		t.Fatal(err)
	}
	got, err := eng.Parse(symbol.LaTeX, "$elem(Fe)")
	if err != nil {
		t.Fatal(err)
	}
	if got != `\mathrm{Fe}` {
		t.Errorf("$elem(Fe) latex = %q", got)
	}
}

func TestLoad_RenderPack(t *testing.T) {
	p, err := Load(strings.NewReader(renderPack))
	if err != nil {
		t.Fatal(err)
	}
	eng := symbol.NewEngine()
	if err := p.Install(eng); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		format symbol.Format
		want   string
	}{
		{symbol.Unicode, "H₃O⁺"},
		{symbol.Plain, "H_3O+"},
		{symbol.HTML, "H<sub>3</sub>O<sup>+</sup>"},
	}
	for _, tt := range tests {
		got, err := eng.Parse(tt.format, "$ions(hydronium)")
		if err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("%s hydronium = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing group", "desc: x\nformats:\n  plain: []\n"},
		{"no formats", "group: g\n"},
		{"unknown format", "group: g\nformats:\n  markdown: []\n"},
		{"missing format", "group: g\nformats:\n  plain: [{key: a, code: b}]\n"},
		{"empty key", explicitPack + "\n" /* placeholder, replaced below */},
	}
	tests[4].doc = strings.Replace(explicitPack, "key: Fe, code: Fe", "key: '', code: Fe", 1)

	for _, tt := range tests {
		if _, err := Load(strings.NewReader(tt.doc)); !errors.Is(err, ErrInvalidPack) {
			t.Errorf("%s: error = %v, want ErrInvalidPack", tt.name, err)
		}
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	doc := "group: g\nbogus: 1\nformats:\n  plain: []\n"
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("testdata/definitely-not-here.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}
