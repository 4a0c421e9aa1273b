// Package sympack loads symbol pack files: YAML documents that declare
// extra renderer groups for installation into a symbol engine.
//
// A pack either spells codes out per format:
//
//	group: elem
//	desc: element symbols
//	formats:
//	  plain:   [{key: Fe, code: Fe}]
//	  unicode: [{key: Fe, code: Fe}]
//	  html:    [{key: Fe, code: Fe}]
//	  latex:   [{key: Fe, code: '\mathrm{Fe}'}]
//
// or declares one expression per key and lets each encoder render it:
//
//	group: ions
//	desc: common ions
//	render: true
//	entries:
//	  - {key: hydronium, code: 'H$sub(3)O$sup(+)'}
package sympack

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notatehq/notate/pkg/symbol"
)

// ErrInvalidPack is wrapped by all pack validation failures.
var ErrInvalidPack = errors.New("invalid symbol pack")

// Entry is one key/code pair in a pack document.
type Entry struct {
	Key  string `yaml:"key"`
	Code string `yaml:"code"`
}

// Pack is a parsed symbol pack document.
type Pack struct {
	Group  string             `yaml:"group"`
	Desc   string             `yaml:"desc"`
	Render bool               `yaml:"render"`
	Ent    []Entry            `yaml:"entries"`
	Form   map[string][]Entry `yaml:"formats"`
}

// Load parses and validates one pack document.
func Load(r io.Reader) (*Pack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Pack
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode symbol pack: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a pack document from disk.
func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *Pack) validate() error {
	if p.Group == "" {
		return fmt.Errorf("%w: missing group", ErrInvalidPack)
	}
	if p.Render {
		if len(p.Ent) == 0 {
			return fmt.Errorf("%w: render pack %q has no entries", ErrInvalidPack, p.Group)
		}
		if len(p.Form) != 0 {
			return fmt.Errorf("%w: pack %q mixes render and formats", ErrInvalidPack, p.Group)
		}
		return validateEntries(p.Group, "entries", p.Ent)
	}

	if len(p.Form) == 0 {
		return fmt.Errorf("%w: pack %q declares no formats", ErrInvalidPack, p.Group)
	}
	for name, entries := range p.Form {
		if _, err := symbol.ParseFormat(name); err != nil {
			return fmt.Errorf("%w: pack %q: %v", ErrInvalidPack, p.Group, err)
		}
		if err := validateEntries(p.Group, name, entries); err != nil {
			return err
		}
	}
	for _, f := range symbol.AllFormats() {
		if _, ok := p.Form[f.String()]; !ok {
			return fmt.Errorf("%w: pack %q missing %s entries", ErrInvalidPack, p.Group, f)
		}
	}
	return nil
}

func validateEntries(group, where string, entries []Entry) error {
	for i, e := range entries {
		if e.Key == "" {
			return fmt.Errorf("%w: pack %q %s[%d]: empty key", ErrInvalidPack, group, where, i)
		}
	}
	return nil
}

// Install registers the pack's group on every encoder of eng. For a
// render pack each entry's code is parsed as a notation expression by
// each encoder in turn; for an explicit pack the per-format codes are
// installed as they stand.
func (p *Pack) Install(eng *symbol.Engine) error {
	if p.Render {
		return p.installRendered(eng)
	}
	entries := make(map[symbol.Format][]symbol.Entry, len(p.Form))
	for name, es := range p.Form {
		f, err := symbol.ParseFormat(name)
		if err != nil {
			return err
		}
		entries[f] = convert(es)
	}
	return eng.Register(p.Group, p.Desc, entries)
}

func (p *Pack) installRendered(eng *symbol.Engine) error {
	for _, f := range symbol.AllFormats() {
		entries := make([]symbol.Entry, 0, len(p.Ent))
		for _, e := range p.Ent {
			code, err := eng.Parse(f, e.Code)
			if err != nil {
				return fmt.Errorf("pack %q: render %s(%s): %w", p.Group, f, e.Key, err)
			}
			entries = append(entries, symbol.Entry{Key: e.Key, Code: code})
		}
		eng.Encoder(f).Register(p.Group, p.Desc, nil, entries)
	}
	return nil
}

func convert(es []Entry) []symbol.Entry {
	out := make([]symbol.Entry, len(es))
	for i, e := range es {
		out[i] = symbol.Entry{Key: e.Key, Code: e.Code}
	}
	return out
}
