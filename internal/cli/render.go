package cli

import (
	"fmt"
	"io"

	"github.com/notatehq/notate"
	"github.com/notatehq/notate/pkg/symbol"
	"github.com/notatehq/notate/pkg/sympack"
)

// RenderOptions configure one render invocation.
type RenderOptions struct {
	Formats []string // output formats; empty means all four
	Strict  bool
	Packs   []string // extra symbol pack files
	Out     io.Writer
}

// Render evaluates each expression and writes the requested renderings.
// With a single format the codes are written bare; with several each
// line is prefixed by the format name.
func Render(opts RenderOptions, exprs []string) error {
	formats, err := resolveFormats(opts.Formats)
	if err != nil {
		return err
	}

	eng, err := buildEngine(opts.Packs)
	if err != nil {
		return err
	}

	parse := eng.Parse
	if opts.Strict {
		parse = eng.ParseStrict
	}

	for _, expr := range exprs {
		for _, f := range formats {
			code, err := parse(f, expr)
			if err != nil {
				return err
			}
			if len(formats) > 1 {
				fmt.Fprintf(opts.Out, "%-8s %s\n", f.String()+":", code)
			} else {
				fmt.Fprintln(opts.Out, code)
			}
		}
	}
	return nil
}

func resolveFormats(names []string) ([]symbol.Format, error) {
	if len(names) == 0 {
		return symbol.AllFormats(), nil
	}
	formats := make([]symbol.Format, 0, len(names))
	for _, name := range names {
		f, err := symbol.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func buildEngine(packPaths []string) (*symbol.Engine, error) {
	var opts []notate.Option
	for _, path := range packPaths {
		pack, err := sympack.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, notate.WithPacks(pack))
	}
	return notate.New(opts...)
}
