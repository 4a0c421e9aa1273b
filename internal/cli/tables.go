package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/notatehq/notate/pkg/symbol"
)

// TablesOptions configure the tables command.
type TablesOptions struct {
	Format   string // required output format
	Table    string // table id; empty lists the installed tables
	ASCII    bool   // show codes as ASCII escapes
	Markdown bool   // render the table as styled markdown
	Packs    []string
	Out      io.Writer

	// RenderMarkdown turns markdown into terminal output. The command
	// wires glamour in; tests inject identity.
	RenderMarkdown func(string) (string, error)
}

// Tables lists lookup tables or prints one table's mapping.
func Tables(opts TablesOptions) error {
	f, err := symbol.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	eng, err := buildEngine(opts.Packs)
	if err != nil {
		return err
	}
	tables := eng.Tables()

	if opts.Table == "" {
		for _, tid := range tables.TableIDs(f) {
			desc, err := tables.Description(f, tid)
			if err != nil {
				return err
			}
			fmt.Fprintf(opts.Out, "%s:%-8s %s\n", f, tid, desc)
		}
		return nil
	}

	if opts.Markdown {
		return printMarkdown(opts, tables, f)
	}
	return tables.FprintTable(opts.Out, f, opts.Table, opts.ASCII)
}

func printMarkdown(opts TablesOptions, tables *symbol.Tables, f symbol.Format) error {
	tbl, err := tables.Table(f, opts.Table)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s:%s\n\n%s\n\n", f, opts.Table, tbl.Desc)
	b.WriteString("| key | code |\n|-----|------|\n")
	for _, key := range tbl.Keys() {
		code, _ := tbl.Get(key)
		fmt.Fprintf(&b, "| %s | %s |\n", key, code)
	}

	render := opts.RenderMarkdown
	if render == nil {
		render = func(md string) (string, error) { return md, nil }
	}
	out, err := render(b.String())
	if err != nil {
		return err
	}
	fmt.Fprint(opts.Out, out)
	return nil
}
