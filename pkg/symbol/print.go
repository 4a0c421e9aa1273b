package symbol

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// printLayout carries the column arithmetic for one table print.
type printLayout struct {
	ncols int // key/code column pairs per row
	kwid  int // key column width
	cwid  int // code column width
	sep   int // spacing between column pairs
}

// FprintTable writes the lookup table (format, tid) to w as a multi-column
// key/code listing. When asciiOnly is set, codes are shown as ASCII escape
// sequences instead of raw glyphs. Column count adapts to the terminal
// width when w is one, otherwise 80 columns are assumed.
func (ts *Tables) FprintTable(w io.Writer, f Format, tid string, asciiOnly bool) error {
	tbl, err := ts.Table(f, tid)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Lookup Table: %s:%s  %s\n", f, tid, tbl.Desc)
	ts.fprintMapping(w, f, tbl, asciiOnly)
	return nil
}

func (ts *Tables) fprintMapping(w io.Writer, f Format, tbl *Table, asciiOnly bool) {
	l := ts.layout(w, f, tbl, asciiOnly)
	printHeader(w, l)

	col := 0
	for _, key := range tbl.Keys() {
		code, _ := tbl.Get(key)

		var v string
		var marks int
		if asciiOnly {
			v = asciiCode(code)
		} else {
			v = code
			marks = ts.CountMarks(f, v)
		}

		fmt.Fprintf(w, "%-*s ", l.kwid, key)
		if !asciiOnly && ts.HasLeadingMark(f, v) {
			// pad in front so the mark combines with a space, not the key
			fmt.Fprint(w, strings.Repeat(" ", marks))
			fmt.Fprint(w, padCode(v, l.cwid, marks))
		} else {
			fmt.Fprint(w, padCode(v, l.cwid, marks))
			fmt.Fprint(w, strings.Repeat(" ", marks))
		}

		col++
		if col < l.ncols {
			fmt.Fprint(w, strings.Repeat(" ", l.sep))
		} else {
			fmt.Fprintln(w)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
}

// layout computes column count and widths from key/code extents, the
// nonspacing-mark correction, and the output width.
func (ts *Tables) layout(w io.Writer, f Format, tbl *Table, asciiOnly bool) printLayout {
	kwid, cwid, sep := 1, 1, 2

	for _, key := range tbl.Keys() {
		code, _ := tbl.Get(key)
		if len(key) > kwid {
			kwid = len(key)
		}
		var cw int
		if asciiOnly {
			cw = len(asciiCode(code))
		} else {
			cw = utf8.RuneCountInString(code) - ts.CountMarks(f, code)
		}
		if cw > cwid {
			cwid = cw
		}
	}

	maxcols := outputWidth(w)
	pair := kwid + 1 + cwid

	ncols := maxcols / (pair + sep)
	switch {
	case ncols == 0:
		ncols = 1
		sep = 1
	case ncols > tbl.Len():
		ncols = tbl.Len()
	}

	if ncols < 1 {
		ncols = 1
	}

	// column pair counts snap to 1, 4, 8, 12, 16
	if ncols > 1 {
		if k := ncols / 4; k > 0 {
			ncols = k * 4
		}
		if ncols > 16 {
			ncols = 16
		}
		sep = (maxcols - ncols*pair) / (ncols - 1)
		if sep > 6 {
			sep = 6
		}
	}
	return printLayout{ncols: ncols, kwid: kwid, cwid: cwid, sep: sep}
}

func printHeader(w io.Writer, l printLayout) {
	kcol := clip("key", l.kwid)
	ccol := clip("code", l.cwid)
	kbar := strings.Repeat("—", l.kwid)
	cbar := strings.Repeat("—", l.cwid)

	for col := 0; col < l.ncols-1; col++ {
		fmt.Fprintf(w, "%-*s %s%s", l.kwid, kcol, padCode(ccol, l.cwid, 0),
			strings.Repeat(" ", l.sep))
	}
	fmt.Fprintf(w, "%-*s %s\n", l.kwid, kcol, padCode(ccol, l.cwid, 0))

	for col := 0; col < l.ncols-1; col++ {
		fmt.Fprintf(w, "%s %s%s", kbar, cbar, strings.Repeat(" ", l.sep))
	}
	fmt.Fprintf(w, "%s %s\n", kbar, cbar)
}

// outputWidth returns the terminal width when w is a terminal, else 80.
func outputWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok {
		if fd := int(file.Fd()); term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	return 80
}

// padCode left-aligns a code whose display width is its rune count minus
// its nonspacing marks. fmt's %-*s pads by bytes, which misaligns
// multi-byte glyphs.
func padCode(s string, width, marks int) string {
	display := utf8.RuneCountInString(s) - marks
	if display >= width {
		return s
	}
	return s + strings.Repeat(" ", width-display)
}

// asciiCode renders a code string as its quoted-ASCII escape form, without
// the surrounding quotes.
func asciiCode(code string) string {
	q := strconv.QuoteToASCII(code)
	return q[1 : len(q)-1]
}

func clip(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s
}
