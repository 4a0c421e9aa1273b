package symbol

import "fmt"

// Format identifies one of the four target text representations.
// The set is closed; callers select outputs by this value.
type Format int

const (
	Plain Format = iota // 7-bit ASCII only
	Unicode
	HTML
	LaTeX
)

// AllFormats lists every supported format in declaration order.
func AllFormats() []Format {
	return []Format{Plain, Unicode, HTML, LaTeX}
}

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Unicode:
		return "unicode"
	case HTML:
		return "html"
	case LaTeX:
		return "latex"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat converts a format name ("plain", "unicode", "html", "latex")
// into its Format value.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "plain":
		return Plain, nil
	case "unicode":
		return Unicode, nil
	case "html":
		return HTML, nil
	case "latex":
		return LaTeX, nil
	default:
		return 0, fmt.Errorf("unknown format %q", name)
	}
}
