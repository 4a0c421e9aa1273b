/*
Package symbol renders symbolic notation expressions into four output
formats at once: plain ASCII, Unicode, HTML and LaTeX.

An expression is ordinary text with embedded calls such as

	"$greek(alpha) decay emits He$sup(2+)"
	"$frac(3,5) is 60%"
	"\$50 is escaped"

Calls select a renderer group (greek, math, sub, sup, frac, script,
arabic) registered with the encoder for each format. Arguments may nest
further calls. The same expression renders as "alpha" in plain text,
"α" in Unicode, "&alpha;" in HTML and "\alpha" in LaTeX.

Construct an Engine at startup, register any additional symbol groups, and
treat it as read-only afterwards; encoders keep no state between Parse
calls and may then be used concurrently.

	eng := symbol.NewEngine()
	out, err := eng.Parse(symbol.Unicode, "$greek(Omega) baryon")

Parsing is lenient by default: an unknown call degrades to its space-joined
arguments. ParseStrict fails instead, and malformed call syntax fails in
both modes with a ParseError carrying the source text and cursor offset.
*/
package symbol
