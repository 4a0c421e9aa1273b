/*
Package notate renders symbolic notation expressions to plain ASCII,
Unicode, HTML and LaTeX simultaneously.

Expressions are ordinary text with embedded calls:

	"$greek(alpha) decay emits He$sup(2+)"
	"H$sub(2)O is $frac(2,3) hydrogen"
	"$sm(nu_e) scattering"

Each call names a renderer group (greek, math, sub, sup, frac, script,
arabic, plus installable packs like phy and sm) and renders differently
per output format: "$greek(alpha)" is "alpha" in plain text, "α" in
Unicode, "&alpha;" in HTML and "\alpha" in LaTeX.

# Usage

The package-level helpers use a shared engine with the physics packs
installed:

	out, err := notate.Eval(symbol.Unicode, "$greek(Omega) baryon")
	// "Ω baryon"

	all, err := notate.EvalAll("$frac(1,2)")
	// all.Plain() == "1/2", all.LaTeX() == `\frac{1}{2}`

For custom symbol groups build your own engine:

	eng, err := notate.New(notate.WithPacks(pack))
	out, err := eng.Parse(symbol.HTML, "$elem(Fe)")

Parsing is lenient by default: unknown calls degrade to their
space-joined arguments. Strict parsing and the underlying machinery
live in pkg/symbol; exact rational arithmetic with fraction notation
lives in pkg/rational.

The notate command wraps the same engine for shell use, and
internal/adapters/http exposes it as a JSON service.
*/
package notate
