// Package physics registers physics and Standard Model symbol groups on
// a symbol engine, and defines the physical constants that use them.
package physics

import (
	"fmt"

	"github.com/notatehq/notate/pkg/symbol"
)

// The pack tables are written as notation expressions and rendered
// through each encoder at install time, so one definition yields the
// right spelling per format. "h$sub(B)" becomes "h_B" in plain text and
// "h<sub>B</sub>" in HTML without per-format tables.

// physics symbols, keyed the way the constants below reference them
var phyExprs = []symbol.Entry{
	{Key: "c", Code: "c"},                       // speed of light
	{Key: "G", Code: "G"},                       // gravitational constant
	{Key: "k_B", Code: "k$sub(B)"},              // Boltzmann constant
	{Key: "e_0", Code: "$greek(epsilon)$sub(0)"}, // vacuum permittivity
	{Key: "h", Code: "ℎ"},                  // Planck constant
	{Key: "h-bar", Code: "ℏ"},              // reduced Planck constant
	{Key: "l_P", Code: "l$sub(p)"},              // Planck length
	{Key: "t_P", Code: "t$sub(p)"},              // Planck time
	{Key: "m_P", Code: "m$sub(p)"},              // Planck mass
	{Key: "q_P", Code: "q$sub(p)"},              // Planck charge
	{Key: "T_P", Code: "T$sub(p)"},              // Planck temperature
	{Key: "alpha", Code: "$greek(alpha)"},       // fine-structure constant
}

// Standard Model particle symbols
var smExprs = []symbol.Entry{
	// quarks
	{Key: "u", Code: "u"},
	{Key: "d", Code: "d"},
	{Key: "c", Code: "c"},
	{Key: "s", Code: "s"},
	{Key: "t", Code: "t"},
	{Key: "b", Code: "b"},
	{Key: "u-bar", Code: "u$math(bar)"},
	{Key: "d-bar", Code: "d$math(bar)"},
	{Key: "c-bar", Code: "c$math(bar)"},
	{Key: "s-bar", Code: "s$math(bar)"},
	{Key: "t-bar", Code: "t$math(bar)"},
	{Key: "b-bar", Code: "b$math(bar)"},

	// QCD color charge
	{Key: "R", Code: "R"},
	{Key: "G", Code: "G"},
	{Key: "B", Code: "B"},
	{Key: "R-bar", Code: "R$math(bbar)"},
	{Key: "G-bar", Code: "G$math(bbar)"},
	{Key: "B-bar", Code: "B$math(bbar)"},

	// leptons
	{Key: "e", Code: "e"},
	{Key: "e-", Code: "e$sup(-)"},
	{Key: "mu-", Code: "$greek(mu)$sup(-)"},
	{Key: "tau-", Code: "$greek(tau)$sup(-)"},
	{Key: "nu_e", Code: "$greek(nu)$sub(e)"},
	{Key: "nu_mu", Code: "$greek(nu)$sub($greek(mu))"},
	{Key: "nu_tau", Code: "$greek(nu)$sub($greek(tau))"},
	{Key: "e+", Code: "e$sup(+)"},
	{Key: "mu+", Code: "$greek(mu)$sup(+)"},
	{Key: "tau+", Code: "$greek(tau)$sup(+)"},
	{Key: "nu_e-bar", Code: "$greek(nu)$math(bar)$sub(e)"},
	{Key: "nu_mu-bar", Code: "$greek(nu)$math(bar)$sub($greek(mu))"},
	{Key: "nu_tau-bar", Code: "$greek(nu)$math(bar)$sub($greek(tau))"},

	// bosons
	{Key: "gamma", Code: "$greek(gamma)"},
	{Key: "g", Code: "g"},
	{Key: "W-", Code: "W$sup(-)"},
	{Key: "Z", Code: "Z"},
	{Key: "H0", Code: "H$sup(0)"},
	{Key: "W+", Code: "W$sup(+)"},

	// baryons
	{Key: "p", Code: "p"},
	{Key: "p+", Code: "p$sup(+)"},
	{Key: "n", Code: "n"},
	{Key: "n0", Code: "n$sup(0)"},
	{Key: "p-bar", Code: "p$math(bar)"},
	{Key: "n-bar", Code: "n$math(bar)"},

	// mesons
	{Key: "pi+", Code: "$greek(pi)$sup(+)"},
	{Key: "pi0", Code: "$greek(pi)$sup(0)"},
	{Key: "eta_c", Code: "$greek(eta)$sub(c)"},
	{Key: "eta_b", Code: "$greek(eta)$sub(b)"},
	{Key: "K+", Code: "K$sup(+)"},
	{Key: "K0", Code: "K$sup(0)"},
	{Key: "D+", Code: "D$sup(+)"},
	{Key: "D0", Code: "D$sup(0)"},
	{Key: "D+_s", Code: "D$sub(s)$sup(+)"},
	{Key: "B+", Code: "B$sup(+)"},
	{Key: "B0", Code: "B$sup(0)"},
	{Key: "B0_s", Code: "B$sub(s)$sup(0)"},
	{Key: "B+_c", Code: "B$sub(c)$sup(+)"},
	{Key: "pi-", Code: "$greek(pi)$sup(-)"},
	{Key: "pi0-bar", Code: "$greek(pi)$math(bar)$sup(0)"},
	{Key: "K-", Code: "K$sup(-)"},
	{Key: "K0-bar", Code: "K$math(bar)$sup(0)"},
	{Key: "D-", Code: "D$sup(-)"},
	{Key: "D0-bar", Code: "D$math(bar)$sup(0)"},
	{Key: "D-_s", Code: "D$sub(s)$sup(-)"},
	{Key: "B-", Code: "B$sup(-)"},
	{Key: "B0-bar", Code: "B$math(bar)$sup(0)"},
	{Key: "B0_s-bar", Code: "B$math(bar)$sub(s)$sup(0)"},
	{Key: "B-_c", Code: "B$sub(c)$sup(-)"},
}

// latexPhyFixups replace renderings that come out wrong when Unicode
// glyphs round-trip through the LaTeX encoder. U+210F has a proper
// macro; the plain Planck constant letter is just an italic h.
var latexPhyFixups = map[string]string{
	"h":     "h",
	"h-bar": `\hbar`,
}

// Install registers the "phy" and "sm" symbol groups on every encoder
// of eng. Safe to call once per engine; a second call reinstalls the
// same mappings.
func Install(eng *symbol.Engine) error {
	if err := installPack(eng, "phy", "physics symbols", phyExprs, latexPhyFixups); err != nil {
		return err
	}
	return installPack(eng, "sm", "Standard Model symbols", smExprs, nil)
}

func installPack(eng *symbol.Engine, gid, desc string, exprs []symbol.Entry, latexFixups map[string]string) error {
	for _, f := range symbol.AllFormats() {
		entries := make([]symbol.Entry, 0, len(exprs))
		for _, e := range exprs {
			code, err := eng.Parse(f, e.Code)
			if err != nil {
				return fmt.Errorf("install %s %s(%s): %w", f, gid, e.Key, err)
			}
			if f == symbol.LaTeX {
				if fix, ok := latexFixups[e.Key]; ok {
					code = fix
				}
			}
			entries = append(entries, symbol.Entry{Key: e.Key, Code: code})
		}
		eng.Encoder(f).Register(gid, desc, nil, entries)
	}
	return nil
}
