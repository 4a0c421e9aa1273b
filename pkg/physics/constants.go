package physics

import (
	"math"

	"github.com/notatehq/notate/pkg/symbol"
)

// Constant is a named physical constant. Sym keys the "phy" symbol
// group, so Notation needs an engine with the pack installed.
type Constant struct {
	Sym   string  // phy group key
	Value float64 // value in Units
	Units string
	Desc  string
}

// Notation renders the constant's symbol in one output format.
func (c Constant) Notation(eng *symbol.Engine, f symbol.Format) (string, error) {
	return eng.Parse(f, "$phy("+c.Sym+")")
}

// Float returns the constant's value.
func (c Constant) Float() float64 { return c.Value }

// CODATA and derived values. The Planck units are computed from the
// measured constants rather than transcribed.
var (
	// SpeedOfLight is the speed of light in vacuum, m/s.
	SpeedOfLight = Constant{
		Sym: "c", Value: 299792458.0,
		Units: "m/s",
		Desc:  "speed of light in vacuum",
	}

	// Gravitational is the Newtonian constant of gravitation,
	// m^3/(kg*s^2).
	Gravitational = Constant{
		Sym: "G", Value: 6.67408e-11,
		Units: "m^3/(kg*s^2)",
		Desc:  "gravitational constant",
	}

	// Boltzmann relates average kinetic energy of particles to
	// temperature, J/K.
	Boltzmann = Constant{
		Sym: "k_B", Value: 1.38064852e-23,
		Units: "J/K",
		Desc:  "Boltzmann constant",
	}

	// VacuumPermittivity is the absolute dielectric permittivity of
	// classical vacuum, F/m.
	VacuumPermittivity = Constant{
		Sym: "e_0", Value: 8.854187817e-12,
		Units: "F/m",
		Desc:  "absolute dielectric permittivity of classical vacuum",
	}

	// Planck is the quantum of electromagnetic action, J*s.
	Planck = Constant{
		Sym: "h", Value: 6.62607015e-34,
		Units: "J-s",
		Desc:  "Planck constant, quantum of electromagnetic action",
	}

	// ReducedPlanck is h over one turn, J*s/rad.
	ReducedPlanck = Constant{
		Sym: "h-bar", Value: 6.62607015e-34 / (2 * math.Pi),
		Units: "J-s/rad",
		Desc:  "reduced Planck constant",
	}

	// PlanckLength is the distance light travels in one Planck time, m.
	PlanckLength = Constant{
		Sym:   "l_P",
		Value: math.Sqrt(ReducedPlanck.Value * Gravitational.Value / math.Pow(SpeedOfLight.Value, 3)),
		Units: "m",
		Desc:  "Planck length",
	}

	// PlanckTime is the Planck length divided by the speed of light, s.
	PlanckTime = Constant{
		Sym:   "t_P",
		Value: PlanckLength.Value / SpeedOfLight.Value,
		Units: "s",
		Desc:  "Planck time",
	}

	// PlanckMass in kg.
	PlanckMass = Constant{
		Sym:   "m_P",
		Value: math.Sqrt(ReducedPlanck.Value * SpeedOfLight.Value / Gravitational.Value),
		Units: "kg",
		Desc:  "Planck mass",
	}

	// PlanckCharge in C.
	PlanckCharge = Constant{
		Sym:   "q_P",
		Value: math.Sqrt(4 * math.Pi * VacuumPermittivity.Value * ReducedPlanck.Value * SpeedOfLight.Value),
		Units: "C",
		Desc:  "Planck charge",
	}

	// PlanckTemperature in K.
	PlanckTemperature = Constant{
		Sym:   "T_P",
		Value: PlanckMass.Value * math.Pow(SpeedOfLight.Value, 2) / Boltzmann.Value,
		Units: "K",
		Desc:  "Planck temperature",
	}

	// FineStructure characterizes the strength of the electromagnetic
	// interaction between charged particles. Dimensionless.
	FineStructure = Constant{
		Sym: "alpha", Value: 1.0 / 137,
		Units: "dimensionless",
		Desc:  "fine-structure constant",
	}
)

// Constants lists every constant in this package, in conventional order.
func Constants() []Constant {
	return []Constant{
		SpeedOfLight, Gravitational, Boltzmann, VacuumPermittivity,
		Planck, ReducedPlanck, PlanckLength, PlanckTime,
		PlanckMass, PlanckCharge, PlanckTemperature, FineStructure,
	}
}
