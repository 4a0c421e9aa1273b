// Package rational implements exact rational arithmetic on int64
// numerator/denominator pairs, with notation rendering through the
// symbol engine.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/notatehq/notate/pkg/symbol"
)

// ErrZeroDenominator is returned when a rational would be constructed
// with a zero denominator, or when taking the reciprocal of zero.
var ErrZeroDenominator = errors.New("denominator cannot be zero")

// Q is a rational number p/q. The zero value is 0/1. Q is an immutable
// value type; arithmetic returns new values. The denominator is kept
// positive, so the sign always lives on the numerator. Results are NOT
// automatically reduced; call Canonical when the irreducible form
// matters.
type Q struct {
	p, q int64
}

// New returns the rational p/q. q must be nonzero.
func New(p, q int64) (Q, error) {
	if q == 0 {
		return Q{}, ErrZeroDenominator
	}
	if q < 0 {
		p, q = -p, -q
	}
	return Q{p, q}, nil
}

// FromInt returns the rational n/1.
func FromInt(n int64) Q {
	return Q{n, 1}
}

// FromFloat converts a float to the exact rational it represents.
// Binary floating point makes these exact but often unwieldy; 1.0/3
// becomes 6004799503160661/18014398509481984. Canonical does not help,
// the expansion is already irreducible.
func FromFloat(f float64) (Q, error) {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return Q{}, fmt.Errorf("cannot represent %v as a rational", f)
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Q{}, fmt.Errorf("%v overflows int64 rational", f)
	}
	return New(r.Num().Int64(), r.Denom().Int64())
}

// Num returns the numerator.
func (a Q) Num() int64 { return a.p }

// Den returns the denominator, always positive for a constructed Q.
func (a Q) Den() int64 {
	if a.q == 0 {
		return 1 // zero value normalizes to 0/1
	}
	return a.q
}

// Float returns the floating-point value of a.
func (a Q) Float() float64 {
	return float64(a.p) / float64(a.Den())
}

// IsZero reports whether a equals zero.
func (a Q) IsZero() bool { return a.p == 0 }

// IsInt reports whether a reduces to a whole number.
func (a Q) IsInt() bool { return a.p%a.Den() == 0 }

// Add returns a + b.
func (a Q) Add(b Q) Q {
	if a.Den() == b.Den() {
		return Q{a.p + b.p, a.Den()}
	}
	return Q{a.p*b.Den() + a.Den()*b.p, a.Den() * b.Den()}
}

// Sub returns a - b.
func (a Q) Sub(b Q) Q {
	if a.Den() == b.Den() {
		return Q{a.p - b.p, a.Den()}
	}
	return Q{a.p*b.Den() - a.Den()*b.p, a.Den() * b.Den()}
}

// Mul returns a * b.
func (a Q) Mul(b Q) Q {
	return Q{a.p * b.p, a.Den() * b.Den()}
}

// Div returns a / b.
func (a Q) Div(b Q) (Q, error) {
	r, err := b.Reciprocal()
	if err != nil {
		return Q{}, err
	}
	return a.Mul(r), nil
}

// FloorDiv returns the integer quotient of a / b as a rational.
func (a Q) FloorDiv(b Q) (Q, error) {
	if b.IsZero() {
		return Q{}, ErrZeroDenominator
	}
	return FromInt(int64(math.Floor(a.Float() / b.Float()))), nil
}

// Mod returns the remainder a - floor(a/b)*b.
func (a Q) Mod(b Q) (Q, error) {
	n, err := a.FloorDiv(b)
	if err != nil {
		return Q{}, err
	}
	return a.Sub(n.Mul(b)), nil
}

// Neg returns the additive inverse -a.
func (a Q) Neg() Q { return Q{-a.p, a.Den()} }

// Abs returns the absolute value of a.
func (a Q) Abs() Q {
	if a.p < 0 {
		return Q{-a.p, a.Den()}
	}
	return Q{a.p, a.Den()}
}

// Reciprocal returns the multiplicative inverse q/p.
func (a Q) Reciprocal() (Q, error) {
	if a.p == 0 {
		return Q{}, ErrZeroDenominator
	}
	return New(a.Den(), a.p)
}

// Cmp compares a and b, returning -1, 0 or +1.
func (a Q) Cmp(b Q) int {
	l := a.p * b.Den()
	r := a.Den() * b.p
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b denote the same rational, reduced or
// not: 1/2 equals 2/4.
func (a Q) Equal(b Q) bool { return a.Cmp(b) == 0 }

// Less reports whether a < b.
func (a Q) Less(b Q) bool { return a.Cmp(b) < 0 }

// GCD returns the greatest common divisor of |p| and q.
func (a Q) GCD() int64 {
	p, q := a.p, a.Den()
	if p < 0 {
		p = -p
	}
	for q != 0 {
		p, q = q, p%q
	}
	if p == 0 {
		return 1
	}
	return p
}

// Canonical returns the irreducible form of a.
func (a Q) Canonical() Q {
	g := a.GCD()
	return Q{a.p / g, a.Den() / g}
}

// Notation renders a in one output format through eng. Whole numbers
// print without a fraction bar; otherwise the fraction is rendered via
// the engine's frac group, so 3/5 becomes "⅗" in Unicode and
// "\frac{3}{5}" in LaTeX. The sign stays in front of the fraction.
func (a Q) Notation(eng *symbol.Engine, f symbol.Format) (string, error) {
	n, d := a.p, a.Den()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	if d == 1 {
		return fmt.Sprintf("%s%d", sign, n), nil
	}
	code, err := eng.Parse(f, fmt.Sprintf("$frac(%d,%d)", n, d))
	if err != nil {
		return "", err
	}
	return sign + code, nil
}

// String returns the plain "p/q" spelling, or just "p" for whole
// numbers.
func (a Q) String() string {
	if a.Den() == 1 {
		return fmt.Sprintf("%d", a.p)
	}
	return fmt.Sprintf("%d/%d", a.p, a.Den())
}
