package rational

import (
	"errors"
	"testing"

	"github.com/notatehq/notate/pkg/symbol"
)

func mustQ(t *testing.T, p, q int64) Q {
	t.Helper()
	r, err := New(p, q)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", p, q, err)
	}
	return r
}

func TestNew(t *testing.T) {
	if _, err := New(1, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("New(1, 0) error = %v, want ErrZeroDenominator", err)
	}

	// the sign migrates to the numerator
	r := mustQ(t, 3, -4)
	if r.Num() != -3 || r.Den() != 4 {
		t.Errorf("New(3, -4) = %d/%d, want -3/4", r.Num(), r.Den())
	}
	r = mustQ(t, -3, -4)
	if r.Num() != 3 || r.Den() != 4 {
		t.Errorf("New(-3, -4) = %d/%d, want 3/4", r.Num(), r.Den())
	}
}

func TestZeroValue(t *testing.T) {
	var z Q
	if z.Den() != 1 || !z.IsZero() {
		t.Errorf("zero value = %d/%d", z.Num(), z.Den())
	}
	if s := z.String(); s != "0" {
		t.Errorf("zero String() = %q", s)
	}
	sum := z.Add(mustQ(t, 1, 2))
	if !sum.Equal(mustQ(t, 1, 2)) {
		t.Errorf("0 + 1/2 = %v", sum)
	}
}

func TestArithmetic(t *testing.T) {
	half := mustQ(t, 1, 2)
	third := mustQ(t, 1, 3)

	tests := []struct {
		name string
		got  Q
		want Q
	}{
		{"add", half.Add(third), mustQ(t, 5, 6)},
		{"add same den", half.Add(half), mustQ(t, 1, 1)},
		{"sub", half.Sub(third), mustQ(t, 1, 6)},
		{"mul", half.Mul(third), mustQ(t, 1, 6)},
		{"neg", half.Neg(), mustQ(t, -1, 2)},
		{"abs", mustQ(t, -1, 2).Abs(), half},
	}
	for _, tt := range tests {
		if !tt.got.Equal(tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	q, err := half.Div(third)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(mustQ(t, 3, 2)) {
		t.Errorf("1/2 / 1/3 = %v, want 3/2", q)
	}
	if _, err := half.Div(Q{}); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("divide by zero error = %v", err)
	}
}

func TestFloorDivAndMod(t *testing.T) {
	a := mustQ(t, 7, 2) // 3.5
	b := mustQ(t, 1, 1)

	n, err := a.FloorDiv(b)
	if err != nil {
		t.Fatal(err)
	}
	if !n.Equal(FromInt(3)) {
		t.Errorf("7/2 // 1 = %v, want 3", n)
	}

	r, err := a.Mod(b)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(mustQ(t, 1, 2)) {
		t.Errorf("7/2 mod 1 = %v, want 1/2", r)
	}
}

func TestComparisons(t *testing.T) {
	half := mustQ(t, 1, 2)
	twoQuarters := mustQ(t, 2, 4)
	third := mustQ(t, 1, 3)

	if !half.Equal(twoQuarters) {
		t.Error("1/2 != 2/4")
	}
	if !third.Less(half) {
		t.Error("1/3 not < 1/2")
	}
	if half.Cmp(third) != 1 {
		t.Errorf("Cmp = %d, want 1", half.Cmp(third))
	}
	if mustQ(t, -1, 2).Cmp(half) != -1 {
		t.Error("-1/2 not < 1/2")
	}
}

func TestCanonical(t *testing.T) {
	r := mustQ(t, 6, 8).Canonical()
	if r.Num() != 3 || r.Den() != 4 {
		t.Errorf("Canonical(6/8) = %v, want 3/4", r)
	}
	r = mustQ(t, -6, 8).Canonical()
	if r.Num() != -3 || r.Den() != 4 {
		t.Errorf("Canonical(-6/8) = %v, want -3/4", r)
	}
	if g := mustQ(t, 3, 7).GCD(); g != 1 {
		t.Errorf("GCD(3/7) = %d, want 1", g)
	}
}

func TestFromFloat(t *testing.T) {
	r, err := FromFloat(0.25)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Canonical().Equal(mustQ(t, 1, 4)) {
		t.Errorf("FromFloat(0.25) = %v", r)
	}

	// 1/3 has no finite binary expansion; the exact rational is large
	// but still converts back to the same float
	r, err = FromFloat(1.0 / 3.0)
	if err != nil {
		t.Fatal(err)
	}
	if r.Float() != 1.0/3.0 {
		t.Errorf("FromFloat round trip = %v", r.Float())
	}
}

func TestIsInt(t *testing.T) {
	if !mustQ(t, 4, 2).IsInt() {
		t.Error("4/2 should be integral")
	}
	if mustQ(t, 3, 2).IsInt() {
		t.Error("3/2 should not be integral")
	}
}

func TestString(t *testing.T) {
	if s := mustQ(t, 3, 5).String(); s != "3/5" {
		t.Errorf("String() = %q", s)
	}
	if s := mustQ(t, -7, 1).String(); s != "-7" {
		t.Errorf("String() = %q", s)
	}
}

func TestNotation(t *testing.T) {
	eng := symbol.NewEngine()
	tests := []struct {
		r      Q
		format symbol.Format
		want   string
	}{
		{mustQ(t, 3, 5), symbol.Unicode, "⅗"},
		{mustQ(t, -3, 5), symbol.Unicode, "-⅗"},
		{mustQ(t, 3, 5), symbol.Plain, "3/5"},
		{mustQ(t, 3, 5), symbol.LaTeX, `\frac{3}{5}`},
		{mustQ(t, 3, 5), symbol.HTML, "<sup>3</sup>/<sub>5</sub>"},
		{mustQ(t, 8, 1), symbol.Unicode, "8"},
		{mustQ(t, -8, 1), symbol.LaTeX, "-8"},
	}
	for _, tt := range tests {
		got, err := tt.r.Notation(eng, tt.format)
		if err != nil {
			t.Fatalf("Notation(%v, %s): %v", tt.r, tt.format, err)
		}
		if got != tt.want {
			t.Errorf("Notation(%v, %s) = %q, want %q", tt.r, tt.format, got, tt.want)
		}
	}
}
