package ring

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyring/utils"
)

// PositiveMod returns x mod m in [0, m) for m > 0.
// Unlike math.Mod, the result is never negative.
func PositiveMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// r + m can round up to m when r is a tiny negative value,
	// and math.Mod keeps the sign of a negative zero.
	if r >= m || r == 0 {
		return 0
	}
	return r
}

// ReduceCyclotomic returns p mod (x^n + 1).
// Using x^n = -1, the coefficient of x^i for i >= n is accumulated on
// x^(i mod n) with sign (-1)^floor(i/n). Coefficients below n are unchanged,
// hence reducing an already reduced polynomial is a no-op.
func ReduceCyclotomic(p *Poly, n int) (*Poly, error) {

	if n < 1 || n > Capacity {
		return nil, fmt.Errorf("cannot ReduceCyclotomic: %w: n=%d", ErrInvalidDegree, n)
	}

	out := NewPoly()
	copy(out.coeffs[:n], p.coeffs[:n])

	d := p.Degree()
	for i := n; i <= d; i++ {
		c := p.coeffs[i]
		if math.Abs(c) <= Tolerance {
			continue
		}
		if (i/n)&1 == 1 {
			out.coeffs[i%n] -= c
		} else {
			out.coeffs[i%n] += c
		}
	}

	return out.trim(), nil
}

// ReduceCoefficients returns the polynomial whose coefficients are those of p
// rounded to the nearest integer (half away from zero) and then reduced into [0, q).
// Rounding happens before the reduction so that floating point noise around
// an integer is removed before wrapping around q.
// Coefficients within Tolerance of zero are left at zero.
func ReduceCoefficients(p *Poly, q float64) (*Poly, error) {

	if err := checkModulus(q); err != nil {
		return nil, fmt.Errorf("cannot ReduceCoefficients: %w", err)
	}

	out := NewPoly()

	d := p.Degree()
	for i := 0; i <= d; i++ {
		if c := p.coeffs[i]; math.Abs(c) > Tolerance {
			out.coeffs[i] = PositiveMod(math.Round(c), q)
		}
	}

	return out.trim(), nil
}

// AddMod returns (x + y) mod (polyMod, q), where only the degree n of
// polyMod is used, interpreting it as x^n + 1.
func AddMod(x, y *Poly, q float64, polyMod *Poly) (*Poly, error) {
	r, err := AddNoModQ(x, y, polyMod)
	if err != nil {
		return nil, err
	}
	return ReduceCoefficients(r, q)
}

// MulMod returns (x * y) mod (polyMod, q), where only the degree n of
// polyMod is used, interpreting it as x^n + 1.
func MulMod(x, y *Poly, q float64, polyMod *Poly) (*Poly, error) {
	r, err := MulNoModQ(x, y, polyMod)
	if err != nil {
		return nil, err
	}
	return ReduceCoefficients(r, q)
}

// AddNoModQ returns (x + y) mod polyMod without reducing the coefficients modulo q.
func AddNoModQ(x, y *Poly, polyMod *Poly) (*Poly, error) {
	return ReduceCyclotomic(Add(x, y), polyMod.Degree())
}

// MulNoModQ returns (x * y) mod polyMod without reducing the coefficients modulo q.
func MulNoModQ(x, y *Poly, polyMod *Poly) (*Poly, error) {
	prod, err := Mul(x, y)
	if err != nil {
		return nil, err
	}
	return ReduceCyclotomic(prod, polyMod.Degree())
}

func checkModulus(q float64) error {
	if !(q > 0) || !utils.IsFinite(q) {
		return fmt.Errorf("%w: q=%v", ErrInvalidModulus, q)
	}
	return nil
}
