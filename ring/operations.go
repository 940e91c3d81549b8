package ring

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyring/utils"
)

// Add returns a + b, coefficient-wise and without modular reduction.
func Add(a, b *Poly) *Poly {
	out := NewPoly()
	d := utils.Max(a.Degree(), b.Degree())
	for i := 0; i <= d; i++ {
		out.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
	return out.trim()
}

// Sub returns a - b, coefficient-wise and without modular reduction.
func Sub(a, b *Poly) *Poly {
	out := NewPoly()
	d := utils.Max(a.Degree(), b.Degree())
	for i := 0; i <= d; i++ {
		out.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
	return out.trim()
}

// Neg returns -a.
func Neg(a *Poly) *Poly {
	out := NewPoly()
	d := a.Degree()
	for i := 0; i <= d; i++ {
		out.coeffs[i] = -a.coeffs[i]
	}
	return out.trim()
}

// MulScalar returns p * s.
func MulScalar(p *Poly, s float64) *Poly {
	out := NewPoly()
	d := p.Degree()
	for i := 0; i <= d; i++ {
		out.coeffs[i] = p.coeffs[i] * s
	}
	return out.trim()
}

// Mul returns the schoolbook product a * b.
// Coefficients within Tolerance of zero are skipped.
// Returns ErrCapacityOverflow if degree(a) + degree(b) >= Capacity.
func Mul(a, b *Poly) (*Poly, error) {

	da, db := a.Degree(), b.Degree()

	// The leading coefficients of two non-zero polynomials are both above
	// Tolerance, so the x^(da+db) term always exists.
	if da+db >= Capacity {
		return nil, fmt.Errorf("cannot Mul: %w: degree(a)=%d + degree(b)=%d >= %d", ErrCapacityOverflow, da, db, Capacity)
	}

	out := NewPoly()

	for i := 0; i <= da; i++ {

		ai := a.coeffs[i]

		if math.Abs(ai) <= Tolerance {
			continue
		}

		tmp := out.coeffs[i : i+db+1]

		for j, bj := range b.coeffs[:db+1] {
			if math.Abs(bj) > Tolerance {
				tmp[j] += ai * bj
			}
		}
	}

	return out.trim(), nil
}
