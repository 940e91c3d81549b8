package ring

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyring/utils"
)

// DivMod returns the quotient and remainder of the long division of num by den.
//
// The division emulates integer arithmetic: at each step the leading coefficients
// of the remainder and of den are rounded and their truncated quotient becomes
// the next quotient term. It is therefore exact only if all coefficients are
// integers and the leading coefficient of den divides every leading coefficient
// met during the division, which is always the case for den = x^n + 1.
//
// Returns ErrZeroDivisor if the leading coefficient of den rounds to zero and
// ErrInexactDivision if a step leaves a non-zero residue on the eliminated term.
// On success, the remainder is either zero or of degree strictly smaller than den.
func DivMod(num, den *Poly) (quo, rem *Poly, err error) {

	ddeg := den.Degree()

	dlead := math.Round(den.coeffs[ddeg])
	if dlead == 0 {
		return nil, nil, fmt.Errorf("cannot DivMod: %w: leading coefficient %v of the denominator rounds to zero", ErrZeroDivisor, den.coeffs[ddeg])
	}

	ndeg := num.Degree()

	quo = NewPoly()
	rem = num.CopyNew()

	if ndeg < ddeg {
		return
	}

	// Only the non-zero terms of den contribute to the subtractions.
	support := make([]int, 0, ddeg+1)
	for i := 0; i <= ddeg; i++ {
		if math.Abs(den.coeffs[i]) > Tolerance {
			support = append(support, i)
		}
	}

	for k := ndeg - ddeg; k >= 0; k-- {

		target := ddeg + k

		if c := math.Trunc(math.Round(rem.coeffs[target]) / dlead); c != 0 {
			quo.coeffs[k] += c
			for _, i := range support {
				rem.coeffs[i+k] -= c * den.coeffs[i]
			}
		}

		if residue := rem.coeffs[target]; math.Abs(residue) > Tolerance {
			return nil, nil, fmt.Errorf("cannot DivMod: %w: residue %v left on x^%d", ErrInexactDivision, residue, target)
		}

		rem.coeffs[target] = 0
	}

	quo.trim()
	rem.trim()

	if !rem.IsZero() && rem.Degree() >= ddeg {
		return nil, nil, fmt.Errorf("cannot DivMod: %w: remainder degree %d >= denominator degree %d", ErrInexactDivision, rem.Degree(), ddeg)
	}

	return
}

// RoundDivScalar returns the polynomial whose coefficients are those of p divided by s
// and rounded to the nearest integer, halves being rounded away from zero
// (3.5 -> 4, -3.5 -> -4).
// Returns ErrZeroDivisor if |s| <= Tolerance.
func RoundDivScalar(p *Poly, s float64) (*Poly, error) {

	if math.Abs(s) <= Tolerance || !utils.IsFinite(s) {
		return nil, fmt.Errorf("cannot RoundDivScalar: %w: divisor %v", ErrZeroDivisor, s)
	}

	out := NewPoly()

	d := p.Degree()
	for i := 0; i <= d; i++ {
		out.coeffs[i] = math.Round(p.coeffs[i] / s)
	}

	return out.trim(), nil
}
