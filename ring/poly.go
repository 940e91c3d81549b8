package ring

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tuneinsight/polyring/utils"
)

const (
	// Capacity is the maximum number of coefficients of a polynomial,
	// i.e. every polynomial has degree at most Capacity-1.
	Capacity = 4096

	// Tolerance is the magnitude under which a coefficient is considered zero.
	// It is used for degree inference, product term filtering and every
	// zero/integrality decision of the package.
	Tolerance = 1e-9
)

// Poly is a polynomial with real coefficients approximating integers.
// The coefficient of x^i is stored at index i.
//
// All the slots above the degree of a Poly hold exactly zero.
// Operations of the package never modify their inputs and always
// return a new Poly.
type Poly struct {
	coeffs [Capacity]float64
}

// NewPoly returns the zero polynomial.
func NewPoly() *Poly {
	return new(Poly)
}

// NewPolyFromCoeffs returns a new polynomial whose i-th coefficient is coeffs[i].
// Returns ErrCapacityOverflow if coeffs has a non-zero value at an index
// greater or equal to Capacity.
func NewPolyFromCoeffs(coeffs []float64) (*Poly, error) {
	p := NewPoly()
	for i, c := range coeffs {
		if i >= Capacity {
			if math.Abs(c) > Tolerance {
				return nil, fmt.Errorf("cannot NewPolyFromCoeffs: %w: coefficient at index %d", ErrCapacityOverflow, i)
			}
			continue
		}
		if !utils.IsFinite(c) {
			return nil, fmt.Errorf("cannot NewPolyFromCoeffs: coefficient at index %d is not finite", i)
		}
		p.coeffs[i] = c
	}
	return p.trim(), nil
}

// NewMonomial returns c * x^degree.
func NewMonomial(degree int, c float64) (*Poly, error) {
	if degree < 0 || degree >= Capacity {
		return nil, fmt.Errorf("cannot NewMonomial: %w: degree %d", ErrCapacityOverflow, degree)
	}
	p := NewPoly()
	p.SetCoeff(degree, c)
	return p, nil
}

// NewModulusPoly returns the cyclotomic polynomial x^n + 1.
func NewModulusPoly(n int) (*Poly, error) {
	if n < 1 || n >= Capacity {
		return nil, fmt.Errorf("cannot NewModulusPoly: %w: n=%d", ErrInvalidDegree, n)
	}
	p := NewPoly()
	p.coeffs[0] = 1
	p.coeffs[n] = 1
	return p, nil
}

// Degree returns the largest index whose coefficient is larger than Tolerance in absolute value.
//
// The zero polynomial has degree 0, exactly like a non-zero constant:
// a degree of 0 does not imply a non-zero leading coefficient, see IsZero.
func (p *Poly) Degree() int {
	for i := Capacity - 1; i >= 0; i-- {
		if math.Abs(p.coeffs[i]) > Tolerance {
			return i
		}
	}
	return 0
}

// IsZero returns true if all the coefficients of p are within Tolerance of zero.
func (p *Poly) IsZero() bool {
	return p.Degree() == 0 && math.Abs(p.coeffs[0]) <= Tolerance
}

// Coeff returns the coefficient of x^i, and 0 for any i outside [0, Capacity).
func (p *Poly) Coeff(i int) float64 {
	if i < 0 || i >= Capacity {
		return 0
	}
	return p.coeffs[i]
}

// SetCoeff sets the coefficient of x^i to v and reports whether the write happened.
// Writes at an index outside [0, Capacity) and writes of non-finite values
// are ignored and return false. Values within Tolerance of zero are stored as 0.
//
// SetCoeff is meant to build polynomials: it must not be called on a Poly
// shared with another goroutine.
func (p *Poly) SetCoeff(i int, v float64) bool {
	if i < 0 || i >= Capacity || !utils.IsFinite(v) {
		return false
	}
	if math.Abs(v) <= Tolerance {
		v = 0
	}
	p.coeffs[i] = v
	return true
}

// Coeffs returns a copy of the coefficients of p, from x^0 to x^Degree().
func (p *Poly) Coeffs() []float64 {
	c := make([]float64, p.Degree()+1)
	copy(c, p.coeffs[:])
	return c
}

// CopyNew returns a deep copy of p.
func (p *Poly) CopyNew() *Poly {
	c := *p
	return &c
}

// Equal returns true if p and other have strictly identical coefficients.
func (p *Poly) Equal(other *Poly) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.coeffs == other.coeffs
}

// ApproxEqual returns true if the coefficients of p and other differ by at most tol.
func (p *Poly) ApproxEqual(other *Poly, tol float64) bool {
	if p == nil || other == nil {
		return p == other
	}
	return cmp.Equal(p.coeffs[:], other.coeffs[:], cmpopts.EquateApprox(0, tol))
}

// String returns a human readable representation of p, lowest degree first.
func (p *Poly) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range p.Coeffs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteByte(']')
	return sb.String()
}

// trim clears the tolerance-level residue left above the degree of p
// and returns p.
func (p *Poly) trim() *Poly {
	d := p.Degree()
	for i := d + 1; i < Capacity; i++ {
		p.coeffs[i] = 0
	}
	if d == 0 && math.Abs(p.coeffs[0]) <= Tolerance {
		p.coeffs[0] = 0
	}
	return p
}
