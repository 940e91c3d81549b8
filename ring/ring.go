// Package ring implements arithmetic on polynomials with real coefficients
// approximating integers, over the ring Z_q[X]/(X^N+1) used by RLWE based schemes,
// together with the samplers producing the random polynomials of such schemes.
package ring

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
)

// Ring is the ring Z_q[X]/(X^N+1).
// A Ring is immutable and can be used concurrently.
type Ring struct {
	n       int
	q       float64
	modulus *Poly
}

// RingLiteral is the serializable definition of a Ring.
type RingLiteral struct {
	N int
	Q float64
}

// NewRing creates a new Ring of degree n (the cyclotomic polynomial is X^n+1)
// and coefficient modulus q.
// n must be such that the product of two reduced polynomials fits in a Poly,
// that is 2n-1 <= Capacity.
func NewRing(n int, q float64) (r *Ring, err error) {

	if n < 1 || 2*n-1 > Capacity {
		return nil, fmt.Errorf("cannot NewRing: %w: n=%d must be in [1, %d]", ErrInvalidDegree, n, (Capacity+1)/2)
	}

	if err = checkModulus(q); err != nil {
		return nil, fmt.Errorf("cannot NewRing: %w", err)
	}

	r = &Ring{n: n, q: q}

	if r.modulus, err = NewModulusPoly(n); err != nil {
		return nil, fmt.Errorf("cannot NewRing: %w", err)
	}

	return
}

// NewRingFromLiteral creates a new Ring from its literal definition.
func NewRingFromLiteral(lit RingLiteral) (*Ring, error) {
	return NewRing(lit.N, lit.Q)
}

// N returns the degree of the cyclotomic polynomial of the ring.
func (r *Ring) N() int {
	return r.n
}

// Q returns the coefficient modulus of the ring.
func (r *Ring) Q() float64 {
	return r.q
}

// ModulusPoly returns a copy of the cyclotomic polynomial X^N+1.
func (r *Ring) ModulusPoly() *Poly {
	return r.modulus.CopyNew()
}

// Literal returns the RingLiteral of the ring.
func (r *Ring) Literal() RingLiteral {
	return RingLiteral{N: r.n, Q: r.q}
}

// Equal returns true if both rings have the same degree and modulus.
func (r *Ring) Equal(other *Ring) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return cmp.Equal(r.Literal(), other.Literal())
}

// MarshalJSON encodes the ring as its RingLiteral.
func (r *Ring) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Literal())
}

// UnmarshalJSON decodes a RingLiteral and sets the ring accordingly.
func (r *Ring) UnmarshalJSON(data []byte) (err error) {
	var lit RingLiteral
	if err = json.Unmarshal(data, &lit); err != nil {
		return
	}
	var rr *Ring
	if rr, err = NewRingFromLiteral(lit); err != nil {
		return
	}
	*r = *rr
	return
}

// Reduce returns p mod (X^N+1, q).
func (r *Ring) Reduce(p *Poly) (*Poly, error) {
	red, err := ReduceCyclotomic(p, r.n)
	if err != nil {
		return nil, err
	}
	return ReduceCoefficients(red, r.q)
}

// Add returns a + b in the ring.
func (r *Ring) Add(a, b *Poly) (*Poly, error) {
	return AddMod(a, b, r.q, r.modulus)
}

// Sub returns a - b in the ring.
func (r *Ring) Sub(a, b *Poly) (*Poly, error) {
	return r.Reduce(Sub(a, b))
}

// Neg returns -a in the ring.
func (r *Ring) Neg(a *Poly) (*Poly, error) {
	return r.Reduce(Neg(a))
}

// Mul returns a * b in the ring.
func (r *Ring) Mul(a, b *Poly) (*Poly, error) {
	return MulMod(a, b, r.q, r.modulus)
}

// MulScalar returns s * a in the ring.
func (r *Ring) MulScalar(a *Poly, s float64) (*Poly, error) {
	return r.Reduce(MulScalar(a, s))
}

// AddNoModQ returns a + b mod X^N+1, leaving the coefficients unreduced.
func (r *Ring) AddNoModQ(a, b *Poly) (*Poly, error) {
	return AddNoModQ(a, b, r.modulus)
}

// MulNoModQ returns a * b mod X^N+1, leaving the coefficients unreduced.
func (r *Ring) MulNoModQ(a, b *Poly) (*Poly, error) {
	return MulNoModQ(a, b, r.modulus)
}

// Rescale returns round(t * p / q) mod t, the map taking a polynomial of
// Z_q[X]/(X^N+1) to Z_t[X]/(X^N+1), as done when decrypting.
func (r *Ring) Rescale(p *Poly, t float64) (*Poly, error) {

	if err := checkModulus(t); err != nil {
		return nil, fmt.Errorf("cannot Rescale: %w", err)
	}

	red, err := ReduceCyclotomic(p, r.n)
	if err != nil {
		return nil, err
	}

	scaled, err := RoundDivScalar(MulScalar(red, t), r.q)
	if err != nil {
		return nil, fmt.Errorf("cannot Rescale: %w", err)
	}

	return ReduceCoefficients(scaled, t)
}

// IsCanonical returns true if p has degree smaller than N and all its
// coefficients are integers in [0, q).
func (r *Ring) IsCanonical(p *Poly) bool {
	if !p.IsZero() && p.Degree() >= r.n {
		return false
	}
	for _, c := range p.coeffs[:r.n] {
		if c < 0 || c >= r.q || math.Abs(c-math.Round(c)) > Tolerance {
			return false
		}
	}
	return true
}
