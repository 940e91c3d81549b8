// Package bignum implements arbitrary precision arithmetic helpers
// used as reference values for the float64 arithmetic of the module.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec) // decimal precision

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Round returns round(x), halves being rounded away from zero.
func Round(x *big.Float) (r *big.Float) {
	r = new(big.Float).Set(x)
	if r.Cmp(new(big.Float)) >= 0 {
		r.Add(r, new(big.Float).SetFloat64(0.5))
	} else {
		r.Sub(r, new(big.Float).SetFloat64(0.5))
	}

	tmp := new(big.Int)
	r.Int(tmp)
	r.SetInt(tmp)
	return
}

// PolarFactor returns sqrt(-2 ln(s) / s), the scaling factor of the polar
// Box-Muller transform, with the precision of s.
// s must be in (0, 1).
func PolarFactor(s *big.Float) (f *big.Float) {

	if s.Sign() <= 0 || s.Cmp(new(big.Float).SetInt64(1)) >= 0 {
		panic(fmt.Errorf("invalid s: must be in (0, 1) but is %v", s))
	}

	prec := s.Prec()

	f = bigfloat.Log(s)
	f.Mul(f, NewFloat(-2, prec))
	f.Quo(f, s)
	return f.Sqrt(f)
}

// PolarTransform returns the pair of standard normal variates (u * f, v * f)
// obtained from the point (u, v) of the unit disk by the polar Box-Muller method,
// computed with prec bits of precision.
// Returns an error if (u, v) is the origin or not strictly inside the unit disk.
func PolarTransform(u, v float64, prec uint) (z0, z1 *big.Float, err error) {

	bu := NewFloat(u, prec)
	bv := NewFloat(v, prec)

	s := new(big.Float).SetPrec(prec).Mul(bu, bu)
	s.Add(s, new(big.Float).SetPrec(prec).Mul(bv, bv))

	if s.Sign() == 0 || s.Cmp(NewFloat(1, prec)) >= 0 {
		return nil, nil, fmt.Errorf("invalid point (%v, %v): must be strictly inside the unit disk and not the origin", u, v)
	}

	f := PolarFactor(s)

	z0 = new(big.Float).SetPrec(prec).Mul(bu, f)
	z1 = new(big.Float).SetPrec(prec).Mul(bv, f)
	return
}
