package ring

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyring/utils/sampling"
)

// UniformSampler samples polynomials with coefficients uniformly distributed
// over the real interval [0, Modulus).
type UniformSampler struct {
	baseSampler
	modulus float64
}

// NewUniformSampler creates a new UniformSampler drawing from src.
func NewUniformSampler(src sampling.Source, X Uniform) (*UniformSampler, error) {
	if err := checkModulus(X.Modulus); err != nil {
		return nil, fmt.Errorf("cannot NewUniformSampler: %w", err)
	}
	return &UniformSampler{
		baseSampler: baseSampler{src: src},
		modulus:     X.Modulus,
	}, nil
}

// ReadNew samples a new uniform polynomial with min(size, Capacity) random coefficients.
func (u *UniformSampler) ReadNew(size int) (pol *Poly) {
	pol = NewPoly()
	for i, n := 0, samples(size); i < n; i++ {
		// Float64() < 1 but the product can still round up to the modulus.
		v := u.src.Float64() * u.modulus
		if v >= u.modulus {
			v = math.Nextafter(u.modulus, 0)
		}
		pol.coeffs[i] = v
	}
	return pol.trim()
}
