package ring

import (
	"github.com/tuneinsight/polyring/utils/sampling"
)

// BinarySampler samples polynomials with coefficients uniformly distributed in {0, 1}.
type BinarySampler struct {
	baseSampler
}

// NewBinarySampler creates a new BinarySampler drawing from src.
func NewBinarySampler(src sampling.Source) *BinarySampler {
	return &BinarySampler{baseSampler{src: src}}
}

// ReadNew samples a new binary polynomial with min(size, Capacity) random coefficients.
func (b *BinarySampler) ReadNew(size int) (pol *Poly) {
	pol = NewPoly()
	for i, n := 0, samples(size); i < n; i++ {
		pol.coeffs[i] = float64(b.src.Uint64() >> 63)
	}
	return
}
