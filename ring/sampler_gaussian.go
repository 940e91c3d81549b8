package ring

import (
	"fmt"
	"math"

	"github.com/tuneinsight/polyring/utils"
	"github.com/tuneinsight/polyring/utils/sampling"
)

// GaussianSampler samples polynomials with coefficients round(Mean + Sigma * z),
// z being a standard normal variate obtained with the polar Box-Muller method.
//
// The method produces the variates by pairs: the second one is kept by the
// sampler and returned by the next draw. This spare value is part of the
// sampler state, so a GaussianSampler must not be shared between goroutines.
type GaussianSampler struct {
	baseSampler
	mean, sigma float64

	hasSpare bool
	spare    float64
}

// NewGaussianSampler creates a new GaussianSampler drawing from src.
func NewGaussianSampler(src sampling.Source, X DiscreteGaussian) (*GaussianSampler, error) {
	if !utils.IsFinite(X.Mean) || !utils.IsFinite(X.Sigma) || X.Sigma < 0 {
		return nil, fmt.Errorf("cannot NewGaussianSampler: invalid parameters Mean=%v Sigma=%v", X.Mean, X.Sigma)
	}
	return &GaussianSampler{
		baseSampler: baseSampler{src: src},
		mean:        X.Mean,
		sigma:       X.Sigma,
	}, nil
}

// ReadNew samples a new gaussian polynomial with min(size, Capacity) random coefficients.
func (g *GaussianSampler) ReadNew(size int) (pol *Poly) {
	pol = NewPoly()
	for i, n := 0, samples(size); i < n; i++ {
		pol.coeffs[i] = math.Round(g.mean + g.normFloat64()*g.sigma)
	}
	return pol.trim()
}

// normFloat64 returns a standard normal variate.
func (g *GaussianSampler) normFloat64() float64 {

	if g.hasSpare {
		g.hasSpare = false
		return g.spare
	}

	var u, v, s float64
	for {
		u = 2*g.src.Float64() - 1
		v = 2*g.src.Float64() - 1
		if s = u*u + v*v; s < 1 && s != 0 {
			break
		}
	}

	f := polarFactor(s)

	g.spare = v * f
	g.hasSpare = true

	return u * f
}

// polarFactor returns sqrt(-2 ln(s) / s).
func polarFactor(s float64) float64 {
	return math.Sqrt(-2 * math.Log(s) / s)
}
