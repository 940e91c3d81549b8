package ring

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// CoeffStats are descriptive statistics over a set of coefficients.
type CoeffStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// NewCoeffStats computes the statistics of the given values.
// The standard deviation is the population one.
func NewCoeffStats(values []float64) (st CoeffStats, err error) {

	data := stats.Float64Data(values)

	st.Count = data.Len()

	if st.Mean, err = data.Mean(); err != nil {
		return st, fmt.Errorf("cannot NewCoeffStats: %w", err)
	}
	if st.StdDev, err = data.StandardDeviation(); err != nil {
		return st, fmt.Errorf("cannot NewCoeffStats: %w", err)
	}
	if st.Min, err = data.Min(); err != nil {
		return st, fmt.Errorf("cannot NewCoeffStats: %w", err)
	}
	if st.Max, err = data.Max(); err != nil {
		return st, fmt.Errorf("cannot NewCoeffStats: %w", err)
	}
	if st.Median, err = data.Median(); err != nil {
		return st, fmt.Errorf("cannot NewCoeffStats: %w", err)
	}

	return
}

// PolyStats returns the statistics of the first size coefficients of the given polynomials,
// zero coefficients included.
func PolyStats(size int, polys ...*Poly) (CoeffStats, error) {
	n := samples(size)
	values := make([]float64, 0, n*len(polys))
	for _, p := range polys {
		values = append(values, p.coeffs[:n]...)
	}
	return NewCoeffStats(values)
}

// String returns a one line summary of the statistics.
func (st CoeffStats) String() string {
	return fmt.Sprintf("n=%d mean=%.4f std=%.4f min=%g median=%g max=%g", st.Count, st.Mean, st.StdDev, st.Min, st.Median, st.Max)
}
