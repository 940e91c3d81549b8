package ring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyring/utils/sampling"
)

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/Q=%g", opname, r.N(), r.Q())
}

var testParameters = []RingLiteral{
	{N: 4, Q: 17},
	{N: 16, Q: 12289},
	{N: 256, Q: 1 << 20},
	{N: 1024, Q: 40961},
}

type testContext struct {
	ring *Ring
	src  sampling.Source
}

func genTestContext(lit RingLiteral) (tc *testContext, err error) {
	tc = new(testContext)
	if tc.ring, err = NewRingFromLiteral(lit); err != nil {
		return nil, err
	}
	tc.src = sampling.NewWyRand(uint64(lit.N))
	return
}

// mustPoly builds a polynomial from its coefficients, lowest degree first.
func mustPoly(t *testing.T, coeffs ...float64) *Poly {
	p, err := NewPolyFromCoeffs(coeffs)
	require.NoError(t, err)
	return p
}

// randomIntPoly returns a polynomial of exactly the given degree with
// integer coefficients in [-bound, bound].
func randomIntPoly(src sampling.Source, degree int, bound uint64) *Poly {
	p := NewPoly()
	for i := 0; i <= degree; i++ {
		p.coeffs[i] = float64(src.Uint64()%(2*bound+1)) - float64(bound)
	}
	for p.coeffs[degree] == 0 {
		p.coeffs[degree] = float64(src.Uint64()%(2*bound+1)) - float64(bound)
	}
	return p
}

func TestRing(t *testing.T) {

	testNewRing(t)

	for _, lit := range testParameters {

		tc, err := genTestContext(lit)
		require.NoError(t, err)

		testRingAddMul(tc, t)
		testRingCanonicalRange(tc, t)
		testRingLinearity(tc, t)
		testRingRescale(tc, t)
		testRingMarshalJSON(tc, t)
	}
}

func testNewRing(t *testing.T) {
	t.Run("NewRing", func(t *testing.T) {

		r, err := NewRing(0, 17)
		require.Nil(t, r)
		require.True(t, errors.Is(err, ErrInvalidDegree))

		r, err = NewRing(Capacity, 17)
		require.Nil(t, r)
		require.True(t, errors.Is(err, ErrInvalidDegree))

		r, err = NewRing(16, 0)
		require.Nil(t, r)
		require.True(t, errors.Is(err, ErrInvalidModulus))

		r, err = NewRing(16, math.Inf(1))
		require.Nil(t, r)
		require.True(t, errors.Is(err, ErrInvalidModulus))

		r, err = NewRing((Capacity+1)/2, 17)
		require.NoError(t, err)
		require.Equal(t, (Capacity+1)/2, r.ModulusPoly().Degree())

		r, err = NewRing(16, 97)
		require.NoError(t, err)
		require.Equal(t, 16, r.N())
		require.Equal(t, 97.0, r.Q())

		m := r.ModulusPoly()
		require.Equal(t, 16, m.Degree())
		require.Equal(t, 1.0, m.Coeff(0))
		require.Equal(t, 1.0, m.Coeff(16))
	})
}

func testRingAddMul(tc *testContext, t *testing.T) {

	t.Run(testString("AddMul", tc.ring), func(t *testing.T) {

		r := tc.ring

		if r.N() != 4 {
			t.Skip("hand computed values for N=4")
		}

		// (1 + 2x + 3x^2 + 4x^3) * x = -4 + x + 2x^2 + 3x^3 mod x^4+1
		a := mustPoly(t, 1, 2, 3, 4)
		x := mustPoly(t, 0, 1)

		p, err := r.Mul(a, x)
		require.NoError(t, err)
		require.True(t, p.Equal(mustPoly(t, 13, 1, 2, 3)))

		p, err = r.MulNoModQ(a, x)
		require.NoError(t, err)
		require.True(t, p.Equal(mustPoly(t, -4, 1, 2, 3)))

		p, err = r.Add(a, mustPoly(t, 16, 16, 16, 16, 1))
		require.NoError(t, err)
		// 17 + 18x + 19x^2 + 20x^3 + x^4 -> 16 + 18x + 19x^2 + 20x^3 -> 16 + x + 2x^2 + 3x^3
		require.True(t, p.Equal(mustPoly(t, 16, 1, 2, 3)))

		p, err = r.AddNoModQ(a, mustPoly(t, 16, 16, 16, 16, 1))
		require.NoError(t, err)
		require.True(t, p.Equal(mustPoly(t, 16, 18, 19, 20)))

		p, err = r.Sub(mustPoly(t), a)
		require.NoError(t, err)
		require.True(t, p.Equal(mustPoly(t, 16, 15, 14, 13)))

		p, err = r.Neg(a)
		require.NoError(t, err)
		require.True(t, p.Equal(mustPoly(t, 16, 15, 14, 13)))

		p, err = r.MulScalar(a, 5)
		require.NoError(t, err)
		require.True(t, p.Equal(mustPoly(t, 5, 10, 15, 3)))
	})
}

func testRingCanonicalRange(tc *testContext, t *testing.T) {

	t.Run(testString("CanonicalRange", tc.ring), func(t *testing.T) {

		r := tc.ring
		N, Q := r.N(), r.Q()

		uniform, err := NewUniformSampler(tc.src, Uniform{Modulus: Q})
		require.NoError(t, err)
		gaussian, err := NewGaussianSampler(tc.src, DiscreteGaussian{Sigma: 3.2})
		require.NoError(t, err)

		for i := 0; i < 4; i++ {

			x := uniform.ReadNew(N)
			y := gaussian.ReadNew(N)

			sum, err := AddMod(x, y, Q, r.ModulusPoly())
			require.NoError(t, err)
			require.True(t, r.IsCanonical(sum))

			prod, err := MulMod(x, y, Q, r.ModulusPoly())
			require.NoError(t, err)
			require.True(t, r.IsCanonical(prod))

			for j := 0; j < N; j++ {
				require.GreaterOrEqual(t, sum.Coeff(j), 0.0)
				require.Less(t, sum.Coeff(j), Q)
				require.GreaterOrEqual(t, prod.Coeff(j), 0.0)
				require.Less(t, prod.Coeff(j), Q)
			}
		}
	})
}

// testRingLinearity checks that (a*s + e) - a*s = e in the ring,
// the identity every RLWE decryption relies on.
func testRingLinearity(tc *testContext, t *testing.T) {

	t.Run(testString("Linearity", tc.ring), func(t *testing.T) {

		r := tc.ring
		N, Q := r.N(), r.Q()

		uniform, err := NewUniformSampler(tc.src, Uniform{Modulus: Q})
		require.NoError(t, err)
		gaussian, err := NewGaussianSampler(tc.src, DiscreteGaussian{Sigma: 3.2})
		require.NoError(t, err)
		binary := NewBinarySampler(tc.src)

		a, err := r.Reduce(uniform.ReadNew(N))
		require.NoError(t, err)
		s := binary.ReadNew(N)
		e, err := r.Reduce(gaussian.ReadNew(N))
		require.NoError(t, err)

		as, err := r.Mul(a, s)
		require.NoError(t, err)

		b, err := r.Add(as, e)
		require.NoError(t, err)

		have, err := r.Sub(b, as)
		require.NoError(t, err)

		require.True(t, have.Equal(e), "have %v want %v", have, e)
	})
}

func testRingRescale(tc *testContext, t *testing.T) {

	t.Run(testString("Rescale", tc.ring), func(t *testing.T) {

		r := tc.ring
		N, Q := r.N(), r.Q()
		T := 4.0
		delta := math.Floor(Q / T)

		if delta < 16 {
			t.Skip("modulus too small for the noise")
		}

		m := NewPoly()
		for i := 0; i < N; i++ {
			m.SetCoeff(i, float64(tc.src.Uint64()%uint64(T)))
		}

		gaussian, err := NewGaussianSampler(tc.src, DiscreteGaussian{Sigma: 1})
		require.NoError(t, err)

		noisy := Add(MulScalar(m, delta), gaussian.ReadNew(N))
		c, err := r.Reduce(noisy)
		require.NoError(t, err)

		have, err := r.Rescale(c, T)
		require.NoError(t, err)

		require.True(t, have.Equal(m), "have %v want %v", have, m)

		_, err = r.Rescale(c, 0)
		require.True(t, errors.Is(err, ErrInvalidModulus))
	})
}

func testRingMarshalJSON(tc *testContext, t *testing.T) {

	t.Run(testString("MarshalJSON", tc.ring), func(t *testing.T) {

		data, err := json.Marshal(tc.ring)
		require.NoError(t, err)

		r := new(Ring)
		require.NoError(t, json.Unmarshal(data, r))
		require.True(t, tc.ring.Equal(r))

		require.Error(t, json.Unmarshal([]byte(`{"N":0,"Q":17}`), r))
	})
}

func TestIsCanonical(t *testing.T) {

	r, err := NewRing(4, 17)
	require.NoError(t, err)

	require.True(t, r.IsCanonical(NewPoly()))
	require.True(t, r.IsCanonical(mustPoly(t, 16, 0, 3, 1)))
	require.False(t, r.IsCanonical(mustPoly(t, 17)))
	require.False(t, r.IsCanonical(mustPoly(t, -1)))
	require.False(t, r.IsCanonical(mustPoly(t, 1.5)))
	require.False(t, r.IsCanonical(mustPoly(t, 0, 0, 0, 0, 1)))
}

func TestRingEqual(t *testing.T) {

	r0, err := NewRing(16, 12289)
	require.NoError(t, err)
	r1, err := NewRing(16, 12289)
	require.NoError(t, err)
	r2, err := NewRing(16, 97)
	require.NoError(t, err)

	require.True(t, r0.Equal(r1))
	require.True(t, r0.Equal(r0))
	require.False(t, r0.Equal(r2))
	require.False(t, r0.Equal(nil))

	var rnil *Ring
	require.False(t, rnil.Equal(r0))
	require.True(t, rnil.Equal(nil))
}
