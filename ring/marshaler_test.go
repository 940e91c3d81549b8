package ring

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polyring/utils/sampling"
)

func TestPolyMarshalCBOR(t *testing.T) {

	src := sampling.NewWyRand(7)

	t.Run("RoundTrip", func(t *testing.T) {
		for _, p := range []*Poly{
			NewPoly(),
			mustPoly(t, 1, -2.5, 0, 1e-3),
			randomIntPoly(src, Capacity-1, 1<<30),
		} {
			data, err := p.MarshalBinary()
			require.NoError(t, err)

			// decoding overwrites the previous content
			have, err := NewMonomial(3, 1)
			require.NoError(t, err)
			require.NoError(t, have.UnmarshalBinary(data))
			require.True(t, p.Equal(have), "have %v want %v", have, p)
		}
	})

	t.Run("Nested", func(t *testing.T) {
		polys := []*Poly{mustPoly(t, 1, 2), mustPoly(t, 3)}
		data, err := cbor.Marshal(polys)
		require.NoError(t, err)

		var have []*Poly
		require.NoError(t, cbor.Unmarshal(data, &have))
		require.Len(t, have, 2)
		require.True(t, polys[0].Equal(have[0]))
		require.True(t, polys[1].Equal(have[1]))
	})

	t.Run("Overflow", func(t *testing.T) {
		data, err := cbor.Marshal(polyCBOR{Coeffs: make([]float64, Capacity+1)})
		require.NoError(t, err)
		require.ErrorIs(t, new(Poly).UnmarshalBinary(data), ErrCapacityOverflow)
	})

	t.Run("Malformed", func(t *testing.T) {
		require.Error(t, new(Poly).UnmarshalBinary([]byte{0xff, 0x00}))
	})
}

func TestCoeffStats(t *testing.T) {

	st, err := NewCoeffStats([]float64{1, 2, 3, 4, 10})
	require.NoError(t, err)
	require.Equal(t, 5, st.Count)
	require.Equal(t, 4.0, st.Mean)
	require.InDelta(t, 3.1623, st.StdDev, 1e-4)
	require.Equal(t, 1.0, st.Min)
	require.Equal(t, 10.0, st.Max)
	require.Equal(t, 3.0, st.Median)
	require.Contains(t, st.String(), "n=5")

	_, err = NewCoeffStats(nil)
	require.Error(t, err)

	st, err = PolyStats(4, mustPoly(t, 1, 1), mustPoly(t, 0, 0, 2))
	require.NoError(t, err)
	require.Equal(t, 8, st.Count)
	require.Equal(t, 0.5, st.Mean)
}
