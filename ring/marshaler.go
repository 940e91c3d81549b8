package ring

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// polyCBOR is the wire representation of a Poly: its coefficients
// from x^0 to x^Degree().
type polyCBOR struct {
	Coeffs []float64 `cbor:"1,keyasint"`
}

// MarshalCBOR encodes the polynomial in CBOR.
func (p *Poly) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(polyCBOR{Coeffs: p.Coeffs()})
}

// UnmarshalCBOR decodes a CBOR encoded polynomial on p.
func (p *Poly) UnmarshalCBOR(data []byte) (err error) {

	var w polyCBOR
	if err = cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("cannot UnmarshalCBOR: %w", err)
	}

	if len(w.Coeffs) > Capacity {
		return fmt.Errorf("cannot UnmarshalCBOR: %w: %d coefficients", ErrCapacityOverflow, len(w.Coeffs))
	}

	var pol *Poly
	if pol, err = NewPolyFromCoeffs(w.Coeffs); err != nil {
		return fmt.Errorf("cannot UnmarshalCBOR: %w", err)
	}

	*p = *pol
	return
}

// MarshalBinary encodes the polynomial on a slice of bytes.
func (p *Poly) MarshalBinary() ([]byte, error) {
	return p.MarshalCBOR()
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary on p.
func (p *Poly) UnmarshalBinary(data []byte) error {
	return p.UnmarshalCBOR(data)
}
