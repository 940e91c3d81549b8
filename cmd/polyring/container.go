package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/tuneinsight/polyring/ring"
)

// container is the CBOR file written by the sample command.
type container struct {
	Ring ring.RingLiteral `cbor:"1,keyasint"`

	// Distribution is the JSON encoding of the sampled distribution.
	Distribution []byte `cbor:"2,keyasint"`

	Polys []*ring.Poly `cbor:"3,keyasint"`
}

func writeContainer(path string, lit ring.RingLiteral, X ring.DistributionParameters, polys []*ring.Poly) error {

	dist, err := json.Marshal(X)
	if err != nil {
		return err
	}

	data, err := cbor.Marshal(container{Ring: lit, Distribution: dist, Polys: polys})
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}

	return os.WriteFile(path, data, 0o644)
}

func readContainer(path string) (r *ring.Ring, X ring.DistributionParameters, polys []*ring.Poly, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}

	var c container
	if err = cbor.Unmarshal(data, &c); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	if r, err = ring.NewRingFromLiteral(c.Ring); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	var m map[string]interface{}
	if err = json.Unmarshal(c.Distribution, &m); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot decode %s: distribution: %w", path, err)
	}

	if X, err = ring.ParametersFromMap(m); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot decode %s: distribution: %w", path, err)
	}

	return r, X, c.Polys, nil
}
