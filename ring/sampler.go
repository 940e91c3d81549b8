package ring

import (
	"encoding/json"
	"fmt"

	"github.com/tuneinsight/polyring/utils"
	"github.com/tuneinsight/polyring/utils/sampling"
)

const (
	binaryDistName           = "Binary"
	discreteGaussianDistName = "DiscreteGaussian"
	uniformDistName          = "Uniform"
)

// Sampler is an interface for random polynomial samplers.
// A Sampler is not safe for concurrent use: concurrent sampling
// requires one Sampler, and one sampling.Source, per goroutine.
type Sampler interface {
	// ReadNew returns a new polynomial whose first min(size, Capacity)
	// coefficients are sampled from the Sampler's distribution, the
	// others being zero.
	ReadNew(size int) (pol *Poly)
}

// DistributionParameters is an interface for distribution
// parameters in the ring.
// There are three implementation of this interface:
//   - Binary for sampling polynomials with coefficients in {0, 1}.
//   - DiscreteGaussian for sampling polynomials with rounded gaussian
//     coefficients of given mean and standard deviation.
//   - Uniform for sampling polynomials with coefficients uniformly
//     distributed in [0, Modulus).
type DistributionParameters interface {
	// Type returns a string representation of the distribution name.
	Type() string
	mustBeDist()
}

// Binary represents the parameters of a distribution with coefficients
// uniformly distributed in {0, 1}.
type Binary struct{}

// DiscreteGaussian represents the parameters of a gaussian distribution
// of mean Mean and standard deviation Sigma whose samples are rounded
// to the nearest integer.
type DiscreteGaussian struct {
	Mean  float64
	Sigma float64
}

// Uniform represents the parameters of a uniform distribution
// over the real interval [0, Modulus).
type Uniform struct {
	Modulus float64
}

// NewSampler instantiates the sampler of the given distribution drawing from src.
func NewSampler(src sampling.Source, X DistributionParameters) (Sampler, error) {
	switch X := X.(type) {
	case Binary:
		return NewBinarySampler(src), nil
	case DiscreteGaussian:
		return NewGaussianSampler(src, X)
	case Uniform:
		return NewUniformSampler(src, X)
	default:
		return nil, fmt.Errorf("invalid distribution: want ring.Binary, ring.DiscreteGaussian or ring.Uniform but have %T", X)
	}
}

type baseSampler struct {
	src sampling.Source
}

// samples returns the number of coefficients to sample for the requested size.
func samples(size int) int {
	return utils.Clamp(size, 0, Capacity)
}

func (d Binary) Type() string {
	return binaryDistName
}

func (d Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{Type: d.Type()})
}

func (d Binary) mustBeDist() {}

func (d DiscreteGaussian) Type() string {
	return discreteGaussianDistName
}

func (d DiscreteGaussian) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string
		Mean, Sigma float64 `json:",omitempty"`
	}{d.Type(), d.Mean, d.Sigma})
}

func (d DiscreteGaussian) mustBeDist() {}

func (d Uniform) Type() string {
	return uniformDistName
}

func (d Uniform) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string
		Modulus float64
	}{d.Type(), d.Modulus})
}

func (d Uniform) mustBeDist() {}

func getFloatFromMap(distDef map[string]interface{}, key string) (float64, error) {
	val, hasVal := distDef[key]
	if !hasVal {
		return 0, fmt.Errorf("map specifies no value for %s", key)
	}
	f, isFloat := val.(float64)
	if !isFloat {
		return 0, fmt.Errorf("value for key %s in map should be of type float", key)
	}
	return f, nil
}

// ParametersFromMap returns the DistributionParameters described by distDef,
// typically obtained by decoding the JSON encoding of a DistributionParameters.
func ParametersFromMap(distDef map[string]interface{}) (DistributionParameters, error) {
	distTypeVal, specified := distDef["Type"]
	if !specified {
		return nil, fmt.Errorf("map specifies no distribution type")
	}
	distTypeStr, isString := distTypeVal.(string)
	if !isString {
		return nil, fmt.Errorf("value for key Type of map should be of type string")
	}
	switch distTypeStr {
	case binaryDistName:
		return Binary{}, nil
	case discreteGaussianDistName:
		var mean, sigma float64
		var err error
		// a missing Mean or Sigma is a zero value dropped by omitempty
		if _, has := distDef["Mean"]; has {
			if mean, err = getFloatFromMap(distDef, "Mean"); err != nil {
				return nil, fmt.Errorf("unable to parse gaussian parameters Mean: %w", err)
			}
		}
		if _, has := distDef["Sigma"]; has {
			if sigma, err = getFloatFromMap(distDef, "Sigma"); err != nil {
				return nil, fmt.Errorf("unable to parse gaussian parameters Sigma: %w", err)
			}
		}
		return DiscreteGaussian{Mean: mean, Sigma: sigma}, nil
	case uniformDistName:
		modulus, err := getFloatFromMap(distDef, "Modulus")
		if err != nil {
			return nil, err
		}
		return Uniform{Modulus: modulus}, nil
	default:
		return nil, fmt.Errorf("distribution type %s does not exist", distTypeStr)
	}
}
