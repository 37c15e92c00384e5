package paz

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadComplexPair is returned when a poles/zeros file entry is not a
// [real, imag] pair.
var ErrBadComplexPair = errors.New("paz: complex value must be a [real, imag] pair")

// modelFile is the YAML representation of a Model. Poles and zeros are
// written as [real, imag] pairs:
//
//	poles:
//	  - [-0.037, 0.037]
//	  - [-0.037, -0.037]
//	zeros:
//	  - [0, 0]
//	  - [0, 0]
//	gain: 1.0
//	sensitivity: 1201.0
type modelFile struct {
	Poles       [][]float64 `yaml:"poles"`
	Zeros       [][]float64 `yaml:"zeros"`
	Gain        float64     `yaml:"gain"`
	Sensitivity float64     `yaml:"sensitivity"`
}

// Parse decodes a YAML poles/zeros model.
func Parse(data []byte) (*Model, error) {
	var mf modelFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("paz: failed to parse model: %w", err)
	}

	poles, err := toComplex(mf.Poles)
	if err != nil {
		return nil, err
	}

	zeros, err := toComplex(mf.Zeros)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Poles:       poles,
		Zeros:       zeros,
		Gain:        mf.Gain,
		Sensitivity: mf.Sensitivity,
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Load reads and decodes a YAML poles/zeros model file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("paz: failed to read model file: %w", err)
	}

	return Parse(data)
}

func toComplex(pairs [][]float64) ([]complex128, error) {
	out := make([]complex128, 0, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: got %d values", ErrBadComplexPair, len(p))
		}

		out = append(out, complex(p[0], p[1]))
	}

	return out, nil
}
