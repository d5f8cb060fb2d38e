package codec

import (
	"fmt"

	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
)

// Ensure Parameters implements dicomcodec.Parameters
var _ dicomcodec.Parameters = (*Parameters)(nil)

// Default parameter values.
const (
	DefaultTransform   = "dct"
	DefaultCoefficient = 4096
	DefaultBlockSize   = 8
	DefaultWorkers     = 1
)

// Parameter names understood by GetParameter and SetParameter.
const (
	ParamTransform   = "transform"
	ParamCoefficient = "coefficient"
	ParamBlockSize   = "blockSize"
	ParamWorkers     = "workers"
)

// Parameters contains the settings of one encode/decode pass
type Parameters struct {
	// Transform is the registered transform name ("dct" or "dwt")
	Transform string

	// Coefficient is the total number of coefficients kept per channel
	Coefficient int

	// BlockSize is the DCT tile edge; DWT ignores it
	BlockSize int

	// Workers bounds the number of blocks or channels processed at once
	Workers int

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewParameters creates Parameters with default values
func NewParameters() *Parameters {
	return &Parameters{
		Transform:   DefaultTransform,
		Coefficient: DefaultCoefficient,
		BlockSize:   DefaultBlockSize,
		Workers:     DefaultWorkers,
		params:      make(map[string]interface{}),
	}
}

// ParametersFrom converts generic parameters into Parameters. Known names
// are copied over the defaults; nil yields the defaults.
func ParametersFrom(p dicomcodec.Parameters) *Parameters {
	if own, ok := p.(*Parameters); ok {
		if own == nil {
			return NewParameters()
		}
		return own
	}
	out := NewParameters()
	if p == nil {
		return out
	}
	for _, name := range []string{ParamTransform, ParamCoefficient, ParamBlockSize, ParamWorkers} {
		if v := p.GetParameter(name); v != nil {
			out.SetParameter(name, v)
		}
	}
	return out
}

// GetParameter retrieves a parameter by name (implements dicomcodec.Parameters)
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case ParamTransform:
		return p.Transform
	case ParamCoefficient:
		return p.Coefficient
	case ParamBlockSize:
		return p.BlockSize
	case ParamWorkers:
		return p.Workers
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements dicomcodec.Parameters)
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case ParamTransform:
		if v, ok := value.(string); ok {
			p.Transform = v
		}
	case ParamCoefficient:
		if v, ok := value.(int); ok {
			p.Coefficient = v
		}
	case ParamBlockSize:
		if v, ok := value.(int); ok {
			p.BlockSize = v
		}
	case ParamWorkers:
		if v, ok := value.(int); ok {
			p.Workers = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate normalizes out-of-range values to their defaults. An unknown
// transform or a negative coefficient is an error.
func (p *Parameters) Validate() error {
	if p.Transform == "" {
		p.Transform = DefaultTransform
	}
	if _, err := Get(p.Transform); err != nil {
		return err
	}
	if p.Coefficient < 0 {
		return fmt.Errorf("%w: coefficient %d is negative", ErrInvalidParameter, p.Coefficient)
	}
	if p.BlockSize <= 0 {
		p.BlockSize = DefaultBlockSize
	}
	if p.Workers < 1 {
		p.Workers = DefaultWorkers
	}
	return nil
}

// WithTransform sets the transform name and returns the parameters for chaining
func (p *Parameters) WithTransform(name string) *Parameters {
	p.Transform = name
	return p
}

// WithCoefficient sets the coefficient budget and returns the parameters for chaining
func (p *Parameters) WithCoefficient(n int) *Parameters {
	p.Coefficient = n
	return p
}

// WithBlockSize sets the DCT block size and returns the parameters for chaining
func (p *Parameters) WithBlockSize(n int) *Parameters {
	p.BlockSize = n
	return p
}

// WithWorkers sets the worker limit and returns the parameters for chaining
func (p *Parameters) WithWorkers(n int) *Parameters {
	p.Workers = n
	return p
}

// Run validates p, applies it to img and performs a full encode/decode pass,
// leaving img in the spatial domain.
func (p *Parameters) Run(img *Image) error {
	if err := p.Validate(); err != nil {
		return err
	}
	t, err := Get(p.Transform)
	if err != nil {
		return err
	}
	img.blockSize = p.BlockSize
	img.SetCoefficient(p.Coefficient).WithWorkers(p.Workers)
	if err := img.Encode(t); err != nil {
		return fmt.Errorf("%s encode: %w", t.Name(), err)
	}
	if err := img.Decode(t); err != nil {
		return fmt.Errorf("%s decode: %w", t.Name(), err)
	}
	return nil
}
