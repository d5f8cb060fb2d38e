package codec

import "github.com/cocosip/go-progressive-codec/pixel"

// Domain names where an image's data currently lives.
type Domain uint8

const (
	DomainSpatial Domain = iota
	DomainFrequency
)

func (d Domain) String() string {
	switch d {
	case DomainSpatial:
		return "spatial"
	case DomainFrequency:
		return "frequency"
	default:
		return "unknown"
	}
}

// State is either Spatial or Frequency. The interface is sealed.
type State interface {
	Domain() Domain
	clone() State
}

// Spatial holds the pixel-domain grid.
type Spatial struct {
	Pixels pixel.Grid[uint8]
}

// Domain implements State.
func (Spatial) Domain() Domain { return DomainSpatial }

func (s Spatial) clone() State { return Spatial{Pixels: s.Pixels.Clone()} }

// Frequency holds the coefficient grid together with the name of the
// transform that produced it.
type Frequency struct {
	Coefficients pixel.Grid[float64]
	Transform    string
}

// Domain implements State.
func (Frequency) Domain() Domain { return DomainFrequency }

func (f Frequency) clone() State {
	return Frequency{Coefficients: f.Coefficients.Clone(), Transform: f.Transform}
}
