// Package pixel holds the three-channel sample containers shared by the
// spatial and frequency domains.
package pixel

import "fmt"

// Channel identifies one of the three color components.
type Channel uint8

const (
	R Channel = iota
	G
	B
)

// Channels lists every channel in canonical iteration order.
var Channels = [3]Channel{R, G, B}

// Index returns the plane index of the channel (0, 1 or 2).
func (c Channel) Index() int {
	return int(c)
}

func (c Channel) String() string {
	switch c {
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Sample is the set of value types a Pixel can carry:
// uint8 in the spatial domain, float64 in the frequency domain.
type Sample interface {
	~uint8 | ~float64
}

// Pixel is a fixed triple of samples, one per channel.
type Pixel[T Sample] struct {
	R, G, B T
}

// At returns the sample stored for channel c.
func (p Pixel[T]) At(c Channel) T {
	switch c {
	case R:
		return p.R
	case G:
		return p.G
	case B:
		return p.B
	}
	panic(fmt.Sprintf("pixel: invalid channel %d", uint8(c)))
}

// Set stores v for channel c.
func (p *Pixel[T]) Set(c Channel, v T) {
	*p.Ref(c) = v
}

// Ref returns a pointer to the sample of channel c. Accessing one channel
// through Ref touches no other channel of the pixel.
func (p *Pixel[T]) Ref(c Channel) *T {
	switch c {
	case R:
		return &p.R
	case G:
		return &p.G
	case B:
		return &p.B
	}
	panic(fmt.Sprintf("pixel: invalid channel %d", uint8(c)))
}
