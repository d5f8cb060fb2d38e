package codec

import (
	"fmt"

	"github.com/cocosip/go-progressive-codec/dwt"
	"github.com/cocosip/go-progressive-codec/pixel"
)

// DWT is the whole-image Haar wavelet transform. Each channel is decomposed
// independently and truncated to the coefficient budget.
type DWT struct{}

var _ Transform = DWT{}

// Name returns "dwt".
func (DWT) Name() string { return "dwt" }

// Validate requires a square image with a power-of-two side.
func (DWT) Validate(img *Image) error {
	if err := dwt.CheckSize(img.width, img.height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	return nil
}

// Encode decomposes every channel over the full extent.
func (t DWT) Encode(img *Image) error {
	pixels := img.spatial("dwt encode").Pixels
	if err := t.Validate(img); err != nil {
		return err
	}
	if err := checkCoefficient(img); err != nil {
		return err
	}

	freq := pixel.ToFloat(pixels)
	err := forEach(len(pixel.Channels), img.workers, func(i int) {
		dwt.EncodeBlock(freq, pixel.Channels[i], img.coefficient)
	})
	if err != nil {
		return err
	}

	img.state = Frequency{Coefficients: freq, Transform: t.Name()}
	return nil
}

// Decode reconstructs every channel and rounds the result into a new
// spatial grid.
func (t DWT) Decode(img *Image) error {
	freq := img.frequency("dwt decode").Coefficients
	if err := t.Validate(img); err != nil {
		return err
	}

	work := freq.Clone()
	err := forEach(len(pixel.Channels), img.workers, func(i int) {
		dwt.DecodeBlock(work, pixel.Channels[i])
	})
	if err != nil {
		return err
	}

	img.state = Spatial{Pixels: pixel.ToBytes(work)}
	return nil
}

func init() {
	Register(DWT{})
}
