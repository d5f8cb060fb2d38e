package codec

import (
	"fmt"

	"github.com/cocosip/go-progressive-codec/dct"
	"github.com/cocosip/go-progressive-codec/pixel"
)

// DCT is the block Discrete Cosine Transform. The image is split into
// BlockSize x BlockSize tiles, each transformed on its own with an even share
// of the coefficient budget.
type DCT struct{}

var _ Transform = DCT{}

// Name returns "dct".
func (DCT) Name() string { return "dct" }

// Validate requires a positive block size dividing both dimensions.
func (DCT) Validate(img *Image) error {
	bs := img.blockSize
	if bs <= 0 {
		return fmt.Errorf("%w: block size %d must be positive", ErrInvalidParameter, bs)
	}
	if img.width%bs != 0 || img.height%bs != 0 {
		return fmt.Errorf("%w: %dx%d is not divisible by block size %d", ErrInvalidDimensions, img.width, img.height, bs)
	}
	return nil
}

// Encode transforms every tile, keeping round(coefficient / tiles)
// coefficients per tile in zigzag order.
func (t DCT) Encode(img *Image) error {
	pixels := img.spatial("dct encode").Pixels
	if err := t.Validate(img); err != nil {
		return err
	}
	if err := checkCoefficient(img); err != nil {
		return err
	}

	tiles := pixel.Tiles(img.width, img.height, img.blockSize)
	number := dct.PerBlockBudget(img.coefficient, len(tiles))
	basis := dct.NewBasis(img.blockSize)
	freq := pixel.NewGrid[float64](img.width, img.height)

	err := forEach(len(tiles), img.workers, func(i int) {
		dct.EncodeBlock(pixels, freq, tiles[i], number, basis)
	})
	if err != nil {
		return err
	}

	img.state = Frequency{Coefficients: freq, Transform: t.Name()}
	return nil
}

// Decode reconstructs every tile from its coefficients.
func (t DCT) Decode(img *Image) error {
	freq := img.frequency("dct decode").Coefficients
	if err := t.Validate(img); err != nil {
		return err
	}

	tiles := pixel.Tiles(img.width, img.height, img.blockSize)
	basis := dct.NewBasis(img.blockSize)
	pixels := pixel.NewGrid[uint8](img.width, img.height)

	err := forEach(len(tiles), img.workers, func(i int) {
		dct.DecodeBlock(freq, pixels, tiles[i], basis)
	})
	if err != nil {
		return err
	}

	img.state = Spatial{Pixels: pixels}
	return nil
}

func init() {
	Register(DCT{})
}
