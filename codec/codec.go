// Package codec owns the image state and dispatches the block transforms.
//
// An Image starts in the spatial domain. Encode runs a Transform's forward
// pass with the image's coefficient budget and leaves the image in the
// frequency domain; Decode runs the matching inverse pass and returns it to
// the spatial domain. Reading a domain the image is not in panics with an
// *InvariantError.
package codec

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Transform is the interface implemented by every transform family
type Transform interface {
	// Name returns the registry key, e.g. "dct"
	Name() string

	// Validate checks the image geometry against the transform's constraints
	Validate(img *Image) error

	// Encode replaces the spatial grid with a freshly allocated frequency grid
	Encode(img *Image) error

	// Decode replaces the frequency grid with a freshly allocated spatial grid
	Decode(img *Image) error
}

// Encode runs t's forward pass on img.
func (img *Image) Encode(t Transform) error {
	return t.Encode(img)
}

// Decode runs t's inverse pass on img. The image must hold coefficients
// produced by a transform with the same name.
func (img *Image) Decode(t Transform) error {
	f := img.frequency("decode")
	if f.Transform != t.Name() {
		panic(fmt.Errorf("decode: %w: coefficients come from %q, not %q", ErrTransformMismatch, f.Transform, t.Name()))
	}
	return t.Decode(img)
}

// EncodeDCT encodes with the block DCT.
func (img *Image) EncodeDCT() error { return img.Encode(DCT{}) }

// DecodeDCT decodes DCT coefficients.
func (img *Image) DecodeDCT() error { return img.Decode(DCT{}) }

// EncodeDWT encodes with the whole-image DWT.
func (img *Image) EncodeDWT() error { return img.Encode(DWT{}) }

// DecodeDWT decodes DWT coefficients.
func (img *Image) DecodeDWT() error { return img.Decode(DWT{}) }

// checkCoefficient rejects a negative budget set after construction.
func checkCoefficient(img *Image) error {
	if img.coefficient < 0 {
		return fmt.Errorf("%w: coefficient %d must not be negative", ErrInvalidParameter, img.coefficient)
	}
	return nil
}

// forEach calls fn for every index in [0, n), on up to workers goroutines.
// The callbacks must touch disjoint data.
func forEach(n, workers int, fn func(i int)) error {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	return g.Wait()
}
