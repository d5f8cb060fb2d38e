// Package progression re-encodes one image at a growing coefficient budget
// and collects the reconstructions, producing the frames of a progressive
// refinement sequence.
package progression

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/cocosip/go-progressive-codec/codec"
)

// Default configuration values.
const (
	DefaultIterations = 64
	DefaultStep       = 4096
)

// DefaultTransforms are run when Config.Transforms is empty.
var DefaultTransforms = []string{"dct", "dwt"}

// Config controls a progression run
type Config struct {
	// Iterations is the number of budget levels; level i uses (i+1)*Step
	Iterations int

	// Step is the budget increment between levels
	Step int

	// Transforms lists registered transform names to run at every level
	Transforms []string

	// Workers is passed to every image through WithWorkers
	Workers int
}

// DefaultConfig returns the standard 64-level ladder over DCT and DWT.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Step:       DefaultStep,
		Transforms: append([]string(nil), DefaultTransforms...),
		Workers:    1,
	}
}

func (c Config) normalize() Config {
	if c.Iterations <= 0 {
		c.Iterations = DefaultIterations
	}
	if c.Step <= 0 {
		c.Step = DefaultStep
	}
	if len(c.Transforms) == 0 {
		c.Transforms = append([]string(nil), DefaultTransforms...)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}

// Frame is one reconstruction of the source image.
type Frame struct {
	Iteration   int
	Transform   string
	Coefficient int

	// Pixels holds the interleaved reconstruction, row stride width*3
	Pixels []byte

	MSE  float64
	PSNR float64
}

// Series is the ordered output of Run. Frames are sorted by iteration, then
// by the order of Config.Transforms.
type Series struct {
	Width  int
	Height int
	Frames []Frame
}

// ByTransform returns the frames produced by the named transform, in
// iteration order.
func (s *Series) ByTransform(name string) []Frame {
	var out []Frame
	for _, f := range s.Frames {
		if f.Transform == name {
			out = append(out, f)
		}
	}
	return out
}

// Run encodes and decodes a clone of src for every (iteration, transform)
// pair. src must be in the spatial domain and is left unchanged. The context
// is checked between iterations; on cancellation the frames produced so far
// are returned together with the context error.
func Run(ctx context.Context, src *codec.Image, cfg Config, logger zerolog.Logger) (*Series, error) {
	cfg = cfg.normalize()

	transforms := make([]codec.Transform, 0, len(cfg.Transforms))
	for _, name := range cfg.Transforms {
		t, err := codec.Get(name)
		if err != nil {
			return nil, err
		}
		if err := t.Validate(src); err != nil {
			return nil, fmt.Errorf("progression: %s: %w", name, err)
		}
		transforms = append(transforms, t)
	}

	reference := src.Interleaved()
	series := &Series{
		Width:  src.Width(),
		Height: src.Height(),
		Frames: make([]Frame, 0, cfg.Iterations*len(transforms)),
	}

	logger.Info().
		Int("iterations", cfg.Iterations).
		Int("step", cfg.Step).
		Strs("transforms", cfg.Transforms).
		Int("workers", cfg.Workers).
		Msg("progression started")

	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Int("iteration", i).Msg("progression cancelled")
			return series, err
		}

		coefficient := (i + 1) * cfg.Step
		for _, t := range transforms {
			frame, err := runOne(src, t, coefficient, cfg.Workers, reference)
			if err != nil {
				return series, fmt.Errorf("progression: iteration %d: %w", i, err)
			}
			frame.Iteration = i
			series.Frames = append(series.Frames, frame)

			event := logger.Debug().
				Int("iteration", i).
				Str("transform", frame.Transform).
				Int("coefficient", coefficient)
			if !math.IsInf(frame.PSNR, 1) {
				event = event.Float64("psnr", frame.PSNR)
			}
			event.Msg("frame reconstructed")
		}
	}

	logger.Info().Int("frames", len(series.Frames)).Msg("progression finished")
	return series, nil
}

func runOne(src *codec.Image, t codec.Transform, coefficient, workers int, reference []byte) (Frame, error) {
	img := src.Clone().SetCoefficient(coefficient).WithWorkers(workers)
	if err := img.Encode(t); err != nil {
		return Frame{}, fmt.Errorf("%s encode: %w", t.Name(), err)
	}
	if err := img.Decode(t); err != nil {
		return Frame{}, fmt.Errorf("%s decode: %w", t.Name(), err)
	}

	pixels := img.Interleaved()
	mse, err := MSE(reference, pixels)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Transform:   t.Name(),
		Coefficient: coefficient,
		Pixels:      pixels,
		MSE:         mse,
		PSNR:        psnrFromMSE(mse),
	}, nil
}
