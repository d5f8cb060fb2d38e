// Command progcodec compresses a raw planar RGB file with the block DCT and
// the Haar DWT at a given coefficient budget and writes the reconstructions.
//
// Usage:
//
//	progcodec run <raw-file> <coefficient> [flags]
//
// A coefficient of -1 runs the progressive ladder: 64 budgets in steps of
// 4096 by default, one output file per budget and transform.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cocosip/go-progressive-codec/codec"
	"github.com/cocosip/go-progressive-codec/progression"
)

// progressiveMode is the coefficient argument that selects the ladder.
const progressiveMode = -1

type runOptions struct {
	width      int
	height     int
	blockSize  int
	steps      int
	step       int
	workers    int
	transforms []string
	outDir     string
	format     string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "progcodec: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "progcodec",
		Short:         "Progressive DCT/DWT image compression",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	return root
}

func newRunCommand() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run <raw-file> <coefficient>",
		Short: "Encode and decode a raw planar RGB image",
		Long: `Reads width*height*3 bytes of planar RGB (all R, then all G, then all B),
keeps <coefficient> coefficients per channel with every transform and writes
each reconstruction to --out as <transform>_<coefficient>.<format>.
A coefficient of -1 runs --steps budgets of --step coefficients each.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coefficient, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("coefficient %q: %w", args[1], err)
			}
			return run(cmd.Context(), args[0], coefficient, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 512, "image width in pixels")
	f.IntVar(&opts.height, "height", 512, "image height in pixels")
	f.IntVar(&opts.blockSize, "block-size", codec.DefaultBlockSize, "DCT block edge")
	f.IntVar(&opts.steps, "steps", progression.DefaultIterations, "number of budgets in progressive mode")
	f.IntVar(&opts.step, "step", progression.DefaultStep, "budget increment in progressive mode")
	f.IntVar(&opts.workers, "workers", 1, "blocks or channels transformed concurrently")
	f.StringSliceVar(&opts.transforms, "transforms", progression.DefaultTransforms, "transforms to run")
	f.StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	f.StringVar(&opts.format, "format", "png", "output format: raw, png or bmp")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

func run(ctx context.Context, path string, coefficient int, opts runOptions) error {
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}
	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}
	if coefficient < progressiveMode {
		return fmt.Errorf("%w: coefficient %d", codec.ErrInvalidParameter, coefficient)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src, err := codec.NewImageFromPlanar(opts.width, opts.height, 0, opts.blockSize, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	logger.Info().
		Str("file", path).
		Int("width", opts.width).
		Int("height", opts.height).
		Int("coefficient", coefficient).
		Msg("image loaded")

	var frames []progression.Frame
	if coefficient == progressiveMode {
		cfg := progression.Config{
			Iterations: opts.steps,
			Step:       opts.step,
			Transforms: opts.transforms,
			Workers:    opts.workers,
		}
		series, err := progression.Run(ctx, src, cfg, logger)
		if err != nil {
			return err
		}
		frames = series.Frames
	} else {
		frames, err = single(src, coefficient, opts)
		if err != nil {
			return err
		}
	}

	for _, frame := range frames {
		out, err := writeFrame(opts.outDir, format, opts.width, opts.height, frame)
		if err != nil {
			return err
		}
		logger.Info().
			Str("transform", frame.Transform).
			Int("coefficient", frame.Coefficient).
			Float64("psnr", frame.PSNR).
			Str("output", out).
			Msg("frame written")
	}
	return nil
}

// single runs every transform once at the given budget.
func single(src *codec.Image, coefficient int, opts runOptions) ([]progression.Frame, error) {
	reference := src.Interleaved()
	frames := make([]progression.Frame, 0, len(opts.transforms))

	for _, name := range opts.transforms {
		img := src.Clone()
		params := codec.NewParameters().
			WithTransform(name).
			WithCoefficient(coefficient).
			WithBlockSize(opts.blockSize).
			WithWorkers(opts.workers)
		if err := params.Run(img); err != nil {
			return nil, err
		}

		pixels := img.Interleaved()
		mse, err := progression.MSE(reference, pixels)
		if err != nil {
			return nil, err
		}
		psnr, err := progression.PSNR(reference, pixels)
		if err != nil {
			return nil, err
		}
		frames = append(frames, progression.Frame{
			Transform:   name,
			Coefficient: coefficient,
			Pixels:      pixels,
			MSE:         mse,
			PSNR:        psnr,
		})
	}
	return frames, nil
}
