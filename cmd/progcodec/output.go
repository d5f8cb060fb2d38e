package main

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/cocosip/go-progressive-codec/progression"
)

type outputFormat string

const (
	formatRaw outputFormat = "raw"
	formatPNG outputFormat = "png"
	formatBMP outputFormat = "bmp"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatRaw, formatPNG, formatBMP:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want raw, png or bmp)", s)
}

// frameName returns <transform>_<coefficient>.<ext>.
func frameName(frame progression.Frame, format outputFormat) string {
	return fmt.Sprintf("%s_%d.%s", frame.Transform, frame.Coefficient, format)
}

// toRGBA wraps interleaved RGB samples into an opaque image.
func toRGBA(width, height int, rgb []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

func encodeFrame(w io.Writer, format outputFormat, width, height int, rgb []byte) error {
	switch format {
	case formatRaw:
		_, err := w.Write(rgb)
		return err
	case formatPNG:
		return png.Encode(w, toRGBA(width, height, rgb))
	case formatBMP:
		return bmp.Encode(w, toRGBA(width, height, rgb))
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeFrame(dir string, format outputFormat, width, height int, frame progression.Frame) (string, error) {
	path := filepath.Join(dir, frameName(frame, format))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	bw := bufio.NewWriter(f)
	err = encodeFrame(bw, format, width, height, frame.Pixels)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}
