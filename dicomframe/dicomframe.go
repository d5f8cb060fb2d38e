// Package dicomframe runs the progressive transforms over the frames of
// native 8-bit RGB DICOM pixel data.
package dicomframe

import (
	"errors"
	"fmt"

	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
	imagetypes "github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-progressive-codec/codec"
)

var (
	// ErrUnsupportedFormat is returned for pixel data that is not 8-bit, 3-sample
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrFrameIndex is returned for an out-of-range frame index
	ErrFrameIndex = errors.New("frame index out of range")
)

// Source provides frames to process. go-dicom's PixelData satisfies it.
type Source interface {
	GetFrame(frameIndex int) ([]byte, error)
	FrameCount() int
	GetFrameInfo() *imagetypes.FrameInfo
}

// Sink receives processed frames. go-dicom's PixelData satisfies it.
type Sink interface {
	AddFrame(frameData []byte) error
}

// Process encodes and decodes every frame of src with the transform named in
// params and appends the interleaved reconstructions to dst. Frames with
// planar configuration 1 are read as color-by-plane; output frames are
// always color-by-pixel (see OutputInfo).
func Process(src Source, dst Sink, params dicomcodec.Parameters) error {
	if src == nil || dst == nil {
		return fmt.Errorf("source and destination cannot be nil")
	}

	frameInfo := src.GetFrameInfo()
	if err := checkFrameInfo(frameInfo); err != nil {
		return err
	}

	p := codec.ParametersFrom(params)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	width := int(frameInfo.Width)
	height := int(frameInfo.Height)
	newImage := codec.NewImageFromInterleaved
	if int(frameInfo.PlanarConfiguration) == 1 {
		newImage = codec.NewImageFromPlanar
	}

	frameCount := src.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := src.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}

		img, err := newImage(width, height, p.Coefficient, p.BlockSize, frameData)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frameIndex, err)
		}
		if err := p.Run(img); err != nil {
			return fmt.Errorf("frame %d: %w", frameIndex, err)
		}

		if err := dst.AddFrame(img.Interleaved()); err != nil {
			return fmt.Errorf("failed to add frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// OutputInfo returns a copy of the source frame info describing the frames
// written by Process.
func OutputInfo(frameInfo *imagetypes.FrameInfo) *imagetypes.FrameInfo {
	out := *frameInfo
	out.PlanarConfiguration = 0
	return &out
}

func checkFrameInfo(frameInfo *imagetypes.FrameInfo) error {
	if frameInfo == nil {
		return fmt.Errorf("failed to get frame info from source pixel data")
	}
	if frameInfo.Width == 0 || frameInfo.Height == 0 {
		return fmt.Errorf("%w: %dx%d", codec.ErrInvalidDimensions, frameInfo.Width, frameInfo.Height)
	}
	if int(frameInfo.BitsAllocated) != 8 {
		return fmt.Errorf("%w: bits allocated %d, want 8", ErrUnsupportedFormat, frameInfo.BitsAllocated)
	}
	if int(frameInfo.SamplesPerPixel) != 3 {
		return fmt.Errorf("%w: samples per pixel %d, want 3", ErrUnsupportedFormat, frameInfo.SamplesPerPixel)
	}
	return nil
}
