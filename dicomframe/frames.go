package dicomframe

import (
	"fmt"

	imagetypes "github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

// Frames is an in-memory native (unencapsulated) frame store. It satisfies
// both Source and Sink, and go-dicom's PixelData.
type Frames struct {
	frames    [][]byte
	frameInfo *imagetypes.FrameInfo
}

var (
	_ Source               = (*Frames)(nil)
	_ Sink                 = (*Frames)(nil)
	_ imagetypes.PixelData = (*Frames)(nil)
)

// NewFrames creates an empty frame store with the given frame info
func NewFrames(frameInfo *imagetypes.FrameInfo) *Frames {
	return &Frames{
		frames:    make([][]byte, 0),
		frameInfo: frameInfo,
	}
}

// GetFrame returns the pixel data for the specified frame (0-indexed)
func (f *Frames) GetFrame(frameIndex int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(f.frames) {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrFrameIndex, frameIndex, len(f.frames))
	}
	return f.frames[frameIndex], nil
}

// AddFrame appends a new frame
func (f *Frames) AddFrame(frameData []byte) error {
	f.frames = append(f.frames, frameData)
	return nil
}

// FrameCount returns the number of stored frames
func (f *Frames) FrameCount() int {
	return len(f.frames)
}

// GetFrameInfo returns frame metadata
func (f *Frames) GetFrameInfo() *imagetypes.FrameInfo {
	return f.frameInfo
}

// IsEncapsulated always returns false: frames are stored uncompressed
func (f *Frames) IsEncapsulated() bool {
	return false
}
