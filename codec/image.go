package codec

import (
	"fmt"

	"github.com/cocosip/go-progressive-codec/pixel"
)

// Image is a three-channel image that lives in exactly one domain at a time.
// Encoding moves it from the spatial to the frequency domain, decoding moves
// it back. An Image is not safe for concurrent mutation.
type Image struct {
	width       int
	height      int
	blockSize   int
	coefficient int
	workers     int

	state State
}

// NewImageFromPlanar builds an image from three consecutive channel planes:
// index = channel*width*height + y*width + x.
func NewImageFromPlanar(width, height, coefficient, blockSize int, data []byte) (*Image, error) {
	img, err := newImage(width, height, coefficient, blockSize, data)
	if err != nil {
		return nil, err
	}

	pixels := pixel.NewGrid[uint8](width, height)
	plane := width * height
	for _, c := range pixel.Channels {
		base := c.Index() * plane
		for y := 0; y < height; y++ {
			row := data[base+y*width : base+(y+1)*width]
			for x, v := range row {
				pixels[y][x].Set(c, v)
			}
		}
	}

	img.state = Spatial{Pixels: pixels}
	return img, nil
}

// NewImageFromInterleaved builds an image from interleaved samples:
// index = y*width*3 + 3*x + channel.
func NewImageFromInterleaved(width, height, coefficient, blockSize int, data []byte) (*Image, error) {
	img, err := newImage(width, height, coefficient, blockSize, data)
	if err != nil {
		return nil, err
	}

	pixels := pixel.NewGrid[uint8](width, height)
	stride := width * 3
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*stride + 3*x
			pixels[y][x] = pixel.Pixel[uint8]{R: data[i], G: data[i+1], B: data[i+2]}
		}
	}

	img.state = Spatial{Pixels: pixels}
	return img, nil
}

func newImage(width, height, coefficient, blockSize int, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if coefficient < 0 {
		return nil, fmt.Errorf("%w: coefficient %d must not be negative", ErrInvalidParameter, coefficient)
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: block size %d must not be negative", ErrInvalidParameter, blockSize)
	}
	if want := width * height * 3; len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(data), want)
	}

	return &Image{
		width:       width,
		height:      height,
		blockSize:   blockSize,
		coefficient: coefficient,
		workers:     1,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// BlockSize returns the DCT tile edge length.
func (img *Image) BlockSize() int { return img.blockSize }

// Coefficient returns the coefficient budget.
func (img *Image) Coefficient() int { return img.coefficient }

// SetCoefficient changes the budget used by the next encode. A negative
// budget makes that encode fail with ErrInvalidParameter.
func (img *Image) SetCoefficient(coefficient int) *Image {
	img.coefficient = coefficient
	return img
}

// Workers returns the number of goroutines used to dispatch blocks.
func (img *Image) Workers() int { return img.workers }

// WithWorkers sets how many blocks or channels are transformed concurrently.
// Values below 1 mean sequential.
func (img *Image) WithWorkers(n int) *Image {
	if n < 1 {
		n = 1
	}
	img.workers = n
	return img
}

// State returns the current domain state.
func (img *Image) State() State { return img.state }

// Domain reports which domain the image is in.
func (img *Image) Domain() Domain { return img.state.Domain() }

// Clone returns a deep copy that shares no storage with img.
func (img *Image) Clone() *Image {
	out := *img
	out.state = img.state.clone()
	return &out
}

// Pixels returns the spatial grid. It panics if the image is encoded.
func (img *Image) Pixels() pixel.Grid[uint8] {
	return img.spatial("pixels").Pixels
}

// Coefficients returns the frequency grid. It panics if the image is not
// encoded.
func (img *Image) Coefficients() pixel.Grid[float64] {
	return img.frequency("coefficients").Coefficients
}

// Interleaved flattens the spatial grid into y*width*3 + 3*x + channel
// order, row stride width*3. It panics if the image is encoded.
func (img *Image) Interleaved() []byte {
	pixels := img.spatial("interleaved").Pixels
	stride := img.width * 3
	out := make([]byte, stride*img.height)
	for y, row := range pixels {
		for x, p := range row {
			i := y*stride + 3*x
			out[i], out[i+1], out[i+2] = p.R, p.G, p.B
		}
	}
	return out
}

// Planar flattens the spatial grid into the channel-plane layout accepted by
// NewImageFromPlanar. It panics if the image is encoded.
func (img *Image) Planar() []byte {
	pixels := img.spatial("planar").Pixels
	plane := img.width * img.height
	out := make([]byte, plane*3)
	for y, row := range pixels {
		for x, p := range row {
			i := y*img.width + x
			out[i], out[plane+i], out[2*plane+i] = p.R, p.G, p.B
		}
	}
	return out
}

func (img *Image) spatial(op string) Spatial {
	s, ok := img.state.(Spatial)
	if !ok {
		panic(&InvariantError{Op: op, Want: DomainSpatial, Have: img.Domain()})
	}
	return s
}

func (img *Image) frequency(op string) Frequency {
	f, ok := img.state.(Frequency)
	if !ok {
		panic(&InvariantError{Op: op, Want: DomainFrequency, Have: img.Domain()})
	}
	return f
}
