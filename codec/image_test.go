package codec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosip/go-progressive-codec/codec"
	"github.com/cocosip/go-progressive-codec/pixel"
)

// planar builds a W*H*3 planar buffer from a per-sample generator.
func planar(width, height int, f func(c, x, y int) byte) []byte {
	data := make([]byte, width*height*3)
	for c := 0; c < 3; c++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				data[c*width*height+y*width+x] = f(c, x, y)
			}
		}
	}
	return data
}

func gradient(c, x, y int) byte {
	return byte((x*11 + y*5 + c*70) % 256)
}

func TestNewImageFromPlanarLayout(t *testing.T) {
	data := planar(3, 2, func(c, x, y int) byte { return byte(c*100 + y*10 + x) })

	img, err := codec.NewImageFromPlanar(3, 2, 0, 1, data)
	require.NoError(t, err)
	assert.Equal(t, codec.DomainSpatial, img.Domain())
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())

	p := img.Pixels()[1][2]
	assert.Equal(t, pixel.Pixel[uint8]{R: 12, G: 112, B: 212}, p)

	out := img.Interleaved()
	require.Len(t, out, 18)
	// row 1, column 2
	assert.Equal(t, []byte{12, 112, 212}, out[1*9+3*2:1*9+3*2+3])
	assert.Equal(t, data, img.Planar())
}

func TestNewImageFromInterleaved(t *testing.T) {
	src := planar(4, 4, gradient)
	a, err := codec.NewImageFromPlanar(4, 4, 0, 4, src)
	require.NoError(t, err)

	b, err := codec.NewImageFromInterleaved(4, 4, 0, 4, a.Interleaved())
	require.NoError(t, err)

	assert.Equal(t, a.Pixels(), b.Pixels())
}

func TestNewImageErrors(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		coefficient int
		blockSize   int
		size        int
		want        error
	}{
		{"zero width", 0, 4, 1, 4, 0, codec.ErrInvalidDimensions},
		{"negative height", 4, -1, 1, 4, 0, codec.ErrInvalidDimensions},
		{"negative coefficient", 4, 4, -1, 4, 48, codec.ErrInvalidParameter},
		{"negative block size", 4, 4, 1, -2, 48, codec.ErrInvalidParameter},
		{"short buffer", 4, 4, 1, 4, 47, codec.ErrBufferSize},
		{"long buffer", 4, 4, 1, 4, 49, codec.ErrBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.NewImageFromPlanar(tt.width, tt.height, tt.coefficient, tt.blockSize, make([]byte, tt.size))
			assert.ErrorIs(t, err, tt.want)

			_, err = codec.NewImageFromInterleaved(tt.width, tt.height, tt.coefficient, tt.blockSize, make([]byte, tt.size))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDomainInvariantPanics(t *testing.T) {
	newImg := func(t *testing.T) *codec.Image {
		img, err := codec.NewImageFromPlanar(8, 8, 64, 8, planar(8, 8, gradient))
		require.NoError(t, err)
		return img
	}

	assertInvariant := func(t *testing.T, want codec.Domain, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(error)
			require.True(t, ok, "panic value %T is not an error", r)

			var inv *codec.InvariantError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, want, inv.Want)
			assert.ErrorIs(t, err, codec.ErrWrongDomain)
		}()
		fn()
	}

	t.Run("decode before encode", func(t *testing.T) {
		img := newImg(t)
		assertInvariant(t, codec.DomainFrequency, func() { _ = img.DecodeDCT() })
	})

	t.Run("coefficients before encode", func(t *testing.T) {
		img := newImg(t)
		assertInvariant(t, codec.DomainFrequency, func() { img.Coefficients() })
	})

	t.Run("interleaved while encoded", func(t *testing.T) {
		img := newImg(t)
		require.NoError(t, img.EncodeDCT())
		assertInvariant(t, codec.DomainSpatial, func() { img.Interleaved() })
	})

	t.Run("encode twice", func(t *testing.T) {
		img := newImg(t)
		require.NoError(t, img.EncodeDWT())
		assertInvariant(t, codec.DomainSpatial, func() { _ = img.EncodeDWT() })
	})
}

func TestDecodeTransformMismatchPanics(t *testing.T) {
	img, err := codec.NewImageFromPlanar(8, 8, 64, 8, planar(8, 8, gradient))
	require.NoError(t, err)
	require.NoError(t, img.EncodeDCT())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, codec.ErrTransformMismatch)
	}()
	_ = img.DecodeDWT()
}

func TestCloneIsIndependent(t *testing.T) {
	img, err := codec.NewImageFromPlanar(8, 8, 64, 8, planar(8, 8, gradient))
	require.NoError(t, err)

	c := img.Clone()
	c.SetCoefficient(1)
	c.Pixels()[0][0].R = 255 - img.Pixels()[0][0].R

	assert.Equal(t, 64, img.Coefficient())
	assert.NotEqual(t, img.Pixels()[0][0].R, c.Pixels()[0][0].R)

	require.NoError(t, c.EncodeDCT())
	assert.Equal(t, codec.DomainSpatial, img.Domain())
	assert.Equal(t, codec.DomainFrequency, c.Domain())
}

func TestWithWorkersFloor(t *testing.T) {
	img, err := codec.NewImageFromPlanar(2, 2, 1, 1, make([]byte, 12))
	require.NoError(t, err)

	assert.Equal(t, 1, img.Workers())
	assert.Equal(t, 4, img.WithWorkers(4).Workers())
	assert.Equal(t, 1, img.WithWorkers(0).Workers())
}
