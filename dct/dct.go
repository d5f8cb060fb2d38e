// Package dct implements the block Discrete Cosine Transform with a
// zigzag-ordered coefficient budget.
//
// Forward transform for an N x N block:
//
//	F(u,v) = 2/N * C(u)*C(v) * sum_x sum_y f(x,y) * cos((2x+1)u*pi/2N) * cos((2y+1)v*pi/2N)
//
// Inverse transform:
//
//	f(x,y) = 2/N * sum_u sum_v C(u)*C(v)*F(u,v) * cos((2x+1)u*pi/2N) * cos((2y+1)v*pi/2N)
//
// with C(0) = 1/sqrt(2) and C(k) = 1 otherwise. For N = 8 the scale is 1/4
// and the angle denominator is 16.
package dct

import (
	"fmt"
	"math"

	"github.com/cocosip/go-progressive-codec/pixel"
	"github.com/cocosip/go-progressive-codec/zigzag"
)

// Basis holds the cosine table and normalization for one block size.
// A Basis is read-only after construction and safe for concurrent use.
type Basis struct {
	n     int
	scale float64
	// cos[k*n+x] = cos((2x+1)*k*pi / 2n)
	cos []float64
	// norm[k] = C(k)
	norm []float64
}

// NewBasis precomputes the cosine basis for n x n blocks.
func NewBasis(n int) *Basis {
	if n <= 0 {
		panic(fmt.Sprintf("dct: invalid block size %d", n))
	}

	b := &Basis{
		n:     n,
		scale: 2.0 / float64(n),
		cos:   make([]float64, n*n),
		norm:  make([]float64, n),
	}

	denom := float64(2 * n)
	for k := 0; k < n; k++ {
		for x := 0; x < n; x++ {
			b.cos[k*n+x] = math.Cos(float64((2*x+1)*k) * math.Pi / denom)
		}
		b.norm[k] = 1
	}
	b.norm[0] = 1 / math.Sqrt2

	return b
}

// Size returns the block edge length the basis was built for.
func (b *Basis) Size() int {
	return b.n
}

func (b *Basis) at(k, x int) float64 {
	return b.cos[k*b.n+x]
}

// PerBlockBudget splits a global coefficient budget evenly across blocks,
// rounding half away from zero.
func PerBlockBudget(total, blocks int) int {
	if blocks <= 0 || total <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(blocks)))
}

// EncodeBlock projects the block r of spatial onto the cosine basis and
// writes the first number coefficients, in zigzag order, into the same
// region of freq. Every other coefficient of the block is set to zero.
func EncodeBlock(spatial pixel.Grid[uint8], freq pixel.Grid[float64], r pixel.Rect, number int, b *Basis) {
	checkRect(r, b)
	shape := zigzag.Square(b.n)

	for c := range zigzag.Order(shape, number) {
		u, v := c.Col, c.Row
		var sum [3]float64
		for y := 0; y < b.n; y++ {
			row := spatial[r.Y+y][r.X : r.X+b.n]
			cy := b.at(v, y)
			for x, p := range row {
				w := b.at(u, x) * cy
				sum[0] += float64(p.R) * w
				sum[1] += float64(p.G) * w
				sum[2] += float64(p.B) * w
			}
		}

		k := b.scale * b.norm[u] * b.norm[v]
		freq[r.Y+v][r.X+u] = pixel.Pixel[float64]{R: k * sum[0], G: k * sum[1], B: k * sum[2]}
	}

	for c := range zigzag.Tail(shape, number) {
		freq[r.Y+c.Row][r.X+c.Col] = pixel.Pixel[float64]{}
	}
}

// DecodeBlock reconstructs the block r of spatial from the coefficients in
// the same region of freq. Samples are rounded and clamped to [0,255].
func DecodeBlock(freq pixel.Grid[float64], spatial pixel.Grid[uint8], r pixel.Rect, b *Basis) {
	checkRect(r, b)

	for y := 0; y < b.n; y++ {
		for x := 0; x < b.n; x++ {
			var sum [3]float64
			for v := 0; v < b.n; v++ {
				row := freq[r.Y+v][r.X : r.X+b.n]
				cv := b.norm[v] * b.at(v, y)
				for u, f := range row {
					if f == (pixel.Pixel[float64]{}) {
						continue
					}
					w := b.norm[u] * cv * b.at(u, x)
					sum[0] += f.R * w
					sum[1] += f.G * w
					sum[2] += f.B * w
				}
			}

			spatial[r.Y+y][r.X+x] = pixel.Pixel[uint8]{
				R: pixel.Clamp(b.scale * sum[0]),
				G: pixel.Clamp(b.scale * sum[1]),
				B: pixel.Clamp(b.scale * sum[2]),
			}
		}
	}
}

func checkRect(r pixel.Rect, b *Basis) {
	if r.W != b.n || r.H != b.n {
		panic(fmt.Sprintf("dct: block %dx%d does not match basis size %d", r.W, r.H, b.n))
	}
}
