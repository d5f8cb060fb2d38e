// Package dwt implements the recursive Haar-style discrete wavelet transform
// and its nested-quadrant coefficient budget.
package dwt

import (
	"errors"
	"fmt"

	"github.com/cocosip/go-progressive-codec/pixel"
)

// ErrUnsupportedSize is returned for grids that cannot be halved down to 1x1
// on both axes in lockstep.
var ErrUnsupportedSize = errors.New("dwt: grid must be square with a power-of-two side")

// CheckSize reports whether a width x height grid can be transformed.
func CheckSize(width, height int) error {
	if width <= 0 || width != height || width&(width-1) != 0 {
		return fmt.Errorf("%w: got %dx%d", ErrUnsupportedSize, width, height)
	}
	return nil
}

// step applies one averaging/differencing pass to the w x h region at the
// origin of data. by row: pairs along x; otherwise pairs along y. The first
// half of the axis receives averages, the second half differences.
func step(data []float64, stride, w, h int, byRow bool, tmp []float64) {
	tmp = tmp[:w*h]
	if byRow {
		half := w / 2
		for y := 0; y < h; y++ {
			row := data[y*stride:]
			out := tmp[y*w:]
			for x := 0; x < half; x++ {
				p1, p2 := row[2*x], row[2*x+1]
				out[x] = (p1 + p2) / 2
				out[x+half] = (p1 - p2) / 2
			}
		}
	} else {
		half := h / 2
		for x := 0; x < w; x++ {
			for y := 0; y < half; y++ {
				p1, p2 := data[2*y*stride+x], data[(2*y+1)*stride+x]
				tmp[y*w+x] = (p1 + p2) / 2
				tmp[(y+half)*w+x] = (p1 - p2) / 2
			}
		}
	}

	for y := 0; y < h; y++ {
		copy(data[y*stride:y*stride+w], tmp[y*w:(y+1)*w])
	}
}

// inverseStep undoes step: (average, difference) becomes
// (average+difference, average-difference).
func inverseStep(data []float64, stride, w, h int, byRow bool, tmp []float64) {
	tmp = tmp[:w*h]
	if byRow {
		half := w / 2
		for y := 0; y < h; y++ {
			row := data[y*stride:]
			out := tmp[y*w:]
			for x := 0; x < half; x++ {
				avg, diff := row[x], row[x+half]
				out[2*x] = avg + diff
				out[2*x+1] = avg - diff
			}
		}
	} else {
		half := h / 2
		for x := 0; x < w; x++ {
			for y := 0; y < half; y++ {
				avg, diff := data[y*stride+x], data[(y+half)*stride+x]
				tmp[2*y*w+x] = avg + diff
				tmp[(2*y+1)*w+x] = avg - diff
			}
		}
	}

	for y := 0; y < h; y++ {
		copy(data[y*stride:y*stride+w], tmp[y*w:(y+1)*w])
	}
}

// Forward decomposes a width x height plane in place. Row and column passes
// alternate, starting with rows; the active region halves on both axes after
// each column pass, until it is 1x1.
func Forward(data []float64, width, height int) {
	tmp := make([]float64, width*height)
	w, h := width, height
	byRow := true
	for w > 1 || h > 1 {
		step(data, width, w, h, byRow, tmp)
		if !byRow {
			w /= 2
			h /= 2
		}
		byRow = !byRow
	}
}

// Inverse reconstructs a plane decomposed by Forward. It walks the scales
// bottom-up; at each scale the column pass precedes the row pass.
func Inverse(data []float64, width, height int) {
	tmp := make([]float64, width*height)
	w, h := 1, 1
	byRow := false
	for w < width || h < height || byRow {
		if !byRow {
			w *= 2
			h *= 2
		}
		inverseStep(data, width, w, h, byRow, tmp)
		byRow = !byRow
	}
}

// Extract copies channel c of g into a row-major plane. Extract and Store
// touch only channel c, so different channels of one grid may be processed
// concurrently.
func Extract(g pixel.Grid[float64], c pixel.Channel) []float64 {
	width := g.Width()
	out := make([]float64, width*g.Height())
	for y, row := range g {
		for x := range row {
			out[y*width+x] = *row[x].Ref(c)
		}
	}
	return out
}

// Store writes a row-major plane back into channel c of g.
func Store(g pixel.Grid[float64], c pixel.Channel, data []float64) {
	width := g.Width()
	for y, row := range g {
		for x := range row {
			row[x].Set(c, data[y*width+x])
		}
	}
}

// EncodeBlock decomposes channel c of freq in place and truncates it to a
// budget of number coefficients. freq must satisfy CheckSize.
func EncodeBlock(freq pixel.Grid[float64], c pixel.Channel, number int) {
	width, height := freq.Width(), freq.Height()
	data := Extract(freq, c)
	Forward(data, width, height)
	ApplyPlan(data, width, height, PlanBudget(number, width, height))
	Store(freq, c, data)
}

// DecodeBlock reconstructs channel c of freq in place. The result stays in
// floating point; rounding to bytes is left to the caller.
func DecodeBlock(freq pixel.Grid[float64], c pixel.Channel) {
	width, height := freq.Width(), freq.Height()
	data := Extract(freq, c)
	Inverse(data, width, height)
	Store(freq, c, data)
}
