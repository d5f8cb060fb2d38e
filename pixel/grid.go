package pixel

// Grid is a row-major 2D arrangement of pixels indexed [row][col].
type Grid[T Sample] [][]Pixel[T]

// NewGrid allocates a zeroed width x height grid backed by one slice.
func NewGrid[T Sample](width, height int) Grid[T] {
	if width <= 0 || height <= 0 {
		return Grid[T]{}
	}
	backing := make([]Pixel[T], width*height)
	g := make(Grid[T], height)
	for y := range g {
		g[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}
	return g
}

// Width returns the number of columns.
func (g Grid[T]) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid[T]) Height() int {
	return len(g)
}

// Clone returns a deep copy sharing no storage with g.
func (g Grid[T]) Clone() Grid[T] {
	out := NewGrid[T](g.Width(), g.Height())
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

// Rect is a rectangular region of a grid: origin (X, Y), extent W x H.
type Rect struct {
	X, Y int
	W, H int
}

// Tiles partitions a width x height area into non-overlapping size x size
// rectangles in row-major order. Trailing partial tiles are not produced.
func Tiles(width, height, size int) []Rect {
	if size <= 0 {
		return nil
	}
	cols, rows := width/size, height/size
	out := make([]Rect, 0, cols*rows)
	for by := 0; by < rows; by++ {
		for bx := 0; bx < cols; bx++ {
			out = append(out, Rect{X: bx * size, Y: by * size, W: size, H: size})
		}
	}
	return out
}

// ToFloat widens a spatial grid into a frequency-domain grid.
func ToFloat(g Grid[uint8]) Grid[float64] {
	out := NewGrid[float64](g.Width(), g.Height())
	for y, row := range g {
		for x, p := range row {
			out[y][x] = Pixel[float64]{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
		}
	}
	return out
}

// ToBytes rounds and clamps every sample of a frequency-domain grid back to
// the spatial domain.
func ToBytes(g Grid[float64]) Grid[uint8] {
	out := NewGrid[uint8](g.Width(), g.Height())
	for y, row := range g {
		for x, p := range row {
			out[y][x] = Pixel[uint8]{R: Clamp(p.R), G: Clamp(p.G), B: Clamp(p.B)}
		}
	}
	return out
}
