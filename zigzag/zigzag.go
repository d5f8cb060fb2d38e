// Package zigzag generates the anti-diagonal coefficient visiting order used
// to rank transform coefficients by importance.
//
// The walk starts at (0,0) and alternates up-right and down-left diagonal
// sweeps. It works for any rectangular shape, not only square blocks.
package zigzag

import "iter"

// Shape is the extent of a coefficient block.
type Shape struct {
	Width, Height int
}

// Square returns an n x n shape.
func Square(n int) Shape {
	return Shape{Width: n, Height: n}
}

// Area returns the number of coordinates in the shape.
func (s Shape) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Coord is a (column, row) position inside a block.
type Coord struct {
	Col, Row int
}

// State is the position of the walker. The zero value is not valid; use Start.
// Internally i (row) and j (column) are 1-indexed.
type State struct {
	i, j    int
	emitted int
}

// Start returns the state positioned at (0,0).
func Start() State {
	return State{i: 1, j: 1}
}

// Emitted returns how many coordinates were produced before reaching s.
func (s State) Emitted() int {
	return s.emitted
}

// Step returns the coordinate at s and the state following it. ok is false
// once every coordinate of shape has been produced.
func Step(s State, shape Shape) (c Coord, next State, ok bool) {
	if s.emitted >= shape.Area() {
		return Coord{}, s, false
	}

	c = Coord{Col: s.j - 1, Row: s.i - 1}
	next = s

	if (next.i+next.j)%2 == 0 {
		// up-right
		if next.j < shape.Width {
			next.j++
		} else {
			next.i += 2
		}
		if next.i > 1 {
			next.i--
		}
	} else {
		// down-left
		if next.i < shape.Height {
			next.i++
		} else {
			next.j += 2
		}
		if next.j > 1 {
			next.j--
		}
	}
	next.emitted++

	return c, next, true
}

// Order yields up to limit coordinates of shape in zigzag order. Every range
// over the returned sequence restarts from (0,0).
func Order(shape Shape, limit int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		s := Start()
		for n := 0; n < limit; n++ {
			c, next, ok := Step(s, shape)
			if !ok || !yield(c) {
				return
			}
			s = next
		}
	}
}

// All yields every coordinate of shape in zigzag order.
func All(shape Shape) iter.Seq[Coord] {
	return Order(shape, shape.Area())
}

// Take returns the first n coordinates of shape in zigzag order.
func Take(shape Shape, n int) []Coord {
	if n > shape.Area() {
		n = shape.Area()
	}
	if n < 0 {
		n = 0
	}
	out := make([]Coord, 0, n)
	for c := range Order(shape, n) {
		out = append(out, c)
	}
	return out
}

// Tail yields the coordinates left after skipping the first n, the part of
// the block a budget of n does not retain.
func Tail(shape Shape, n int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		s := Start()
		for {
			c, next, ok := Step(s, shape)
			if !ok {
				return
			}
			if s.emitted >= n && !yield(c) {
				return
			}
			s = next
		}
	}
}
