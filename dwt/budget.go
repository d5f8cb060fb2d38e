package dwt

import "github.com/cocosip/go-progressive-codec/zigzag"

// Plan describes which decomposition coefficients survive a budget.
//
// The top-left Side x Side square is always kept. The three detail quadrants
// next to it (right, down, diagonal) are each Side x Side and keep the given
// number of coefficients in zigzag order. Everything outside the 2*Side
// square is dropped.
type Plan struct {
	// Empty drops every coefficient.
	Empty bool
	// Full keeps every coefficient.
	Full bool

	Side int
	Area int

	Right    int
	Down     int
	Diagonal int
}

// Retained returns the number of coefficients the plan keeps out of a
// width x height grid.
func (p Plan) Retained(width, height int) int {
	switch {
	case p.Empty:
		return 0
	case p.Full:
		return width * height
	}
	return p.Area + p.Right + p.Down + p.Diagonal
}

// PlanBudget finds the largest power-of-two square whose area is below
// number and spreads the rest over its detail quadrants. The down quadrant
// is filled before the right one; the diagonal only receives what exceeds
// three areas.
func PlanBudget(number, width, height int) Plan {
	if number <= 0 {
		return Plan{Empty: true}
	}
	if number >= width*height {
		return Plan{Full: true}
	}

	counter := 0
	for number > pow4(counter) {
		counter++
	}
	if counter > 0 {
		counter--
	}

	side := 1 << counter
	area := side * side
	p := Plan{Side: side, Area: area}

	if number > 3*area {
		p.Right = area
		p.Down = area
		p.Diagonal = number - 3*area
	} else {
		p.Down = min(number-area, area)
		p.Right = number - area - p.Down
	}
	return p
}

func pow4(k int) int {
	return 1 << (2 * k)
}

// ApplyPlan zeroes the coefficients of a decomposed width x height plane that
// p does not retain.
func ApplyPlan(data []float64, width, height int, p Plan) {
	if p.Full {
		return
	}
	if p.Empty {
		clear(data[:width*height])
		return
	}

	side := p.Side
	shape := zigzag.Square(side)

	for c := range zigzag.Tail(shape, p.Right) {
		data[c.Row*width+c.Col+side] = 0
	}
	for c := range zigzag.Tail(shape, p.Down) {
		data[(c.Row+side)*width+c.Col] = 0
	}
	for c := range zigzag.Tail(shape, p.Diagonal) {
		data[(c.Row+side)*width+c.Col+side] = 0
	}

	edge := 2 * side
	for y := 0; y < height; y++ {
		from := edge
		if y >= edge {
			from = 0
		}
		if from < width {
			clear(data[y*width+from : (y+1)*width])
		}
	}
}
