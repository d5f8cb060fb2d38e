package zigzag

import (
	"fmt"
	"testing"
)

func TestOrder4x4(t *testing.T) {
	want := []Coord{
		{0, 0}, {1, 0}, {0, 1}, {0, 2},
		{1, 1}, {2, 0}, {3, 0}, {2, 1},
		{1, 2}, {0, 3}, {1, 3}, {2, 2},
		{3, 1}, {3, 2}, {2, 3}, {3, 3},
	}

	got := Take(Square(4), 16)
	if len(got) != len(want) {
		t.Fatalf("Take returned %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestOrderProperties checks count, range and uniqueness for square and
// rectangular shapes with limits below, at and above the block area.
func TestOrderProperties(t *testing.T) {
	shapes := []Shape{Square(1), Square(2), Square(4), Square(8), Square(16), {5, 3}, {3, 5}, {1, 7}}

	for _, shape := range shapes {
		for _, limit := range []int{0, 1, 7, shape.Area(), shape.Area() + 25} {
			t.Run(fmt.Sprintf("%dx%d_limit%d", shape.Width, shape.Height, limit), func(t *testing.T) {
				want := min(limit, shape.Area())
				seen := make(map[Coord]bool)
				first := true

				for c := range Order(shape, limit) {
					if first {
						if c != (Coord{0, 0}) {
							t.Errorf("first coord = %+v, want (0,0)", c)
						}
						first = false
					}
					if c.Col < 0 || c.Col >= shape.Width || c.Row < 0 || c.Row >= shape.Height {
						t.Fatalf("coord %+v outside %dx%d", c, shape.Width, shape.Height)
					}
					if seen[c] {
						t.Fatalf("coord %+v produced twice", c)
					}
					seen[c] = true
				}

				if len(seen) != want {
					t.Errorf("got %d coords, want %d", len(seen), want)
				}
			})
		}
	}
}

func TestOrderRestarts(t *testing.T) {
	seq := Order(Square(8), 10)

	var a, b []Coord
	for c := range seq {
		a = append(a, c)
	}
	for c := range seq {
		b = append(b, c)
	}

	if len(a) != 10 || len(b) != 10 {
		t.Fatalf("lengths %d and %d, want 10", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("second pass differs at %d: %+v vs %+v", i, b[i], a[i])
		}
	}
}

func TestStepIsPure(t *testing.T) {
	shape := Square(4)
	s := Start()

	c1, n1, ok1 := Step(s, shape)
	c2, n2, ok2 := Step(s, shape)
	if c1 != c2 || n1 != n2 || ok1 != ok2 {
		t.Fatal("Step returned different results for the same state")
	}
	if n1.Emitted() != 1 {
		t.Errorf("Emitted() = %d, want 1", n1.Emitted())
	}
}

func TestStepExhausted(t *testing.T) {
	shape := Square(2)
	s := Start()
	for i := 0; i < 4; i++ {
		var ok bool
		_, s, ok = Step(s, shape)
		if !ok {
			t.Fatalf("Step stopped early at %d", i)
		}
	}
	if _, _, ok := Step(s, shape); ok {
		t.Error("Step should stop after the block is exhausted")
	}
}

func TestTailComplementsTake(t *testing.T) {
	shape := Square(8)
	for _, n := range []int{0, 1, 10, 63, 64, 100} {
		head := Take(shape, n)
		var tail []Coord
		for c := range Tail(shape, n) {
			tail = append(tail, c)
		}

		if len(head)+len(tail) != shape.Area() {
			t.Errorf("n=%d: head %d + tail %d != %d", n, len(head), len(tail), shape.Area())
		}

		all := Take(shape, shape.Area())
		for i, c := range tail {
			if all[len(head)+i] != c {
				t.Errorf("n=%d: tail[%d] = %+v, want %+v", n, i, c, all[len(head)+i])
				break
			}
		}
	}
}

func BenchmarkOrder8x8(b *testing.B) {
	shape := Square(8)
	for i := 0; i < b.N; i++ {
		for range All(shape) {
		}
	}
}
