package geo

// Point is an integer 2-D coordinate.
// Value type, передаётся по значению и сравнивается по значению (годится как ключ map).
type Point struct {
	X int
	Y int
}

// Origin is the (0,0) point.
var Origin = Point{}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Chebyshev returns max(|dx|, |dy|) between p and o.
// Equals 1 for each of the 8 neighbouring cells.
func (p Point) Chebyshev(o Point) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// Touches reports whether o lies in the 3x3 neighbourhood of p.
func (p Point) Touches(o Point) bool {
	return p.Chebyshev(o) <= 1
}

// StepToward moves p at most one unit toward target on each axis independently.
func (p Point) StepToward(target Point) Point {
	d := target.Sub(p)
	return Point{X: p.X + Sign(d.X), Y: p.Y + Sign(d.Y)}
}

// Sign maps positive to 1, negative to -1 and zero to 0.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
