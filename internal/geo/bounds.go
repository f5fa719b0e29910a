package geo

// Bounds is an inclusive axis-aligned rectangle.
// The zero value is empty; the first Extend makes it a single cell.
type Bounds struct {
	Min   Point
	Max   Point
	valid bool
}

// BoundsOf returns the smallest Bounds containing all points.
func BoundsOf(points ...Point) Bounds {
	var b Bounds
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// Extend returns b grown to include p.
func (b Bounds) Extend(p Point) Bounds {
	if !b.valid {
		return Bounds{Min: p, Max: p, valid: true}
	}
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	return b
}

// Empty reports whether no point was added.
func (b Bounds) Empty() bool { return !b.valid }

// Width returns the number of columns covered.
func (b Bounds) Width() int {
	if !b.valid {
		return 0
	}
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows covered.
func (b Bounds) Height() int {
	if !b.valid {
		return 0
	}
	return b.Max.Y - b.Min.Y + 1
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Point) bool {
	return b.valid &&
		p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
