package geo

// NSWE direction bitmask constants.
// North is +Y, East is +X.
const (
	NSWEEast  byte = 1 << 0 // 0x01
	NSWEWest  byte = 1 << 1 // 0x02
	NSWESouth byte = 1 << 2 // 0x04
	NSWENorth byte = 1 << 3 // 0x08
)

// Composite NSWE directions.
const (
	NSWENorthEast = NSWENorth | NSWEEast // 0x09
	NSWENorthWest = NSWENorth | NSWEWest // 0x0A
	NSWESouthEast = NSWESouth | NSWEEast // 0x05
	NSWESouthWest = NSWESouth | NSWEWest // 0x06
)

// ComputeNSWE computes the NSWE direction from one point to another.
// Returns 0 when the points are equal.
func ComputeNSWE(from, to Point) byte {
	var nswe byte
	if to.X > from.X {
		nswe |= NSWEEast
	} else if to.X < from.X {
		nswe |= NSWEWest
	}
	if to.Y > from.Y {
		nswe |= NSWENorth
	} else if to.Y < from.Y {
		nswe |= NSWESouth
	}
	return nswe
}

// NSWEString returns the compass label of a direction mask ("N", "SE", ...).
// Empty mask yields "-".
func NSWEString(nswe byte) string {
	var s string
	if nswe&NSWENorth != 0 {
		s += "N"
	}
	if nswe&NSWESouth != 0 {
		s += "S"
	}
	if nswe&NSWEEast != 0 {
		s += "E"
	}
	if nswe&NSWEWest != 0 {
		s += "W"
	}
	if s == "" {
		return "-"
	}
	return s
}
