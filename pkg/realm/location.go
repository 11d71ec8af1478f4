package realm

// Location is a grid coordinate on the board.
type Location struct {
	X int
	Y int
}

// Offset returns the location shifted by (dx, dy).
func (l Location) Offset(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Distance returns the Chebyshev distance between two locations: the number
// of king moves needed to get from a to b.
func Distance(a, b Location) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
