package pathcreator

// Line represents a straight connection between two points, such as the chord
// of the link between two consecutive path nodes.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Angle returns the direction from P0 to P1 in radians. A zero-length line
// has angle 0.
func (l Line) Angle() float64 {
	return l.P1.Sub(l.P0).Angle()
}
