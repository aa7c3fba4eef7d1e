package pathcreator

import (
	"iter"
	"math"
)

// PathNode is an element that can be chained into a path: a single point, a
// Hermite segment, or a composite path.
type PathNode interface {
	// Valid reports whether the node's geometry is usable, typically whether
	// it lies within the field bounds. Invalid nodes are tolerated; they are
	// skipped when linking, not treated as errors.
	Valid() bool
	StartPoint() Point
	EndPoint() Point
}

// Shaper is an optional interface implemented by nodes that have drawable
// geometry of their own, beyond the links between nodes.
type Shaper interface {
	PathElements() iter.Seq[PathElement]
}

// Tangenter is an optional interface implemented by nodes that prescribe the
// heading with which the path leaves their start and reaches their end.
// Links to and from such nodes are curved to match.
type Tangenter interface {
	StartTangent() Tangent
	EndTangent() Tangent
}

// FieldPoint is a single point placed on a field.
type FieldPoint struct {
	Pt     Point
	Bounds Rect
}

var _ PathNode = FieldPoint{}

// Valid reports whether the point is finite and inside the field, borders
// included.
func (fp FieldPoint) Valid() bool {
	return fp.Pt.finite() && fp.Bounds.Contains(fp.Pt)
}

func (fp FieldPoint) StartPoint() Point { return fp.Pt }
func (fp FieldPoint) EndPoint() Point   { return fp.Pt }

// FieldSegment is a Hermite segment placed on a field. It is valid when both
// of its end points are finite and inside the field, borders included. The
// control points may leave the field.
type FieldSegment struct {
	Seg    HermiteSegment
	Bounds Rect
}

var (
	_ PathNode  = FieldSegment{}
	_ Shaper    = FieldSegment{}
	_ Tangenter = FieldSegment{}
)

func (fs FieldSegment) Valid() bool {
	return fs.Seg.Valid() &&
		fs.Bounds.Contains(fs.Seg.StartPoint()) &&
		fs.Bounds.Contains(fs.Seg.EndPoint())
}

func (fs FieldSegment) StartPoint() Point     { return fs.Seg.StartPoint() }
func (fs FieldSegment) EndPoint() Point       { return fs.Seg.EndPoint() }
func (fs FieldSegment) StartTangent() Tangent { return fs.Seg.StartTangent() }
func (fs FieldSegment) EndTangent() Tangent   { return fs.Seg.EndTangent() }

// PathElements implements [Shaper].
func (fs FieldSegment) PathElements() iter.Seq[PathElement] {
	return fs.Seg.PathElements()
}

// Waypoint is a point the robot passes through together with its heading and
// speed there.
type Waypoint struct {
	Pt      Point
	Tangent Tangent
}

// HermitePath is an ordered list of waypoints joined by Hermite segments.
type HermitePath struct {
	Bounds    Rect
	Waypoints []Waypoint
}

var (
	_ PathNode  = (*HermitePath)(nil)
	_ Shaper    = (*HermitePath)(nil)
	_ Tangenter = (*HermitePath)(nil)
	_ Tangenter = HermiteSegment{}
)

// Add appends a waypoint.
func (p *HermitePath) Add(pt Point, tan Tangent) {
	p.Waypoints = append(p.Waypoints, Waypoint{Pt: pt, Tangent: tan})
}

// Remove deletes the waypoint at index i. It reports false if i is out of
// range.
func (p *HermitePath) Remove(i int) bool {
	if i < 0 || i >= len(p.Waypoints) {
		return false
	}
	p.Waypoints = append(p.Waypoints[:i], p.Waypoints[i+1:]...)
	return true
}

// Valid reports whether the path has at least one waypoint and every
// waypoint lies within the bounds with a finite tangent.
func (p *HermitePath) Valid() bool {
	if len(p.Waypoints) == 0 {
		return false
	}
	for _, wp := range p.Waypoints {
		if !p.waypointValid(wp) {
			return false
		}
	}
	return true
}

func (p *HermitePath) waypointValid(wp Waypoint) bool {
	return FieldPoint{Pt: wp.Pt, Bounds: p.Bounds}.Valid() &&
		isFinite(wp.Tangent.Angle) && isFinite(wp.Tangent.Mag)
}

// StartPoint returns the first waypoint, or the zero point for an empty path.
func (p *HermitePath) StartPoint() Point {
	if len(p.Waypoints) == 0 {
		return Point{}
	}
	return p.Waypoints[0].Pt
}

// EndPoint returns the last waypoint, or the zero point for an empty path.
func (p *HermitePath) EndPoint() Point {
	if len(p.Waypoints) == 0 {
		return Point{}
	}
	return p.Waypoints[len(p.Waypoints)-1].Pt
}

// StartTangent returns the first waypoint's tangent.
func (p *HermitePath) StartTangent() Tangent {
	if len(p.Waypoints) == 0 {
		return Tangent{}
	}
	return p.Waypoints[0].Tangent
}

// EndTangent returns the last waypoint's tangent.
func (p *HermitePath) EndTangent() Tangent {
	if len(p.Waypoints) == 0 {
		return Tangent{}
	}
	return p.Waypoints[len(p.Waypoints)-1].Tangent
}

// Segments yields the segment between each pair of consecutive waypoints,
// skipping pairs in which either waypoint is invalid.
func (p *HermitePath) Segments() iter.Seq[HermiteSegment] {
	return func(yield func(HermiteSegment) bool) {
		for i := 1; i < len(p.Waypoints); i++ {
			a, b := p.Waypoints[i-1], p.Waypoints[i]
			if !p.waypointValid(a) || !p.waypointValid(b) {
				continue
			}
			if !yield(NewHermite(a.Pt, a.Tangent, b.Pt, b.Tangent)) {
				return
			}
		}
	}
}

// PathElements implements [Shaper].
func (p *HermitePath) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var last Point
		first := true
		for seg := range p.Segments() {
			p0, c1, c2, p1 := seg.ControlPoints()
			if first || last != p0 {
				if !yield(MoveTo(p0)) {
					return
				}
			}
			first = false
			if !yield(CubicTo(c1, c2, p1)) {
				return
			}
			last = p1
		}
	}
}

// MoveWaypointUp swaps waypoint i with its predecessor and returns its new
// index. It returns i unchanged when no move is possible.
func (p *HermitePath) MoveWaypointUp(i int) int {
	return MoveUp(p.Waypoints, i)
}

// MoveWaypointDown swaps waypoint i with its successor and returns its new
// index. It returns i unchanged when no move is possible.
func (p *HermitePath) MoveWaypointDown(i int) int {
	return MoveDown(p.Waypoints, i)
}

// Link is the connection drawn between two consecutive path nodes.
type Link struct {
	// From and To are the indices of the linked nodes; To is always From+1.
	From, To int
	Segment  HermiteSegment
}

// Links yields a link from the end of each node to the start of the next,
// omitting every link that touches an invalid node. Nothing is reconnected
// across an invalid node.
//
// A link leaves and enters along the straight line between the two nodes
// unless a node implements [Tangenter], in which case its tangent is used on
// that side.
func Links(nodes []PathNode) iter.Seq[Link] {
	return func(yield func(Link) bool) {
		for i := 0; i+1 < len(nodes); i++ {
			a, b := nodes[i], nodes[i+1]
			if !a.Valid() || !b.Valid() {
				Logger().Debug("skipping link across invalid node", "from", i, "to", i+1)
				continue
			}
			if !yield(Link{From: i, To: i + 1, Segment: link(a, b)}) {
				return
			}
		}
	}
}

// Chord returns the straight line between the linked nodes.
func (l Link) Chord() Line {
	return Line{l.Segment.StartPoint(), l.Segment.EndPoint()}
}

func link(a, b PathNode) HermiteSegment {
	p0, p1 := a.EndPoint(), b.StartPoint()
	chord := Line{p0, p1}
	straight := Tangent{Angle: chord.Angle(), Mag: chord.Length()}
	t0, t1 := straight, straight
	if ta, ok := a.(Tangenter); ok {
		t0 = ta.EndTangent()
	}
	if tb, ok := b.(Tangenter); ok {
		t1 = tb.StartTangent()
	}
	return NewHermite(p0, t0, p1, t1)
}

// Elements yields everything a renderer needs to draw nodes: the own
// geometry of every valid node implementing [Shaper], followed by all links.
func Elements(nodes []PathNode) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, n := range nodes {
			s, ok := n.(Shaper)
			if !ok || !n.Valid() {
				continue
			}
			for el := range s.PathElements() {
				if !yield(el) {
					return
				}
			}
		}
		for l := range Links(nodes) {
			for el := range l.Segment.PathElements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// MoveUp swaps s[i] with s[i-1] and returns the element's new index. It is a
// no-op returning i if i is the first index or out of range.
func MoveUp[S ~[]E, E any](s S, i int) int {
	if i <= 0 || i >= len(s) {
		return i
	}
	s[i-1], s[i] = s[i], s[i-1]
	return i - 1
}

// MoveDown swaps s[i] with s[i+1] and returns the element's new index. It is
// a no-op returning i if i is the last index or out of range.
func MoveDown[S ~[]E, E any](s S, i int) int {
	if i < 0 || i >= len(s)-1 {
		return i
	}
	s[i], s[i+1] = s[i+1], s[i]
	return i + 1
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
