package pathcreator

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var testField = NewRectFromOrigin(Point{}, DefaultFieldSize)

func TestFieldPointValid(t *testing.T) {
	tests := []struct {
		Description string
		Pt          Point
		Valid       bool
	}{
		{"inside", Pt(12, 100), true},
		{"origin corner", Pt(0, 0), true},
		{"far corner", Pt(144, 144), true},
		{"left of field", Pt(-0.1, 5), false},
		{"below field", Pt(5, 144.1), false},
		{"NaN", Pt(math.NaN(), 5), false},
		{"infinite", Pt(math.Inf(1), 5), false},
	}
	for _, test := range tests {
		fp := FieldPoint{Pt: test.Pt, Bounds: testField}
		require.Equal(t, test.Valid, fp.Valid(), test.Description)
		require.Equal(t, fp.StartPoint(), fp.EndPoint(), test.Description)
	}
}

func point(x, y float64) PathNode {
	return FieldPoint{Pt: Pt(x, y), Bounds: testField}
}

func segment(x0, y0, x1, y1 float64) PathNode {
	return FieldSegment{Seg: NewHermiteSegment(x0, y0, 0, 3, x1, y1, 0, 3), Bounds: testField}
}

func TestFieldSegmentValid(t *testing.T) {
	tests := []struct {
		Description string
		Seg         HermiteSegment
		Valid       bool
	}{
		{"inside", NewHermiteSegment(5, 5, 0, 3, 100, 100, 0, 3), true},
		{"on border", NewHermiteSegment(0, 0, 0, 3, 144, 144, 0, 3), true},
		{"control point outside", NewHermiteSegment(140, 5, 0, 60, 140, 100, 0, 60), true},
		{"start outside", NewHermiteSegment(-5, 5, 0, 3, 100, 100, 0, 3), false},
		{"end outside", NewHermiteSegment(5, 5, 0, 3, 200, 200, 0, 3), false},
		{"NaN tangent", NewHermiteSegment(5, 5, math.NaN(), 3, 100, 100, 0, 3), false},
	}
	for _, test := range tests {
		fs := FieldSegment{Seg: test.Seg, Bounds: testField}
		require.Equal(t, test.Valid, fs.Valid(), test.Description)
		require.Equal(t, test.Seg.StartPoint(), fs.StartPoint(), test.Description)
		require.Equal(t, test.Seg.EndPoint(), fs.EndPoint(), test.Description)
	}
}

func TestLinksSkipInvalid(t *testing.T) {
	tests := []struct {
		Description string
		Nodes       []PathNode
		Links       [][2]int
	}{
		{"empty", nil, nil},
		{"single", []PathNode{point(1, 1)}, nil},
		{"all valid", []PathNode{point(1, 1), point(2, 2), point(3, 3)}, [][2]int{{0, 1}, {1, 2}}},
		{"invalid middle", []PathNode{point(1, 1), point(-1, 2), point(3, 3)}, nil},
		{"invalid second", []PathNode{point(1, 1), point(-1, 2), point(3, 3), point(4, 4)}, [][2]int{{2, 3}}},
		{"invalid ends", []PathNode{point(200, 1), point(2, 2), point(3, 3), point(4, 400)}, [][2]int{{1, 2}}},
		{"segment off field", []PathNode{point(1, 1), segment(5, 5, 200, 200), point(2, 2)}, nil},
		{"segment on field", []PathNode{point(1, 1), segment(5, 5, 100, 100), point(2, 2)}, [][2]int{{0, 1}, {1, 2}}},
	}
	for _, test := range tests {
		var got [][2]int
		for l := range Links(test.Nodes) {
			require.Equal(t, l.From+1, l.To, test.Description)
			got = append(got, [2]int{l.From, l.To})
		}
		require.Equal(t, test.Links, got, test.Description)
	}
}

func TestLinksStopEarly(t *testing.T) {
	nodes := []PathNode{point(1, 1), point(2, 2), point(3, 3)}
	n := 0
	for range Links(nodes) {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestLinkStraight(t *testing.T) {
	links := slices.Collect(Links([]PathNode{point(0, 0), point(30, 0)}))
	require.Len(t, links, 1)
	diff(t, CubicBez{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}, links[0].Segment.Cubic(), approx)
	require.InDelta(t, 30, links[0].Chord().Length(), 1e-12)
}

func TestLinkUsesTangents(t *testing.T) {
	seg := NewHermiteSegment(10, 10, 0, 3, 20, 10, math.Pi/2, 6)
	links := slices.Collect(Links([]PathNode{seg, point(20, 40)}))
	require.Len(t, links, 1)

	l := links[0].Segment
	diff(t, seg.EndPoint(), l.StartPoint())
	diff(t, Pt(20, 40), l.EndPoint())
	diff(t, seg.EndTangent(), l.StartTangent(), approx)
	// The point has no tangent of its own; the link arrives straight.
	diff(t, Tangent{math.Pi / 2, 30}, l.EndTangent(), approx)
}

func TestHermitePath(t *testing.T) {
	p := &HermitePath{Bounds: testField}
	require.False(t, p.Valid(), "empty path")
	require.Equal(t, Point{}, p.StartPoint())
	require.Equal(t, Tangent{}, p.EndTangent())

	p.Add(Pt(10, 10), Tangent{0, 20})
	p.Add(Pt(50, 10), Tangent{math.Pi / 2, 20})
	p.Add(Pt(50, 60), Tangent{math.Pi, 20})
	require.True(t, p.Valid())
	require.Equal(t, Pt(10, 10), p.StartPoint())
	require.Equal(t, Pt(50, 60), p.EndPoint())
	require.Equal(t, Tangent{0, 20}, p.StartTangent())
	require.Equal(t, Tangent{math.Pi, 20}, p.EndTangent())

	segs := slices.Collect(p.Segments())
	require.Len(t, segs, 2)
	diff(t, NewHermite(Pt(10, 10), Tangent{0, 20}, Pt(50, 10), Tangent{math.Pi / 2, 20}).Cubic(), segs[0].Cubic())
	diff(t, segs[0].EndPoint(), segs[1].StartPoint())

	els := slices.Collect(p.PathElements())
	kinds := make([]PathElementKind, len(els))
	for i, el := range els {
		kinds[i] = el.Kind
	}
	require.Equal(t, []PathElementKind{MoveToKind, CubicToKind, CubicToKind}, kinds)
}

func TestHermitePathInvalidWaypoint(t *testing.T) {
	p := &HermitePath{Bounds: testField}
	p.Add(Pt(10, 10), Tangent{0, 20})
	p.Add(Pt(10, 200), Tangent{0, 20})
	p.Add(Pt(50, 60), Tangent{0, 20})
	p.Add(Pt(80, 60), Tangent{0, 20})
	require.False(t, p.Valid())

	segs := slices.Collect(p.Segments())
	require.Len(t, segs, 1)
	diff(t, Pt(50, 60), segs[0].StartPoint())

	p.Waypoints[1].Pt = Pt(10, 100)
	p.Waypoints[2].Tangent.Mag = math.NaN()
	require.False(t, p.Valid())
	segs = slices.Collect(p.Segments())
	require.Len(t, segs, 1)
	diff(t, Pt(10, 10), segs[0].StartPoint())
	diff(t, Pt(10, 100), segs[0].EndPoint())
}

func TestHermitePathReorder(t *testing.T) {
	p := &HermitePath{Bounds: testField}
	p.Add(Pt(1, 1), Tangent{})
	p.Add(Pt(2, 2), Tangent{})
	p.Add(Pt(3, 3), Tangent{})

	require.Equal(t, 0, p.MoveWaypointUp(1))
	require.Equal(t, Pt(2, 2), p.StartPoint())
	require.Equal(t, 2, p.MoveWaypointDown(1))
	require.Equal(t, Pt(1, 1), p.EndPoint())

	require.True(t, p.Remove(0))
	require.False(t, p.Remove(5))
	require.Equal(t, []Waypoint{{Pt: Pt(3, 3)}, {Pt: Pt(1, 1)}}, p.Waypoints)
}

func TestMoveUpDown(t *testing.T) {
	s := []string{"a", "b", "c"}
	require.Equal(t, 0, MoveUp(s, 0))
	require.Equal(t, -1, MoveUp(s, -1))
	require.Equal(t, 3, MoveUp(s, 3))
	require.Equal(t, 2, MoveDown(s, 2))
	require.Equal(t, []string{"a", "b", "c"}, s)

	require.Equal(t, 1, MoveUp(s, 2))
	require.Equal(t, []string{"a", "c", "b"}, s)
	require.Equal(t, 1, MoveDown(s, 0))
	require.Equal(t, []string{"c", "a", "b"}, s)
}

func TestElements(t *testing.T) {
	p := &HermitePath{Bounds: testField}
	p.Add(Pt(20, 20), Tangent{0, 10})
	p.Add(Pt(40, 20), Tangent{0, 10})

	bad := &HermitePath{Bounds: testField}
	bad.Add(Pt(-20, 20), Tangent{0, 10})
	bad.Add(Pt(40, 20), Tangent{0, 10})

	nodes := []PathNode{point(0, 0), p, point(60, 60), bad, point(1, 1)}
	els := slices.Collect(Elements(nodes))
	kinds := make([]PathElementKind, len(els))
	for i, el := range els {
		kinds[i] = el.Kind
	}
	// The valid path's own curve, then links 0 to 1 and 1 to 2. The invalid path
	// draws nothing and is linked to nothing.
	require.Equal(t, []PathElementKind{
		MoveToKind, CubicToKind,
		MoveToKind, CubicToKind,
		MoveToKind, CubicToKind,
	}, kinds)
	require.Equal(t, Pt(20, 20), els[0].P0)
	require.Equal(t, Pt(0, 0), els[2].P0)
	require.Equal(t, Pt(20, 20), els[3].P2)
	require.Equal(t, Pt(40, 20), els[4].P0)
	require.Equal(t, Pt(60, 60), els[5].P2)
}
