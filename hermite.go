package pathcreator

import (
	"fmt"
	"iter"
	"math"
)

// Tangent describes the derivative of a curve at one of its end points as a
// direction and a magnitude.
type Tangent struct {
	// Angle is the direction of travel in radians.
	Angle float64
	// Mag is the magnitude of the derivative. It is three times the distance
	// between the end point and its neighbouring Bézier control point.
	Mag float64
}

// Vec returns the tangent as a vector.
func (tan Tangent) Vec() Vec2 {
	return VecFromAngle(tan.Angle).Mul(tan.Mag)
}

func (tan Tangent) String() string {
	return fmt.Sprintf("∠%g×%g", tan.Angle, tan.Mag)
}

// HermiteSegment is a cubic curve addressed by its end points and the
// tangents at those end points. It is stored as a cubic Bézier: the start
// control point is start + startMag/3 in the direction of the start angle,
// and the end control point is end − endMag/3 in the direction of the end
// angle.
//
// The end angle is the direction of travel arriving at the end point, not
// the direction of the vector from the end point to its control point.
//
// A HermiteSegment is a plain value. It does no synchronization; concurrent
// mutation and reads of the same value must be serialized by the caller.
type HermiteSegment struct {
	bez CubicBez
}

var _ PathNode = HermiteSegment{}

// NewHermiteSegment returns the segment from (startX, startY) to (endX, endY)
// with the given tangents. Angles are in radians and need not be normalized.
//
// No input is validated. Negative magnitudes place a control point on the
// opposite side of its tangent direction, and NaN or infinite inputs
// propagate to every accessor.
func NewHermiteSegment(startX, startY, startAngle, startMag, endX, endY, endAngle, endMag float64) HermiteSegment {
	return NewHermite(
		Pt(startX, startY), Tangent{startAngle, startMag},
		Pt(endX, endY), Tangent{endAngle, endMag},
	)
}

// NewHermite is like [NewHermiteSegment] but takes points and tangents.
func NewHermite(start Point, startTan Tangent, end Point, endTan Tangent) HermiteSegment {
	return HermiteSegment{
		bez: CubicBez{
			P0: start,
			P1: startControl(start, startTan.Angle, startTan.Mag),
			P2: endControl(end, endTan.Angle, endTan.Mag),
			P3: end,
		},
	}
}

// HermiteFromCubic returns the segment with the same geometry as c.
func HermiteFromCubic(c CubicBez) HermiteSegment {
	return HermiteSegment{bez: c}
}

func startControl(start Point, angle, mag float64) Point {
	return start.Translate(VecFromAngle(angle).Mul(mag / 3))
}

func endControl(end Point, angle, mag float64) Point {
	return end.Translate(VecFromAngle(angle).Mul(-mag / 3))
}

// Cubic returns the segment in Bézier form. P1 and P2 are the control points.
func (h HermiteSegment) Cubic() CubicBez {
	return h.bez
}

// ControlPoints returns the start point, the two control points, and the end
// point.
func (h HermiteSegment) ControlPoints() (p0, c1, c2, p1 Point) {
	return h.bez.P0, h.bez.P1, h.bez.P2, h.bez.P3
}

// StartAngle returns the tangent angle at the start point, in (−π, π].
func (h HermiteSegment) StartAngle() float64 {
	return NormalizeAngle(h.bez.P1.Sub(h.bez.P0).Angle())
}

// StartMag returns the tangent magnitude at the start point.
func (h HermiteSegment) StartMag() float64 {
	return 3 * h.bez.P0.Distance(h.bez.P1)
}

// EndAngle returns the tangent angle at the end point, in (−π, π].
func (h HermiteSegment) EndAngle() float64 {
	// The stored vector points back from the end point against the
	// direction of travel.
	return NormalizeAngle(h.bez.P2.Sub(h.bez.P3).Angle() - math.Pi)
}

// EndMag returns the tangent magnitude at the end point.
func (h HermiteSegment) EndMag() float64 {
	return 3 * h.bez.P3.Distance(h.bez.P2)
}

// StartTangent returns the start angle and magnitude together.
func (h HermiteSegment) StartTangent() Tangent {
	return Tangent{Angle: h.StartAngle(), Mag: h.StartMag()}
}

// EndTangent returns the end angle and magnitude together.
func (h HermiteSegment) EndTangent() Tangent {
	return Tangent{Angle: h.EndAngle(), Mag: h.EndMag()}
}

// SetStartAngle changes the start tangent's direction, keeping its magnitude.
func (h *HermiteSegment) SetStartAngle(angle float64) {
	h.SetStartTangent(angle, h.StartMag())
}

// SetStartMag changes the start tangent's magnitude, keeping its direction.
// If the current magnitude is zero the direction is 0.
func (h *HermiteSegment) SetStartMag(mag float64) {
	h.SetStartTangent(h.StartAngle(), mag)
}

// SetStartTangent replaces the start tangent.
func (h *HermiteSegment) SetStartTangent(angle, mag float64) {
	h.bez.P1 = startControl(h.bez.P0, angle, mag)
}

// SetEndAngle changes the end tangent's direction, keeping its magnitude.
func (h *HermiteSegment) SetEndAngle(angle float64) {
	h.SetEndTangent(angle, h.EndMag())
}

// SetEndMag changes the end tangent's magnitude, keeping its direction.
// If the current magnitude is zero the direction is 0.
func (h *HermiteSegment) SetEndMag(mag float64) {
	h.SetEndTangent(h.EndAngle(), mag)
}

// SetEndTangent replaces the end tangent.
func (h *HermiteSegment) SetEndTangent(angle, mag float64) {
	h.bez.P2 = endControl(h.bez.P3, angle, mag)
}

// Eval evaluates the curve at t ∈ [0, 1].
func (h HermiteSegment) Eval(t float64) Point {
	return h.bez.Eval(t)
}

// Deriv returns the derivative of the curve at t. At t = 0 and t = 1 it is
// the start and end tangent as a vector.
func (h HermiteSegment) Deriv(t float64) Vec2 {
	return Vec2(h.bez.Differentiate().Eval(t))
}

// StartPoint implements [PathNode].
func (h HermiteSegment) StartPoint() Point { return h.bez.P0 }

// EndPoint implements [PathNode].
func (h HermiteSegment) EndPoint() Point { return h.bez.P3 }

// Valid implements [PathNode]. A segment carries no field bounds of its own;
// it is valid when all of its points are finite. Use [FieldSegment] to bound
// it by a field.
func (h HermiteSegment) Valid() bool {
	return !h.IsNaN() && !h.IsInf()
}

func (h HermiteSegment) IsNaN() bool { return h.bez.IsNaN() }
func (h HermiteSegment) IsInf() bool { return h.bez.IsInf() }

// Transform applies aff to the segment. Bézier curves are affine invariant,
// so this is how a segment is moved between unit systems.
func (h HermiteSegment) Transform(aff Affine) HermiteSegment {
	return HermiteSegment{bez: h.bez.Transform(aff)}
}

// BoundingBox returns the tight bounds of the curve.
func (h HermiteSegment) BoundingBox() Rect {
	return h.bez.BoundingBox()
}

// PathElements implements [Shaper].
func (h HermiteSegment) PathElements() iter.Seq[PathElement] {
	return h.bez.PathElements()
}

func (h HermiteSegment) String() string {
	return fmt.Sprintf("HermiteSegment{start: %s, startAngle: %g, startMag: %g, end: %s, endAngle: %g, endMag: %g}",
		h.bez.P0, h.StartAngle(), h.StartMag(), h.bez.P3, h.EndAngle(), h.EndMag())
}
