// Package pathcreator models robot motion paths on a competition field.
//
// A path is a sequence of nodes: single points, cubic Hermite curve segments,
// or composite paths made of waypoints. The package provides the curve
// mathematics and the chaining rules; windows, widgets, image loading and
// input handling belong to the caller.
//
// # Hermite segments
//
// [HermiteSegment] describes a cubic curve by its two end points and a
// tangent (angle and magnitude) at each of them. Internally it is a cubic
// Bézier ([CubicBez]); the control points sit a third of the tangent
// magnitude away from the end points. The start angle is the direction in
// which the curve leaves its start point, the end angle the direction in
// which it arrives at its end point. Angles read back from a segment are
// normalized to (−π, π] (see [NormalizeAngle]).
//
// Each of the four tangent quantities can be changed independently: changing
// an angle keeps the magnitude, changing a magnitude keeps the angle.
//
// # Chaining
//
// Anything that implements [PathNode] can be chained. [Links] connects the end
// of each node to the start of the next one, but never across a node whose
// Valid method reports false. Nodes can opt into more behavior through the
// optional interfaces [Shaper] (own drawable geometry) and [Tangenter]
// (prescribed headings). [Elements] turns a node list into a stream of
// [PathElement] values that a renderer can draw, for example via [SVG].
//
// # Units
//
// The curve types are unit-agnostic. [FieldMapping] converts between field
// units and display units; it is an immutable value built by
// [NewFieldMapping]. Because Bézier curves are affine invariant, a segment
// can be moved between unit systems with [HermiteSegment.Transform] and
// [FieldMapping.Affine]. [FieldMapping.Point], [FieldMapping.Segment] and
// [FieldMapping.Path] build nodes whose validity is checked against the field.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug records.
package pathcreator
