package pathcreator

import (
	"errors"
	"fmt"
	"log/slog"
)

// DefaultFieldSize is the size of a VEX competition field in inches.
var DefaultFieldSize = Sz(144, 144)

var (
	ErrEmptyField = errors.New("field size must be positive")
	ErrEmptyPane  = errors.New("display pane must have positive size")
	ErrEmptyImage = errors.New("field image size must be positive")

	// ErrDegenerateMapping is returned when the scale between field and
	// display is too small or too large to be inverted.
	ErrDegenerateMapping = errors.New("field mapping is not invertible")
)

// FieldOption configures a [FieldMapping] during creation.
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	imageSize Size
	logger    *slog.Logger
}

func defaultFieldOptions() fieldOptions {
	return fieldOptions{
		// Zero means: use the field's own aspect ratio.
		imageSize: Size{},
		logger:    nil,
	}
}

// WithImageSize sets the natural size of the field image. The image is
// scaled to the largest size that fits the pane without changing its aspect
// ratio, and centered in the pane.
func WithImageSize(sz Size) FieldOption {
	return func(o *fieldOptions) {
		o.imageSize = sz
	}
}

// WithLogger sets the logger used while building the mapping. It defaults to
// [Logger].
func WithLogger(l *slog.Logger) FieldOption {
	return func(o *fieldOptions) {
		o.logger = l
	}
}

// FieldMapping converts between field coordinates (for example inches from
// the field's top left corner) and display coordinates (for example pixels of
// the pane that shows the field image). It is immutable; build a new one when
// the field or the pane changes.
type FieldMapping struct {
	field   Size
	pane    Rect
	display Rect
	toDisp  Affine
	toField Affine
}

// NewFieldMapping returns the mapping of a field of the given size onto pane.
func NewFieldMapping(field Size, pane Rect, opts ...FieldOption) (FieldMapping, error) {
	o := defaultFieldOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	if field.IsEmpty() || field.IsInf() {
		return FieldMapping{}, fmt.Errorf("field %s: %w", field, ErrEmptyField)
	}
	pane = pane.Abs()
	if pane.IsNaN() || pane.IsInf() || pane.Size().IsEmpty() {
		return FieldMapping{}, fmt.Errorf("pane %s: %w", pane, ErrEmptyPane)
	}
	aspect := field.AspectRatio()
	if o.imageSize != (Size{}) {
		if o.imageSize.IsEmpty() || o.imageSize.IsInf() {
			return FieldMapping{}, fmt.Errorf("image %s: %w", o.imageSize, ErrEmptyImage)
		}
		aspect = o.imageSize.AspectRatio()
	}

	display := pane.ContainedRectWithAspectRatio(aspect)
	toDisp := Scale(display.Width()/field.Width, display.Height()/field.Height).
		ThenTranslate(Vec2(display.Origin()))
	toField := toDisp.Invert()
	if toDisp.IsNaN() || toDisp.IsInf() || toField.IsNaN() || toField.IsInf() {
		return FieldMapping{}, fmt.Errorf("field %s in %s: %w", field, display, ErrDegenerateMapping)
	}
	log.Debug("field mapping", "field", field.String(), "pane", pane.String(), "display", display.String())

	return FieldMapping{
		field:   field,
		pane:    pane,
		display: display,
		toDisp:  toDisp,
		toField: toField,
	}, nil
}

// Field returns the field size.
func (m FieldMapping) Field() Size { return m.field }

// Bounds returns the field's extent in field coordinates.
func (m FieldMapping) Bounds() Rect {
	return NewRectFromOrigin(Point{}, m.field)
}

// Pane returns the pane the field is shown in.
func (m FieldMapping) Pane() Rect { return m.pane }

// Display returns the part of the pane covered by the field.
func (m FieldMapping) Display() Rect { return m.display }

// Affine returns the transform from field to display coordinates.
func (m FieldMapping) Affine() Affine { return m.toDisp }

// ToDisplay converts a point in field coordinates to display coordinates.
func (m FieldMapping) ToDisplay(pt Point) Point {
	return pt.Transform(m.toDisp)
}

// ToField converts a point in display coordinates to field coordinates.
func (m FieldMapping) ToField(pt Point) Point {
	return pt.Transform(m.toField)
}

// Point returns pt, given in field coordinates, as a node bounded by the
// field.
func (m FieldMapping) Point(pt Point) FieldPoint {
	return FieldPoint{Pt: pt, Bounds: m.Bounds()}
}

// Segment returns the Hermite segment between start and end, given in field
// coordinates, as a node bounded by the field.
func (m FieldMapping) Segment(start Point, startTan Tangent, end Point, endTan Tangent) FieldSegment {
	return FieldSegment{Seg: NewHermite(start, startTan, end, endTan), Bounds: m.Bounds()}
}

// Path returns an empty path bounded by the field.
func (m FieldMapping) Path() *HermitePath {
	return &HermitePath{Bounds: m.Bounds()}
}
