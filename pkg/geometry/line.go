package geometry

import (
	"math"

	"github.com/google/uuid"
)

// DefaultLineWidth is the stroke width assigned by NewLine.
const DefaultLineWidth = 2

// lengthEpsilon is the tolerance below which two lengths are considered
// equal and below which a direction vector is considered degenerate.
const lengthEpsilon = 1e-4

// Line is a segment between two points. The line refers to its endpoints
// but does not own them: the canvas collection does.
//
// When FixedLength is set, OriginalLength records the length to preserve.
// Enforcement is one-shot: SetLength and EnforceLength solve for endpoint
// positions once, and nothing re-corrects the length if an endpoint is
// later moved by unrelated logic.
type Line struct {
	id uuid.UUID

	Name   string
	P1, P2 *Point

	Color Color
	Width float64

	FixedLength    bool
	OriginalLength float64
}

// NewLine creates a line between p1 and p2. Either endpoint may be nil;
// length-dependent operations treat a nil endpoint as a no-op.
func NewLine(p1, p2 *Point, name string) *Line {
	l := &Line{
		id:    uuid.New(),
		Name:  name,
		P1:    p1,
		P2:    p2,
		Color: ColorLineBlack,
		Width: DefaultLineWidth,
	}
	return l
}

// ID returns the line's transient identity.
func (l *Line) ID() uuid.UUID { return l.id }

// SetPoints replaces both endpoints. If the line has a fixed length, the
// recorded original length is refreshed to the new endpoints' distance.
func (l *Line) SetPoints(p1, p2 *Point) {
	l.P1 = p1
	l.P2 = p2
	if l.FixedLength {
		l.OriginalLength = l.Length()
	}
}

// Length returns the current segment length, or 0 if an endpoint is missing.
func (l *Line) Length() float64 {
	if l.P1 == nil || l.P2 == nil {
		return 0
	}
	return math.Hypot(l.P2.X-l.P1.X, l.P2.Y-l.P1.Y)
}

// Midpoint returns the coordinates of the segment midpoint, or the
// origin if an endpoint is missing.
func (l *Line) Midpoint() (x, y float64) {
	if l.P1 == nil || l.P2 == nil {
		return 0, 0
	}
	return (l.P1.X + l.P2.X) / 2, (l.P1.Y + l.P2.Y) / 2
}

// ToggleFixedLength flips the fixed-length flag. Whichever direction the
// toggle goes, the original length is re-recorded from the current
// endpoints, and enabling immediately enforces it.
func (l *Line) ToggleFixedLength() {
	l.FixedLength = !l.FixedLength
	l.OriginalLength = l.Length()
	if l.FixedLength {
		l.EnforceLength(nil)
	}
}

// SetLength establishes a fixed length in one shot: P1 stays where it is
// and P2 is placed along the existing direction vector scaled to length.
// A non-positive length is refused. A degenerate (near zero-length) line
// extends horizontally from P1.
func (l *Line) SetLength(length float64) {
	if length <= 0 || l.P1 == nil || l.P2 == nil {
		return
	}
	l.OriginalLength = length
	l.FixedLength = true

	current := l.Length()
	if current < lengthEpsilon {
		l.P2.X = l.P1.X + length
		l.P2.Y = l.P1.Y
		return
	}

	scale := length / current
	l.P2.X = l.P1.X + (l.P2.X-l.P1.X)*scale
	l.P2.Y = l.P1.Y + (l.P2.Y-l.P1.Y)*scale
}

// EnforceLength restores OriginalLength after an endpoint moved.
//
// If dragged names one endpoint, the other endpoint is held fixed and the
// dragged one is pulled back onto the circle of the original length. With
// dragged nil the midpoint is held fixed and both endpoints are scaled
// symmetrically (whole-segment translation case).
//
// This is the one-shot half of fixed-length maintenance: callers that
// want the invariant upheld must invoke it after each endpoint mutation.
func (l *Line) EnforceLength(dragged *Point) {
	if !l.FixedLength || l.P1 == nil || l.P2 == nil {
		return
	}
	if math.Abs(l.Length()-l.OriginalLength) < lengthEpsilon {
		return
	}

	if dragged != nil {
		anchor, moving := l.P1, l.P2
		if dragged == l.P1 {
			anchor, moving = l.P2, l.P1
		}
		dx := moving.X - anchor.X
		dy := moving.Y - anchor.Y
		current := math.Hypot(dx, dy)
		if current < lengthEpsilon {
			return
		}
		scale := l.OriginalLength / current
		moving.X = anchor.X + dx*scale
		moving.Y = anchor.Y + dy*scale
		return
	}

	midX, midY := l.Midpoint()
	dx1 := l.P1.X - midX
	dy1 := l.P1.Y - midY
	half := math.Hypot(dx1, dy1)
	if half < lengthEpsilon {
		return
	}
	scale := (l.OriginalLength / 2) / half
	l.P1.X = midX + dx1*scale
	l.P1.Y = midY + dy1*scale
	l.P2.X = midX + (l.P2.X-midX)*scale
	l.P2.Y = midY + (l.P2.Y-midY)*scale
}

// EndpointNear returns the endpoint within threshold of (x, y), preferring
// the closer one, and reports whether any endpoint qualified.
func (l *Line) EndpointNear(x, y, threshold float64) (*Point, bool) {
	probe := Point{X: x, Y: y}
	d1 := probe.DistanceTo(l.P1)
	d2 := probe.DistanceTo(l.P2)
	switch {
	case d1 <= d2 && d1 <= threshold:
		return l.P1, true
	case d2 < d1 && d2 <= threshold:
		return l.P2, true
	}
	return nil, false
}
