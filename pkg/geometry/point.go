package geometry

import (
	"math"

	"github.com/google/uuid"
)

// DefaultPointRadius is the display radius assigned by NewPoint.
const DefaultPointRadius = 5

// Point is a free point on the canvas.
//
// Two independent flags govern mutation: Fixed blocks every position
// change, including direct ones; Draggable only gates interactive
// manipulation via [Point.DragTo]. A fixed point may still be draggable
// in the UI sense (the drag is simply refused), and a non-draggable
// point may still be repositioned programmatically.
type Point struct {
	id uuid.UUID

	Name   string
	X, Y   float64
	Radius float64

	Fixed     bool
	Draggable bool
	Visible   bool

	Color Color
}

// NewPoint creates a visible, draggable point at (x, y).
func NewPoint(x, y float64, name string) *Point {
	return &Point{
		id:        uuid.New(),
		Name:      name,
		X:         x,
		Y:         y,
		Radius:    DefaultPointRadius,
		Draggable: true,
		Visible:   true,
		Color:     ColorPointBlue,
	}
}

// ID returns the point's transient identity.
func (p *Point) ID() uuid.UUID { return p.id }

// SetPosition moves the point to (x, y) unless it is fixed.
// Fixed points silently keep their position.
func (p *Point) SetPosition(x, y float64) {
	if p.Fixed {
		return
	}
	p.X = x
	p.Y = y
}

// DragTo moves the point via interactive manipulation. It reports whether
// the move was applied: non-draggable and fixed points refuse drags.
func (p *Point) DragTo(x, y float64) bool {
	if !p.Draggable || p.Fixed {
		return false
	}
	p.X = x
	p.Y = y
	return true
}

// DistanceTo returns the Euclidean distance to q.
// Returns +Inf if q is nil so callers can use it in nearest-point scans
// without a nil check.
func (p *Point) DistanceTo(q *Point) float64 {
	if q == nil {
		return math.Inf(1)
	}
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Hypot(dx, dy)
}

// ToggleFixed flips the fixed flag and returns the new state.
func (p *Point) ToggleFixed() bool {
	p.Fixed = !p.Fixed
	return p.Fixed
}
