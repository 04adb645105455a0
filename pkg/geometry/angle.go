package geometry

import (
	"math"

	"github.com/google/uuid"
)

// AngleTolerance is the tolerance, in degrees, below which Enforce treats
// the current angle as already matching the target and does nothing.
const AngleTolerance = 0.5

// Angle is the angle P1-Vertex-P2, defined by the rays Vertex→P1 and
// Vertex→P2. The value is always derived from the three referenced
// points' current coordinates and never stored.
//
// TargetAngle is nil until a target is assigned. With Fixed set and a
// target present, Enforce repositions a ray endpoint in one shot.
type Angle struct {
	id uuid.UUID

	Name   string
	P1     *Point
	Vertex *Point
	P2     *Point

	Color Color

	Fixed       bool
	TargetAngle *float64 // degrees
}

// NewAngle creates the angle p1-vertex-p2.
func NewAngle(p1, vertex, p2 *Point, name string) *Angle {
	return &Angle{
		id:     uuid.New(),
		Name:   name,
		P1:     p1,
		Vertex: vertex,
		P2:     p2,
		Color:  ColorAngleRed,
	}
}

// ID returns the angle's transient identity.
func (a *Angle) ID() uuid.UUID { return a.id }

// SetTarget fixes the angle at the given number of degrees.
func (a *Angle) SetTarget(degrees float64) {
	a.Fixed = true
	a.TargetAngle = &degrees
}

// Degrees returns the interior angle in degrees, in [0, 180].
// Returns 0 if any point is missing or a ray has zero length.
func (a *Angle) Degrees() float64 {
	if a.P1 == nil || a.Vertex == nil || a.P2 == nil {
		return 0
	}
	v1x := a.P1.X - a.Vertex.X
	v1y := a.P1.Y - a.Vertex.Y
	v2x := a.P2.X - a.Vertex.X
	v2y := a.P2.Y - a.Vertex.Y

	m1 := math.Hypot(v1x, v1y)
	m2 := math.Hypot(v2x, v2y)
	if m1 == 0 || m2 == 0 {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (m1 * m2)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// Enforce rotates one ray endpoint so the angle lands exactly on the
// target, preserving its distance from the vertex. P2 moves unless it is
// a fixed point, in which case P1 moves instead; if both are fixed
// nothing happens. Angles already within AngleTolerance of the target
// are left untouched.
//
// The rotation direction matches the moved point's current angular side
// of the reference ray, so enforcing never flips the figure's
// orientation.
func (a *Angle) Enforce() {
	if !a.Fixed || a.TargetAngle == nil {
		return
	}
	if a.P1 == nil || a.Vertex == nil || a.P2 == nil {
		return
	}
	if math.Abs(a.Degrees()-*a.TargetAngle) < AngleTolerance {
		return
	}

	switch {
	case !a.P2.Fixed:
		a.rotateOnto(a.P2, a.P1)
	case !a.P1.Fixed:
		a.rotateOnto(a.P1, a.P2)
	}
}

// rotateOnto moves target onto the ray at TargetAngle degrees from the
// reference ray Vertex→ref, keeping the Vertex→target distance.
func (a *Angle) rotateOnto(target, ref *Point) {
	distance := a.Vertex.DistanceTo(target)
	refAngle := math.Atan2(ref.Y-a.Vertex.Y, ref.X-a.Vertex.X)
	targetRad := *a.TargetAngle * math.Pi / 180

	// Which side of the reference ray is the point on now?
	span := math.Atan2(target.Y-a.Vertex.Y, target.X-a.Vertex.X) - refAngle
	if span < 0 {
		span += 2 * math.Pi
	}

	newAngle := refAngle + targetRad
	if span > math.Pi {
		newAngle = refAngle - targetRad
	}

	target.SetPosition(
		a.Vertex.X+distance*math.Cos(newAngle),
		a.Vertex.Y+distance*math.Sin(newAngle),
	)
}
