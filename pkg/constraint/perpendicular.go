package constraint

import (
	"fmt"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// PerpendicularFoot keeps its target at the foot of the perpendicular
// dropped from a source point onto a segment. The projection parameter is
// clamped to [0, 1], so the foot always lies on the segment itself, never
// on its extension: outside the segment's span the foot is the nearer
// endpoint.
type PerpendicularFoot struct {
	foot   *geometry.Point
	source *geometry.Point
	line   *geometry.Line
}

// NewPerpendicularFoot constrains foot to the projection of source onto line.
func NewPerpendicularFoot(foot, source *geometry.Point, line *geometry.Line) *PerpendicularFoot {
	return &PerpendicularFoot{foot: foot, source: source, line: line}
}

// Target returns the constrained foot point.
func (p *PerpendicularFoot) Target() *geometry.Point { return p.foot }

// Source returns the point being projected.
func (p *PerpendicularFoot) Source() *geometry.Point { return p.source }

// Line returns the segment being projected onto.
func (p *PerpendicularFoot) Line() *geometry.Line { return p.line }

// Dependencies returns the source point and the line, in that order.
func (p *PerpendicularFoot) Dependencies() []geometry.Object {
	return []geometry.Object{p.source, p.line}
}

// Evaluate projects the source onto the segment. A zero-length segment
// degenerates to its first endpoint.
func (p *PerpendicularFoot) Evaluate() (float64, float64, error) {
	if p.source == nil || p.line == nil || p.line.P1 == nil || p.line.P2 == nil {
		return 0, 0, ErrUndefined
	}
	x1, y1 := p.line.P1.X, p.line.P1.Y
	dx := p.line.P2.X - x1
	dy := p.line.P2.Y - y1

	if dx == 0 && dy == 0 {
		return x1, y1, nil
	}

	t := ((p.source.X-x1)*dx + (p.source.Y-y1)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return x1 + t*dx, y1 + t*dy, nil
}

// Describe returns a human-readable description.
func (p *PerpendicularFoot) Describe() string {
	return fmt.Sprintf("point %s is the foot of the perpendicular from %s to line %s",
		pointName(p.foot), pointName(p.source), lineName(p.line))
}
