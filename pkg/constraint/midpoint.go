package constraint

import (
	"fmt"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// Midpoint keeps its target at the midpoint of a line.
type Midpoint struct {
	point *geometry.Point
	line  *geometry.Line
}

// NewMidpoint constrains point to the midpoint of line.
func NewMidpoint(point *geometry.Point, line *geometry.Line) *Midpoint {
	return &Midpoint{point: point, line: line}
}

// Target returns the constrained midpoint.
func (m *Midpoint) Target() *geometry.Point { return m.point }

// Line returns the dependency line.
func (m *Midpoint) Line() *geometry.Line { return m.line }

// Dependencies returns the line the midpoint is computed from.
func (m *Midpoint) Dependencies() []geometry.Object {
	return []geometry.Object{m.line}
}

// Evaluate returns the midpoint of the line's current endpoints.
func (m *Midpoint) Evaluate() (float64, float64, error) {
	if m.line == nil || m.line.P1 == nil || m.line.P2 == nil {
		return 0, 0, ErrUndefined
	}
	x, y := m.line.Midpoint()
	return x, y, nil
}

// Describe returns a human-readable description.
func (m *Midpoint) Describe() string {
	return fmt.Sprintf("point %s is the midpoint of line %s", pointName(m.point), lineName(m.line))
}
