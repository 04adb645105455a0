package constraint

import (
	"fmt"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// RatioPoint keeps its target on a line at a fixed fraction of the way
// from P1 to P2. The ratio is clamped to [0, 1] at construction, so the
// point always lies on the segment.
type RatioPoint struct {
	point *geometry.Point
	line  *geometry.Line
	ratio float64
}

// NewRatioPoint constrains point to lie at ratio along line, measured
// from P1. Ratios outside [0, 1] are clamped.
func NewRatioPoint(point *geometry.Point, line *geometry.Line, ratio float64) *RatioPoint {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return &RatioPoint{point: point, line: line, ratio: ratio}
}

// Target returns the constrained point.
func (r *RatioPoint) Target() *geometry.Point { return r.point }

// Line returns the dependency line.
func (r *RatioPoint) Line() *geometry.Line { return r.line }

// Ratio returns the clamped interpolation fraction.
func (r *RatioPoint) Ratio() float64 { return r.ratio }

// Dependencies returns the line the point is interpolated on.
func (r *RatioPoint) Dependencies() []geometry.Object {
	return []geometry.Object{r.line}
}

// Evaluate linearly interpolates between the line's endpoints.
func (r *RatioPoint) Evaluate() (float64, float64, error) {
	if r.line == nil || r.line.P1 == nil || r.line.P2 == nil {
		return 0, 0, ErrUndefined
	}
	p1, p2 := r.line.P1, r.line.P2
	return p1.X + (p2.X-p1.X)*r.ratio, p1.Y + (p2.Y-p1.Y)*r.ratio, nil
}

// Describe returns a human-readable description.
func (r *RatioPoint) Describe() string {
	return fmt.Sprintf("point %s divides line %s at ratio %.2f", pointName(r.point), lineName(r.line), r.ratio)
}
