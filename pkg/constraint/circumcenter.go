package constraint

import (
	"fmt"
	"math"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// collinearEpsilon is the determinant magnitude below which three points
// are treated as collinear and the circumcenter as undefined.
const collinearEpsilon = 1e-10

// CircleCenter keeps its target at the center of the circle through three
// points, solved with the determinant formula. Collinear points have no
// circumcircle; the constraint then has no effect for the cycle and the
// target keeps its prior position.
type CircleCenter struct {
	center  *geometry.Point
	a, b, c *geometry.Point
}

// NewCircleCenter constrains center to the circumcenter of a, b, and c.
func NewCircleCenter(center, a, b, c *geometry.Point) *CircleCenter {
	return &CircleCenter{center: center, a: a, b: b, c: c}
}

// Target returns the constrained center point.
func (cc *CircleCenter) Target() *geometry.Point { return cc.center }

// Points returns the three points on the circle.
func (cc *CircleCenter) Points() (a, b, c *geometry.Point) { return cc.a, cc.b, cc.c }

// Dependencies returns the three circle points in order.
func (cc *CircleCenter) Dependencies() []geometry.Object {
	return []geometry.Object{cc.a, cc.b, cc.c}
}

// Evaluate solves the circumcenter. Returns ErrUndefined for collinear
// points.
func (cc *CircleCenter) Evaluate() (float64, float64, error) {
	if cc.a == nil || cc.b == nil || cc.c == nil {
		return 0, 0, ErrUndefined
	}
	x1, y1 := cc.a.X, cc.a.Y
	x2, y2 := cc.b.X, cc.b.Y
	x3, y3 := cc.c.X, cc.c.Y

	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(d) < collinearEpsilon {
		return 0, 0, ErrUndefined
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3
	ux := (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d
	uy := (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d
	return ux, uy, nil
}

// Describe returns a human-readable description.
func (cc *CircleCenter) Describe() string {
	return fmt.Sprintf("point %s is the center of the circle through %s, %s, %s",
		pointName(cc.center), pointName(cc.a), pointName(cc.b), pointName(cc.c))
}
