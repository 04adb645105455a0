package geometry

import (
	"math"
	"testing"
)

func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		name   string
		p1     [2]float64
		vertex [2]float64
		p2     [2]float64
		want   float64
	}{
		{name: "RightAngle", p1: [2]float64{1, 0}, vertex: [2]float64{0, 0}, p2: [2]float64{0, 1}, want: 90},
		{name: "Straight", p1: [2]float64{-1, 0}, vertex: [2]float64{0, 0}, p2: [2]float64{1, 0}, want: 180},
		{name: "Collapsed", p1: [2]float64{1, 0}, vertex: [2]float64{0, 0}, p2: [2]float64{2, 0}, want: 0},
		{name: "FortyFive", p1: [2]float64{1, 0}, vertex: [2]float64{0, 0}, p2: [2]float64{1, 1}, want: 45},
		{name: "ZeroRay", p1: [2]float64{0, 0}, vertex: [2]float64{0, 0}, p2: [2]float64{1, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAngle(
				NewPoint(tt.p1[0], tt.p1[1], "P1"),
				NewPoint(tt.vertex[0], tt.vertex[1], "V"),
				NewPoint(tt.p2[0], tt.p2[1], "P2"),
				"a")

			if got := a.Degrees(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Degrees = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleDegreesMissingPoint(t *testing.T) {
	a := NewAngle(NewPoint(1, 0, "P1"), nil, NewPoint(0, 1, "P2"), "a")

	if got := a.Degrees(); got != 0 {
		t.Errorf("Degrees = %v, want 0", got)
	}
}

func TestAngleEnforceMovesP2(t *testing.T) {
	p1 := NewPoint(1, 0, "P1")
	vertex := NewPoint(0, 0, "V")
	p2 := NewPoint(1, 1, "P2")
	a := NewAngle(p1, vertex, p2, "a")
	a.SetTarget(90)

	a.Enforce()

	if got := a.Degrees(); math.Abs(got-90) > 1e-6 {
		t.Errorf("Degrees = %v, want 90", got)
	}
	if p1.X != 1 || p1.Y != 0 {
		t.Errorf("P1 moved to (%v, %v)", p1.X, p1.Y)
	}
	// Distance from the vertex is preserved under the rotation.
	if got := vertex.DistanceTo(p2); math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("|V P2| = %v, want sqrt(2)", got)
	}
	// P2 was above the reference ray and must stay there.
	if p2.Y <= 0 {
		t.Errorf("P2.Y = %v, orientation flipped", p2.Y)
	}
}

func TestAngleEnforcePreservesOrientationBelow(t *testing.T) {
	p1 := NewPoint(1, 0, "P1")
	vertex := NewPoint(0, 0, "V")
	p2 := NewPoint(1, -1, "P2")
	a := NewAngle(p1, vertex, p2, "a")
	a.SetTarget(90)

	a.Enforce()

	if got := a.Degrees(); math.Abs(got-90) > 1e-6 {
		t.Errorf("Degrees = %v, want 90", got)
	}
	if p2.Y >= 0 {
		t.Errorf("P2.Y = %v, orientation flipped", p2.Y)
	}
}

func TestAngleEnforceWithinToleranceIsNoop(t *testing.T) {
	p1 := NewPoint(1, 0, "P1")
	vertex := NewPoint(0, 0, "V")
	p2 := NewPoint(0, 1, "P2")
	a := NewAngle(p1, vertex, p2, "a")
	target := a.Degrees() + AngleTolerance/2
	a.SetTarget(target)

	a.Enforce()

	if p2.X != 0 || p2.Y != 1 {
		t.Errorf("P2 moved to (%v, %v) within tolerance", p2.X, p2.Y)
	}
}

func TestAngleEnforceFallsBackToP1(t *testing.T) {
	p1 := NewPoint(1, 1, "P1")
	vertex := NewPoint(0, 0, "V")
	p2 := NewPoint(1, 0, "P2")
	p2.Fixed = true
	a := NewAngle(p1, vertex, p2, "a")
	a.SetTarget(90)

	a.Enforce()

	if p2.X != 1 || p2.Y != 0 {
		t.Errorf("fixed P2 moved to (%v, %v)", p2.X, p2.Y)
	}
	if got := a.Degrees(); math.Abs(got-90) > 1e-6 {
		t.Errorf("Degrees = %v, want 90", got)
	}
}

func TestAngleEnforceBothFixed(t *testing.T) {
	p1 := NewPoint(1, 1, "P1")
	p1.Fixed = true
	p2 := NewPoint(1, 0, "P2")
	p2.Fixed = true
	a := NewAngle(p1, NewPoint(0, 0, "V"), p2, "a")
	a.SetTarget(90)

	a.Enforce()

	if p1.X != 1 || p1.Y != 1 || p2.X != 1 || p2.Y != 0 {
		t.Error("fixed endpoints moved")
	}
}

func TestAngleEnforceWithoutTarget(t *testing.T) {
	p2 := NewPoint(1, 1, "P2")
	a := NewAngle(NewPoint(1, 0, "P1"), NewPoint(0, 0, "V"), p2, "a")
	a.Fixed = true // no target assigned

	a.Enforce()

	if p2.X != 1 || p2.Y != 1 {
		t.Errorf("P2 moved to (%v, %v) without a target", p2.X, p2.Y)
	}
}
