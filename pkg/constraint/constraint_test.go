package constraint

import (
	"errors"
	"math"
	"testing"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

func TestMidpointEvaluate(t *testing.T) {
	line := geometry.NewLine(geometry.NewPoint(0, 0, "A"), geometry.NewPoint(4, 6, "B"), "AB")
	mid := geometry.NewPoint(0, 0, "M")
	c := NewMidpoint(mid, line)

	x, y, err := c.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if x != 2 || y != 3 {
		t.Errorf("Evaluate = (%v, %v), want (2, 3)", x, y)
	}

	// The midpoint follows endpoint moves exactly, never approximately.
	line.P2.SetPosition(10, 0)
	x, y, err = c.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate after move: %v", err)
	}
	if x != 5 || y != 0 {
		t.Errorf("Evaluate = (%v, %v), want (5, 0)", x, y)
	}
}

func TestMidpointEvaluateMissingEndpoint(t *testing.T) {
	line := geometry.NewLine(geometry.NewPoint(0, 0, "A"), nil, "dangling")
	c := NewMidpoint(geometry.NewPoint(0, 0, "M"), line)

	if _, _, err := c.Evaluate(); !errors.Is(err, ErrUndefined) {
		t.Errorf("Evaluate err = %v, want ErrUndefined", err)
	}
}

func TestRatioPointEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		ratio        float64
		wantX, wantY float64
	}{
		{name: "Quarter", ratio: 0.25, wantX: 2.5, wantY: 0},
		{name: "Half", ratio: 0.5, wantX: 5, wantY: 0},
		{name: "AtP1", ratio: 0, wantX: 0, wantY: 0},
		{name: "AtP2", ratio: 1, wantX: 10, wantY: 0},
		{name: "ClampedLow", ratio: -0.5, wantX: 0, wantY: 0},
		{name: "ClampedHigh", ratio: 1.5, wantX: 10, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := geometry.NewLine(geometry.NewPoint(0, 0, "A"), geometry.NewPoint(10, 0, "B"), "AB")
			c := NewRatioPoint(geometry.NewPoint(0, 0, "R"), line, tt.ratio)

			x, y, err := c.Evaluate()
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Evaluate = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRatioPointDistanceProperty(t *testing.T) {
	p1 := geometry.NewPoint(1, 2, "A")
	p2 := geometry.NewPoint(7, 10, "B")
	line := geometry.NewLine(p1, p2, "AB")
	c := NewRatioPoint(geometry.NewPoint(0, 0, "R"), line, 0.3)

	x, y, err := c.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	at := geometry.Point{X: x, Y: y}
	want := 0.3 * line.Length()
	if got := at.DistanceTo(p1); math.Abs(got-want) > 1e-9 {
		t.Errorf("distance from P1 = %v, want %v", got, want)
	}
}

func TestPerpendicularFootEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		source       [2]float64
		wantX, wantY float64
	}{
		{name: "AboveMiddle", source: [2]float64{5, 3}, wantX: 5, wantY: 0},
		{name: "OnLine", source: [2]float64{7, 0}, wantX: 7, wantY: 0},
		{name: "ClampsToP1", source: [2]float64{-4, 2}, wantX: 0, wantY: 0},
		{name: "ClampsToP2", source: [2]float64{15, 2}, wantX: 10, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := geometry.NewLine(geometry.NewPoint(0, 0, "A"), geometry.NewPoint(10, 0, "B"), "AB")
			source := geometry.NewPoint(tt.source[0], tt.source[1], "S")
			c := NewPerpendicularFoot(geometry.NewPoint(0, 0, "F"), source, line)

			x, y, err := c.Evaluate()
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Evaluate = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPerpendicularFootZeroLengthLine(t *testing.T) {
	p := geometry.NewPoint(3, 3, "A")
	line := geometry.NewLine(p, geometry.NewPoint(3, 3, "B"), "degenerate")
	c := NewPerpendicularFoot(geometry.NewPoint(0, 0, "F"), geometry.NewPoint(9, 9, "S"), line)

	x, y, err := c.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if x != 3 || y != 3 {
		t.Errorf("Evaluate = (%v, %v), want (3, 3)", x, y)
	}
}

func TestCircleCenterEvaluate(t *testing.T) {
	a := geometry.NewPoint(0, 0, "A")
	b := geometry.NewPoint(2, 0, "B")
	cp := geometry.NewPoint(0, 2, "C")
	c := NewCircleCenter(geometry.NewPoint(0, 0, "O"), a, b, cp)

	x, y, err := c.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(x-1) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("Evaluate = (%v, %v), want (1, 1)", x, y)
	}

	// Equidistance from all three defining points.
	center := geometry.Point{X: x, Y: y}
	ra, rb, rc := center.DistanceTo(a), center.DistanceTo(b), center.DistanceTo(cp)
	if math.Abs(ra-rb) > 1e-9 || math.Abs(ra-rc) > 1e-9 {
		t.Errorf("radii differ: %v, %v, %v", ra, rb, rc)
	}
}

func TestCircleCenterCollinear(t *testing.T) {
	c := NewCircleCenter(
		geometry.NewPoint(0, 0, "O"),
		geometry.NewPoint(0, 0, "A"),
		geometry.NewPoint(1, 1, "B"),
		geometry.NewPoint(2, 2, "C"))

	if _, _, err := c.Evaluate(); !errors.Is(err, ErrUndefined) {
		t.Errorf("Evaluate err = %v, want ErrUndefined", err)
	}
}

func TestDescribe(t *testing.T) {
	line := geometry.NewLine(geometry.NewPoint(0, 0, "A"), geometry.NewPoint(2, 0, "B"), "AB")
	m := NewMidpoint(geometry.NewPoint(0, 0, "M"), line)

	if got := m.Describe(); got == "" {
		t.Error("Describe returned an empty string")
	}
}
