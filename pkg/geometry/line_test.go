package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLineLengthAndMidpoint(t *testing.T) {
	l := NewLine(NewPoint(0, 0, "A"), NewPoint(6, 8, "B"), "AB")

	if got := l.Length(); got != 10 {
		t.Errorf("Length = %v, want 10", got)
	}
	x, y := l.Midpoint()
	if x != 3 || y != 4 {
		t.Errorf("Midpoint = (%v, %v), want (3, 4)", x, y)
	}
}

func TestLineLengthMissingEndpoint(t *testing.T) {
	l := NewLine(NewPoint(0, 0, "A"), nil, "dangling")

	if got := l.Length(); got != 0 {
		t.Errorf("Length = %v, want 0", got)
	}
}

func TestLineMidpointMissingEndpoint(t *testing.T) {
	l := NewLine(NewPoint(4, 4, "A"), nil, "dangling")

	x, y := l.Midpoint()
	if x != 0 || y != 0 {
		t.Errorf("Midpoint = (%v, %v), want (0, 0)", x, y)
	}
}

func TestLineSetLength(t *testing.T) {
	tests := []struct {
		name         string
		p1, p2       [2]float64
		length       float64
		wantP2       [2]float64
		wantOriginal float64
		wantFixed    bool
	}{
		{
			name:         "ScalesAlongDirection",
			p1:           [2]float64{0, 0},
			p2:           [2]float64{3, 4},
			length:       10,
			wantP2:       [2]float64{6, 8},
			wantOriginal: 10,
			wantFixed:    true,
		},
		{
			name:         "AnchorsP1",
			p1:           [2]float64{1, 1},
			p2:           [2]float64{1, 3},
			length:       4,
			wantP2:       [2]float64{1, 5},
			wantOriginal: 4,
			wantFixed:    true,
		},
		{
			name:         "DegenerateExtendsHorizontally",
			p1:           [2]float64{2, 2},
			p2:           [2]float64{2, 2},
			length:       5,
			wantP2:       [2]float64{7, 2},
			wantOriginal: 5,
			wantFixed:    true,
		},
		{
			name:      "RefusesNonPositive",
			p1:        [2]float64{0, 0},
			p2:        [2]float64{3, 0},
			length:    -1,
			wantP2:    [2]float64{3, 0},
			wantFixed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1 := NewPoint(tt.p1[0], tt.p1[1], "P1")
			p2 := NewPoint(tt.p2[0], tt.p2[1], "P2")
			l := NewLine(p1, p2, "L")

			l.SetLength(tt.length)

			if p1.X != tt.p1[0] || p1.Y != tt.p1[1] {
				t.Errorf("P1 moved to (%v, %v)", p1.X, p1.Y)
			}
			if !almostEqual(p2.X, tt.wantP2[0]) || !almostEqual(p2.Y, tt.wantP2[1]) {
				t.Errorf("P2 = (%v, %v), want (%v, %v)", p2.X, p2.Y, tt.wantP2[0], tt.wantP2[1])
			}
			if l.FixedLength != tt.wantFixed {
				t.Errorf("FixedLength = %v, want %v", l.FixedLength, tt.wantFixed)
			}
			if tt.wantFixed && !almostEqual(l.OriginalLength, tt.wantOriginal) {
				t.Errorf("OriginalLength = %v, want %v", l.OriginalLength, tt.wantOriginal)
			}
		})
	}
}

func TestLineEnforceLengthDraggedEndpoint(t *testing.T) {
	p1 := NewPoint(0, 0, "P1")
	p2 := NewPoint(5, 0, "P2")
	l := NewLine(p1, p2, "L")
	l.SetLength(5)

	// Drag P2 off the circle; P1 stays anchored.
	p2.SetPosition(20, 0)
	l.EnforceLength(p2)

	if p1.X != 0 || p1.Y != 0 {
		t.Errorf("anchor moved to (%v, %v)", p1.X, p1.Y)
	}
	if !almostEqual(p2.X, 5) || !almostEqual(p2.Y, 0) {
		t.Errorf("P2 = (%v, %v), want (5, 0)", p2.X, p2.Y)
	}
	if !almostEqual(l.Length(), 5) {
		t.Errorf("Length = %v, want 5", l.Length())
	}
}

func TestLineEnforceLengthPreservesDirection(t *testing.T) {
	p1 := NewPoint(0, 0, "P1")
	p2 := NewPoint(4, 0, "P2")
	l := NewLine(p1, p2, "L")
	l.SetLength(4)

	p1.SetPosition(-2, 2)
	l.EnforceLength(p1)

	if !almostEqual(l.Length(), 4) {
		t.Errorf("Length = %v, want 4", l.Length())
	}
	// P1 stays on the ray from P2 through its dragged position.
	if p1.X >= p2.X || p1.Y <= 0 {
		t.Errorf("P1 = (%v, %v), expected above-left of P2", p1.X, p1.Y)
	}
}

func TestLineEnforceLengthSymmetric(t *testing.T) {
	p1 := NewPoint(-4, 0, "P1")
	p2 := NewPoint(4, 0, "P2")
	l := NewLine(p1, p2, "L")
	l.SetLength(8)

	// Stretch both endpoints outward, then restore with no dragged hint.
	p1.SetPosition(-8, 0)
	p2.SetPosition(8, 0)
	l.EnforceLength(nil)

	if !almostEqual(l.Length(), 8) {
		t.Errorf("Length = %v, want 8", l.Length())
	}
	x, y := l.Midpoint()
	if !almostEqual(x, 0) || !almostEqual(y, 0) {
		t.Errorf("Midpoint = (%v, %v), want origin preserved", x, y)
	}
}

func TestLineEnforceLengthNoopWhenUnfixed(t *testing.T) {
	p1 := NewPoint(0, 0, "P1")
	p2 := NewPoint(3, 0, "P2")
	l := NewLine(p1, p2, "L")

	p2.SetPosition(9, 0)
	l.EnforceLength(p2)

	if p2.X != 9 {
		t.Errorf("P2.X = %v, want 9 (no enforcement without fixed length)", p2.X)
	}
}

func TestLineToggleFixedLength(t *testing.T) {
	p1 := NewPoint(0, 0, "P1")
	p2 := NewPoint(3, 0, "P2")
	l := NewLine(p1, p2, "L")

	l.ToggleFixedLength()
	if !l.FixedLength || l.OriginalLength != 3 {
		t.Fatalf("after enable: FixedLength = %v, OriginalLength = %v", l.FixedLength, l.OriginalLength)
	}

	l.ToggleFixedLength()
	if l.FixedLength {
		t.Error("after disable: still fixed")
	}
}

func TestLineSetPointsRefreshesFixedLength(t *testing.T) {
	l := NewLine(NewPoint(0, 0, "A"), NewPoint(3, 0, "B"), "L")
	l.ToggleFixedLength()

	l.SetPoints(NewPoint(0, 0, "C"), NewPoint(0, 7, "D"))

	if l.OriginalLength != 7 {
		t.Errorf("OriginalLength = %v, want 7", l.OriginalLength)
	}
}

func TestLineEndpointNear(t *testing.T) {
	p1 := NewPoint(0, 0, "P1")
	p2 := NewPoint(10, 0, "P2")
	l := NewLine(p1, p2, "L")

	tests := []struct {
		name      string
		x, y      float64
		threshold float64
		want      *Point
		wantOK    bool
	}{
		{name: "NearP1", x: 1, y: 0, threshold: 2, want: p1, wantOK: true},
		{name: "NearP2", x: 9, y: 1, threshold: 2, want: p2, wantOK: true},
		{name: "TooFar", x: 5, y: 5, threshold: 2, want: nil, wantOK: false},
		{name: "TieGoesToP1", x: 5, y: 0, threshold: 6, want: p1, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.EndpointNear(tt.x, tt.y, tt.threshold)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("EndpointNear = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
