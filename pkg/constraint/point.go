package constraint

import (
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// Point is a constrained point: a point whose position is owned by the
// constraint engine once it has at least one active constraint.
//
// It embeds a [geometry.Point] by value; [Point.Pos] exposes it so lines
// and constraints can reference the shared storage and identity of the
// outer value. Direct repositioning of an actively constrained point is
// a no-op; moving an unconstrained one triggers a targeted re-evaluation
// of the constraints that read it, which is cheaper than a full
// propagation for a single drag.
type Point struct {
	geometry.Point

	mgr *Manager
}

// NewPoint creates a constrained point at (x, y). The point starts
// unbound and unconstrained; it behaves like a free point until a
// constraint targets it.
func NewPoint(x, y float64, name string) *Point {
	return &Point{Point: *geometry.NewPoint(x, y, name)}
}

// Bind attaches the manager that owns propagation for this point.
func (p *Point) Bind(m *Manager) { p.mgr = m }

// Manager returns the bound manager, or nil.
func (p *Point) Manager() *Manager { return p.mgr }

// Pos returns the embedded geometry point. Lines, angles, and constraints
// reference this shared value.
func (p *Point) Pos() *geometry.Point { return &p.Point }

// Constrained reports whether at least one active constraint currently
// writes to this point.
func (p *Point) Constrained() bool {
	return p.mgr != nil && len(p.mgr.ActiveFor(&p.Point)) > 0
}

// SetPosition repositions the point unless it is fixed or actively
// constrained, then re-evaluates exactly the constraints that depend on
// it. Requests on a constrained point are silently ignored: constraint
// evaluation is the only writer.
func (p *Point) SetPosition(x, y float64) {
	if p.Fixed || p.Constrained() {
		return
	}
	p.Point.X = x
	p.Point.Y = y
	p.updateDependents()
}

// DragTo applies an interactive move under the same discipline as
// SetPosition and reports whether the move happened.
func (p *Point) DragTo(x, y float64) bool {
	if p.Constrained() {
		return false
	}
	if !p.Point.DragTo(x, y) {
		return false
	}
	p.updateDependents()
	return true
}

func (p *Point) updateDependents() {
	if p.mgr == nil {
		return
	}
	for _, c := range p.mgr.DependentsOf(&p.Point) {
		p.mgr.Update(c)
	}
}
