package constraint

import (
	"errors"

	"github.com/google/uuid"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

var (
	// ErrUndefined is returned by Evaluate when the result is undefined
	// for the current dependency state (collinear circumcenter points,
	// missing references). The constraint has no effect this cycle and
	// stays active.
	ErrUndefined = errors.New("constraint result undefined")

	// ErrDuplicateConstraint is returned by [Manager.Add] when the exact
	// constraint instance is already registered.
	ErrDuplicateConstraint = errors.New("constraint already registered")

	// ErrConstraintCycle is returned by [Manager.Add] when registering the
	// constraint would make its target an indirect dependency of itself.
	ErrConstraintCycle = errors.New("constraint would create a dependency cycle")
)

// Constraint computes the position of a single target point from the
// current state of its dependencies.
type Constraint interface {
	// Target returns the point this constraint writes to.
	Target() *geometry.Point

	// Dependencies returns the objects this constraint reads from, in
	// declaration order. The slice must not be mutated.
	Dependencies() []geometry.Object

	// Evaluate computes the target coordinates from current dependency
	// state, with no side effects. It returns ErrUndefined when the
	// result does not exist this cycle; any other error marks the
	// constraint as broken.
	Evaluate() (x, y float64, err error)

	// Describe returns a human-readable description of the relationship.
	Describe() string
}

// dependencyPoints expands a constraint's dependencies to the identities
// of the underlying points. Lines contribute both endpoints. Used by the
// manager for cycle checks and deletion cascades.
func dependencyPoints(c Constraint) []uuid.UUID {
	var ids []uuid.UUID
	for _, dep := range c.Dependencies() {
		switch d := dep.(type) {
		case *geometry.Point:
			ids = append(ids, d.ID())
		case *Point:
			ids = append(ids, d.ID())
		case *geometry.Line:
			if d.P1 != nil {
				ids = append(ids, d.P1.ID())
			}
			if d.P2 != nil {
				ids = append(ids, d.P2.ID())
			}
		}
	}
	return ids
}

// dependsOn reports whether obj appears in the constraint's dependency
// set, either directly or as an endpoint of a dependency line.
func dependsOn(c Constraint, obj geometry.Object) bool {
	id := obj.ID()
	for _, dep := range c.Dependencies() {
		if dep.ID() == id {
			return true
		}
	}
	for _, pid := range dependencyPoints(c) {
		if pid == id {
			return true
		}
	}
	return false
}

func pointName(p *geometry.Point) string {
	if p == nil || p.Name == "" {
		return "?"
	}
	return p.Name
}

func lineName(l *geometry.Line) string {
	if l == nil || l.Name == "" {
		return "?"
	}
	return l.Name
}
