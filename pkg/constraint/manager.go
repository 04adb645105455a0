package constraint

import (
	"errors"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// Defaults for propagation tuning. Two passes suffice because dependency
// chains on a board are at most two levels deep (point → derived point →
// rarely a second derived point); running to a fixed point would buy
// nothing and risks oscillation on mis-declared inputs.
const (
	DefaultMaxPasses       = 2
	DefaultChangeThreshold = 0.1
)

// Manager owns the ordered set of constraints and drives propagation.
// Constraints evaluate in registration order, so a later constraint
// observes the already-updated positions of earlier ones within the same
// pass.
//
// Manager is single-threaded by contract. The in-progress flag turns
// accidental reentrant UpdateAll calls into safe no-ops; it is not a
// concurrency primitive.
type Manager struct {
	// MaxPasses bounds propagation sweeps per UpdateAll call.
	// Zero or negative means DefaultMaxPasses.
	MaxPasses int

	// ChangeThreshold is the absolute coordinate delta above which a
	// constraint counts as having visibly moved its target, keeping a
	// pass alive. Zero or negative means DefaultChangeThreshold.
	ChangeThreshold float64

	constraints []Constraint
	inactive    map[Constraint]bool
	updating    bool
	logger      *log.Logger
}

// NewManager creates an empty manager with default tuning.
func NewManager() *Manager {
	return &Manager{
		MaxPasses:       DefaultMaxPasses,
		ChangeThreshold: DefaultChangeThreshold,
		inactive:        make(map[Constraint]bool),
	}
}

// SetLogger installs a logger for per-constraint warnings (deactivation
// on failed evaluation). A nil logger silences them.
func (m *Manager) SetLogger(l *log.Logger) { m.logger = l }

// Add registers c and immediately evaluates it once so the target starts
// consistent. Returns ErrDuplicateConstraint if the instance is already
// registered, or ErrConstraintCycle if c's target is reachable from its
// own dependencies through already-registered constraints.
func (m *Manager) Add(c Constraint) error {
	if slices.Contains(m.constraints, c) {
		return ErrDuplicateConstraint
	}
	if m.wouldCycle(c) {
		return ErrConstraintCycle
	}
	m.constraints = append(m.constraints, c)
	m.Update(c)
	return nil
}

// Remove unregisters c by identity. Unknown constraints are ignored.
func (m *Manager) Remove(c Constraint) {
	m.constraints = slices.DeleteFunc(m.constraints, func(k Constraint) bool { return k == c })
	delete(m.inactive, c)
}

// RemoveFor removes every constraint that writes to obj or reads from it,
// directly or through a dependency line endpoint. Called when obj is
// deleted from the canvas.
func (m *Manager) RemoveFor(obj geometry.Object) {
	id := obj.ID()
	var removed []Constraint
	for _, c := range m.constraints {
		if (c.Target() != nil && c.Target().ID() == id) || dependsOn(c, obj) {
			removed = append(removed, c)
		}
	}
	for _, c := range removed {
		m.Remove(c)
	}
}

// Update evaluates a single constraint and writes the result. It is a
// no-op while a propagation is in progress or if c is inactive. A failed
// evaluation deactivates c.
func (m *Manager) Update(c Constraint) {
	if m.updating || m.inactive[c] {
		return
	}
	if err := m.apply(c); err != nil {
		m.deactivate(c, err)
	}
}

// UpdateAll is the propagation entry point, invoked by the canvas after
// any mutation of a free object. It sweeps all active constraints for up
// to MaxPasses passes, stopping early once a pass produces no visible
// change. Reentrant calls return immediately.
func (m *Manager) UpdateAll() {
	if m.updating {
		return
	}
	m.updating = true
	defer func() { m.updating = false }()

	passes := m.MaxPasses
	if passes <= 0 {
		passes = DefaultMaxPasses
	}
	threshold := m.ChangeThreshold
	if threshold <= 0 {
		threshold = DefaultChangeThreshold
	}

	for pass := 0; pass < passes; pass++ {
		changed := false
		// Snapshot so deactivation or removal during the sweep is safe.
		for _, c := range slices.Clone(m.constraints) {
			if m.inactive[c] {
				continue
			}
			target := c.Target()
			var oldX, oldY float64
			if target != nil {
				oldX, oldY = target.X, target.Y
			}

			if err := m.apply(c); err != nil {
				m.deactivate(c, err)
				continue
			}

			if target != nil &&
				(math.Abs(target.X-oldX) > threshold || math.Abs(target.Y-oldY) > threshold) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// apply evaluates c and writes the result to the target. ErrUndefined is
// swallowed: the constraint has no effect this cycle and the target keeps
// its prior position.
func (m *Manager) apply(c Constraint) error {
	x, y, err := c.Evaluate()
	if err != nil {
		if errors.Is(err, ErrUndefined) {
			return nil
		}
		return err
	}
	target := c.Target()
	if target == nil {
		return nil
	}
	// Constraint evaluation is the one writer allowed to bypass the
	// position discipline, fixed flag included.
	target.X = x
	target.Y = y
	return nil
}

func (m *Manager) deactivate(c Constraint, err error) {
	m.inactive[c] = true
	if m.logger != nil {
		m.logger.Warn("constraint deactivated", "constraint", c.Describe(), "err", err)
	}
}

// Active reports whether c is registered and not deactivated.
func (m *Manager) Active(c Constraint) bool {
	return slices.Contains(m.constraints, c) && !m.inactive[c]
}

// Deactivate marks c inactive without removing it. Used when restoring a
// snapshot that recorded the constraint as inactive.
func (m *Manager) Deactivate(c Constraint) {
	if slices.Contains(m.constraints, c) {
		m.inactive[c] = true
	}
}

// For returns the constraints whose target is obj, in registration order.
func (m *Manager) For(obj geometry.Object) []Constraint {
	id := obj.ID()
	var result []Constraint
	for _, c := range m.constraints {
		if c.Target() != nil && c.Target().ID() == id {
			result = append(result, c)
		}
	}
	return result
}

// ActiveFor returns the active constraints whose target is obj.
func (m *Manager) ActiveFor(obj geometry.Object) []Constraint {
	var result []Constraint
	for _, c := range m.For(obj) {
		if !m.inactive[c] {
			result = append(result, c)
		}
	}
	return result
}

// DependentsOf returns the constraints that read obj, directly or through
// a dependency line endpoint. These are the constraints a targeted
// update must re-evaluate after obj moves.
func (m *Manager) DependentsOf(obj geometry.Object) []Constraint {
	var result []Constraint
	for _, c := range m.constraints {
		if dependsOn(c, obj) {
			result = append(result, c)
		}
	}
	return result
}

// Constraints returns the registered constraints in registration order.
// The returned slice is a copy.
func (m *Manager) Constraints() []Constraint {
	return slices.Clone(m.constraints)
}

// Len returns the number of registered constraints, active or not.
func (m *Manager) Len() int { return len(m.constraints) }

// Clear unregisters everything.
func (m *Manager) Clear() {
	m.constraints = nil
	m.inactive = make(map[Constraint]bool)
}

// Descriptions returns the human-readable description of every active
// constraint, in registration order.
func (m *Manager) Descriptions() []string {
	var out []string
	for _, c := range m.constraints {
		if !m.inactive[c] {
			out = append(out, c.Describe())
		}
	}
	return out
}

// wouldCycle reports whether adding c would make its target reachable
// from its own dependencies: the transitive dependency closure of c,
// expanded through already-registered constraints, contains the target.
func (m *Manager) wouldCycle(c Constraint) bool {
	target := c.Target()
	if target == nil {
		return false
	}
	frontier := dependencyPoints(c)
	visited := make(map[uuid.UUID]bool)
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if id == target.ID() {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, k := range m.constraints {
			if kt := k.Target(); kt != nil && kt.ID() == id {
				frontier = append(frontier, dependencyPoints(k)...)
			}
		}
	}
	return false
}
