// Package constraint implements the geometric constraint engine: derived
// points that stay mathematically consistent with the objects they are
// computed from.
//
// # Model
//
// A [Constraint] writes to exactly one point (its target) and reads from
// an ordered set of dependency objects. Four concrete kinds exist:
//
//   - [Midpoint]: the target is the midpoint of a line
//   - [RatioPoint]: the target divides a line at a fixed ratio in [0, 1]
//   - [PerpendicularFoot]: the target is the foot of the perpendicular
//     from a source point onto a segment
//   - [CircleCenter]: the target is the circumcenter of three points
//
// Evaluation is a pure function of current dependency state: Evaluate
// computes coordinates and the [Manager] writes them. Constraints never
// own their objects; they hold non-owning references into the canvas
// collection.
//
// # Propagation
//
// The canvas calls [Manager.UpdateAll] after any mutation of a free
// object. Propagation sweeps every active constraint in registration
// order for a small fixed number of passes, stopping early once a pass
// moves nothing by more than the change threshold. A boolean in-progress
// flag makes accidental reentrant calls safe no-ops; the dependency
// chains on a board are intentionally shallow, so no fixed-point
// iteration or topological ordering is needed. [Manager.Add]
// additionally refuses constraints that would close a dependency cycle.
//
// A constraint whose evaluation fails is deactivated and skipped from
// then on; one bad constraint never aborts propagation for the rest.
//
// Everything here is single-threaded and cooperative. The manager is not
// safe for concurrent use; the in-progress flag guards against
// reentrancy, not concurrency.
package constraint
