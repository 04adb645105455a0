// Package geometry defines the geometric object model for the math board:
// points, lines, angles, and derived polygons.
//
// Objects are plain data entities with identity. Every object receives a
// [github.com/google/uuid.UUID] at construction time. The UUID is a
// process-local handle: it identifies an object within one running program
// and is used by the snapshot package to build its save-time identity
// table. It is never a portable key on its own.
//
// Ownership follows the canvas model: the canvas collection owns all
// objects. A [Line] refers to its two endpoint points but does not own
// them; an [Angle] refers to three points; a [Polygon] refers to its
// vertex list. Deleting a point from the canvas leaves referring objects
// with dangling references, which downstream consumers treat as "skip
// this cycle" rather than as an invariant violation.
//
// Two enforcement operations live here because they are one-shot
// adjustments, not standing constraints: [Line.SetLength] (and
// [Line.EnforceLength]) solve for an endpoint once, and [Angle.Enforce]
// rotates a ray endpoint onto a target angle once. Continuous maintenance
// of derived positions belongs to the constraint package.
package geometry
