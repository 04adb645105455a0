// Package canvas owns the ordered collection of geometric objects and the
// constraint manager attached to it.
//
// The canvas is the single owner of every object: constraints, snapshots,
// and external collaborators only borrow references for the duration of
// one call. Everything is single-threaded and cooperative; the canvas is
// not safe for concurrent use.
package canvas

import (
	"slices"

	"github.com/google/uuid"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/constraint"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// Default canvas dimensions, matching the board's initial window.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Canvas is an ordered, mutable collection of geometric objects plus the
// canvas-level scalars a snapshot preserves (size, view offset). Object
// order is insertion order; it doubles as the stable index space at save
// time.
type Canvas struct {
	Width  float64
	Height float64

	OffsetX float64
	OffsetY float64

	Manager *constraint.Manager

	// ActivePolygons are the currently highlighted derived polygons,
	// a subset of the object collection.
	ActivePolygons []*geometry.Polygon

	objects []geometry.Object
}

// New creates an empty canvas with its own constraint manager.
func New(width, height float64) *Canvas {
	return &Canvas{
		Width:   width,
		Height:  height,
		Manager: constraint.NewManager(),
	}
}

// Add appends obj to the collection. Constrained points are bound to the
// canvas's manager as a side effect. Objects already present are ignored.
func (c *Canvas) Add(obj geometry.Object) {
	if c.Contains(obj) {
		return
	}
	if cp, ok := obj.(*constraint.Point); ok {
		cp.Bind(c.Manager)
	}
	c.objects = append(c.objects, obj)
}

// Remove deletes obj from the collection and removes every constraint
// that writes to it or reads from it. Active polygons that reference a
// removed point are dropped as well.
func (c *Canvas) Remove(obj geometry.Object) {
	id := obj.ID()
	before := len(c.objects)
	c.objects = slices.DeleteFunc(c.objects, func(o geometry.Object) bool { return o.ID() == id })
	if len(c.objects) == before {
		return
	}
	c.Manager.RemoveFor(obj)
	c.ActivePolygons = slices.DeleteFunc(c.ActivePolygons, func(p *geometry.Polygon) bool {
		if p.ID() == id {
			return true
		}
		_, ok := p.VertexSet()[id]
		return ok
	})
}

// Contains reports whether an object with obj's identity is in the
// collection.
func (c *Canvas) Contains(obj geometry.Object) bool {
	id := obj.ID()
	return slices.ContainsFunc(c.objects, func(o geometry.Object) bool { return o.ID() == id })
}

// Objects returns the collection in insertion order. The slice is a copy;
// the objects are the canvas's own.
func (c *Canvas) Objects() []geometry.Object {
	return slices.Clone(c.objects)
}

// Len returns the number of objects on the canvas.
func (c *Canvas) Len() int { return len(c.objects) }

// Clear drops every object, polygon, and constraint.
func (c *Canvas) Clear() {
	c.objects = nil
	c.ActivePolygons = nil
	c.Manager.Clear()
}

// Replace swaps in a freshly reconstructed state: objects, active
// polygons, and view scalars. Used by snapshot restoration once the new
// state has fully parsed, so a failed load never half-clears the canvas.
func (c *Canvas) Replace(objects []geometry.Object, polygons []*geometry.Polygon, width, height, offsetX, offsetY float64) {
	c.objects = objects
	c.ActivePolygons = polygons
	c.Width = width
	c.Height = height
	c.OffsetX = offsetX
	c.OffsetY = offsetY
}

// ByID returns the object with the given identity, or nil.
func (c *Canvas) ByID(id uuid.UUID) geometry.Object {
	for _, o := range c.objects {
		if o.ID() == id {
			return o
		}
	}
	return nil
}

// Points returns every plain point and the embedded point of every
// constrained point, in collection order. Lines and angles reference
// points from this set.
func (c *Canvas) Points() []*geometry.Point {
	var pts []*geometry.Point
	for _, o := range c.objects {
		switch p := o.(type) {
		case *geometry.Point:
			pts = append(pts, p)
		case *constraint.Point:
			pts = append(pts, p.Pos())
		}
	}
	return pts
}

// Lines returns every line in collection order.
func (c *Canvas) Lines() []*geometry.Line {
	var lines []*geometry.Line
	for _, o := range c.objects {
		if l, ok := o.(*geometry.Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// DetectPolygons re-derives the closed figures formed by the current
// points and lines.
func (c *Canvas) DetectPolygons() []*geometry.Polygon {
	return geometry.DetectPolygons(c.Points(), c.Lines())
}
