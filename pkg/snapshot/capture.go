package snapshot

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/constraint"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// Serializer captures and restores canvas snapshots. The zero value is
// usable; a logger adds warnings for best-effort steps (version mismatch,
// skipped records).
type Serializer struct {
	logger *log.Logger
}

// New creates a serializer. logger may be nil.
func New(logger *log.Logger) *Serializer {
	return &Serializer{logger: logger}
}

func (s *Serializer) warn(msg string, kv ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, kv...)
	}
}

// Capture converts the canvas's current state into a snapshot. Objects
// receive stable indices in collection order, and the identity map
// records each object's transient identity against its index so
// relational references survive the process boundary.
func (s *Serializer) Capture(c *canvas.Canvas) *Snapshot {
	objects := c.Objects()

	indexByID := make(map[uuid.UUID]int, len(objects))
	for i, obj := range objects {
		indexByID[obj.ID()] = i
	}

	snap := &Snapshot{
		Version:   FormatVersion,
		Timestamp: time.Now().UTC(),
		Canvas: CanvasInfo{
			Width:  c.Width,
			Height: c.Height,
			Offset: Offset{X: c.OffsetX, Y: c.OffsetY},
		},
		IdentityMap: make(map[string]int, len(objects)),
	}
	for id, i := range indexByID {
		snap.IdentityMap[id.String()] = i
	}

	for i, obj := range objects {
		if rec, ok := encodeObject(obj, i); ok {
			snap.Objects = append(snap.Objects, rec)
		} else {
			s.warn("skipping unknown object type", "index", i)
		}
	}

	for _, k := range c.Manager.Constraints() {
		snap.Constraints = append(snap.Constraints, encodeConstraint(k, c.Manager.Active(k)))
	}

	for _, p := range c.ActivePolygons {
		if i, ok := indexByID[p.ID()]; ok {
			snap.ActivePolygons = append(snap.ActivePolygons, i)
		}
	}

	return snap
}

// Save captures the canvas and writes the snapshot to path.
func (s *Serializer) Save(c *canvas.Canvas, path string) error {
	return WriteFile(s.Capture(c), path)
}

// encodeObject serializes one canvas object with its type's allow-listed
// attributes. Reports false for types the format does not cover.
func encodeObject(obj geometry.Object, index int) (ObjectRecord, bool) {
	switch o := obj.(type) {
	case *constraint.Point:
		rec := encodePoint(&o.Point, index)
		rec.Type = TypeConstrainedPoint
		return rec, true

	case *geometry.Point:
		return encodePoint(o, index), true

	case *geometry.Line:
		rec := ObjectRecord{
			Type:      TypeLine,
			Index:     index,
			Name:      o.Name,
			Visible:   true,
			Draggable: true,
			Width:     ptr(o.Width),
			Color:     encodeColor(o.Color),
		}
		if o.P1 != nil {
			rec.P1ID = o.P1.ID().String()
		}
		if o.P2 != nil {
			rec.P2ID = o.P2.ID().String()
		}
		if o.FixedLength {
			rec.FixedLength = ptr(true)
			rec.OriginalLength = ptr(o.OriginalLength)
		}
		return rec, true

	case *geometry.Angle:
		rec := ObjectRecord{
			Type:        TypeAngle,
			Index:       index,
			Name:        o.Name,
			Visible:     true,
			Color:       encodeColor(o.Color),
			Fixed:       ptr(o.Fixed),
			TargetAngle: o.TargetAngle,
		}
		if o.P1 != nil {
			rec.P1ID = o.P1.ID().String()
		}
		if o.Vertex != nil {
			rec.VertexID = o.Vertex.ID().String()
		}
		if o.P2 != nil {
			rec.P2ID = o.P2.ID().String()
		}
		return rec, true

	case *geometry.Polygon:
		rec := ObjectRecord{
			Type:               TypePolygon,
			Index:              index,
			Name:               o.Name,
			Visible:            true,
			FillColor:          encodeColor(o.FillColor),
			ShowFill:           o.ShowFill,
			ShowDiagonals:      o.ShowDiagonals,
			ShowMedians:        o.ShowMedians,
			ShowHeights:        o.ShowHeights,
			ShowAngleBisectors: o.ShowAngleBisectors,
			ShowMidlines:       o.ShowMidlines,
			ShowIncircle:       o.ShowIncircle,
			ShowCircumcircle:   o.ShowCircumcircle,
			Source:             o.Source,
		}
		for _, v := range o.Vertices {
			rec.VertexIDs = append(rec.VertexIDs, v.ID().String())
		}
		return rec, true
	}
	return ObjectRecord{}, false
}

func encodePoint(p *geometry.Point, index int) ObjectRecord {
	return ObjectRecord{
		Type:      TypePoint,
		Index:     index,
		Name:      p.Name,
		Visible:   p.Visible,
		Draggable: p.Draggable,
		X:         ptr(p.X),
		Y:         ptr(p.Y),
		Radius:    ptr(p.Radius),
		Fixed:     ptr(p.Fixed),
		Color:     encodeColor(p.Color),
	}
}

// encodeConstraint serializes one constraint as a descriptive record
// carrying enough to rebuild the variant on load.
func encodeConstraint(c constraint.Constraint, active bool) ConstraintRecord {
	rec := ConstraintRecord{
		Active:      active,
		Description: c.Describe(),
	}
	if t := c.Target(); t != nil {
		rec.TargetID = t.ID().String()
	}

	switch k := c.(type) {
	case *constraint.Midpoint:
		rec.Type = ConstraintMidpoint
		if k.Line() != nil {
			rec.LineID = k.Line().ID().String()
		}
	case *constraint.RatioPoint:
		rec.Type = ConstraintRatioPoint
		rec.Ratio = ptr(k.Ratio())
		if k.Line() != nil {
			rec.LineID = k.Line().ID().String()
		}
	case *constraint.PerpendicularFoot:
		rec.Type = ConstraintPerpendicularFoot
		if k.Source() != nil {
			rec.SourceID = k.Source().ID().String()
		}
		if k.Line() != nil {
			rec.LineID = k.Line().ID().String()
		}
	case *constraint.CircleCenter:
		rec.Type = ConstraintCircleCenter
		a, b, cc := k.Points()
		for _, p := range []*geometry.Point{a, b, cc} {
			if p != nil {
				rec.PointIDs = append(rec.PointIDs, p.ID().String())
			}
		}
	default:
		rec.Type = "unknown"
	}
	return rec
}

func ptr[T any](v T) *T { return &v }
