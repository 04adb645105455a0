package snapshot

import (
	"errors"
	"io/fs"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/canvas"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/constraint"
	boarderrors "github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/errors"
	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// Load reads the snapshot at path and restores it into c. The canvas is
// left untouched unless the file parses; per-record problems degrade to
// skipped records, not failures.
func (s *Serializer) Load(c *canvas.Canvas, path string) error {
	snap, err := ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return boarderrors.Wrap(boarderrors.ErrCodeFileNotFound, err, "snapshot %s", path)
		}
		return boarderrors.Wrap(boarderrors.ErrCodeInvalidSnapshot, err, "snapshot %s", path)
	}
	return s.Restore(snap, c)
}

// Restore reconstructs the snapshot's object graph into c, replacing its
// contents. Leaf objects are built first, then relational objects are
// resolved against them; records with unresolvable references are
// skipped. Constraint records are replayed afterwards so derived points
// come back derived.
func (s *Serializer) Restore(snap *Snapshot, c *canvas.Canvas) error {
	if snap == nil {
		return boarderrors.New(boarderrors.ErrCodeInvalidSnapshot, "nil snapshot")
	}
	if snap.Version != FormatVersion {
		s.warn("snapshot version mismatch", "got", snap.Version, "want", FormatVersion)
	}

	r := &restorer{
		s:         s,
		snap:      snap,
		slots:     make([]geometry.Object, len(snap.Objects)),
		pointAt:   make(map[int]*geometry.Point),
		lineAt:    make(map[int]*geometry.Line),
		polygonAt: make(map[int]*geometry.Polygon),
	}

	r.buildLeaves(c.Manager)
	r.buildRelational()
	objects := r.compact()
	active := r.activePolygons()

	// Everything parsed and resolved; now it is safe to swap state in.
	c.Replace(objects, active,
		snap.Canvas.Width, snap.Canvas.Height,
		snap.Canvas.Offset.X, snap.Canvas.Offset.Y)

	r.rebuildConstraints(c.Manager)
	return nil
}

// restorer carries the per-load resolution state.
type restorer struct {
	s    *Serializer
	snap *Snapshot

	slots     []geometry.Object
	pointAt   map[int]*geometry.Point
	lineAt    map[int]*geometry.Line
	polygonAt map[int]*geometry.Polygon
}

func (r *restorer) slotOK(rec ObjectRecord) bool {
	return rec.Index >= 0 && rec.Index < len(r.slots)
}

// resolvePoint translates a transient identity reference to the restored
// point at its stable index.
func (r *restorer) resolvePoint(ref string) *geometry.Point {
	if ref == "" {
		return nil
	}
	idx, ok := r.snap.IdentityMap[ref]
	if !ok {
		return nil
	}
	return r.pointAt[idx]
}

func (r *restorer) resolveLine(ref string) *geometry.Line {
	if ref == "" {
		return nil
	}
	idx, ok := r.snap.IdentityMap[ref]
	if !ok {
		return nil
	}
	return r.lineAt[idx]
}

// buildLeaves is pass 1: instantiate points and constrained points at
// their saved indices.
func (r *restorer) buildLeaves(mgr *constraint.Manager) {
	for _, rec := range r.snap.Objects {
		if rec.Type != TypePoint && rec.Type != TypeConstrainedPoint {
			continue
		}
		if !r.slotOK(rec) {
			r.s.warn("point record with bad index", "index", rec.Index)
			continue
		}

		x, y := deref(rec.X), deref(rec.Y)
		var pt *geometry.Point
		var obj geometry.Object

		if rec.Type == TypeConstrainedPoint {
			cp := constraint.NewPoint(x, y, rec.Name)
			cp.Bind(mgr)
			pt = cp.Pos()
			obj = cp
		} else {
			p := geometry.NewPoint(x, y, rec.Name)
			pt = p
			obj = p
		}

		if rec.Radius != nil {
			pt.Radius = *rec.Radius
		}
		if rec.Fixed != nil {
			pt.Fixed = *rec.Fixed
		}
		pt.Visible = rec.Visible
		pt.Draggable = rec.Draggable
		pt.Color = decodeColor(rec.Color, geometry.ColorPointBlue)

		r.slots[rec.Index] = obj
		r.pointAt[rec.Index] = pt
	}
}

// buildRelational is pass 2: lines, angles, and polygons, resolved
// against the pass-1 points. Unresolvable records are skipped.
func (r *restorer) buildRelational() {
	for _, rec := range r.snap.Objects {
		if !r.slotOK(rec) {
			continue
		}
		switch rec.Type {
		case TypeLine:
			p1 := r.resolvePoint(rec.P1ID)
			p2 := r.resolvePoint(rec.P2ID)
			if p1 == nil || p2 == nil {
				r.s.warn("line references missing point, skipping", "name", rec.Name)
				continue
			}
			l := geometry.NewLine(p1, p2, rec.Name)
			if rec.Width != nil {
				l.Width = *rec.Width
			}
			l.Color = decodeColor(rec.Color, geometry.ColorLineBlack)
			if rec.FixedLength != nil && *rec.FixedLength {
				l.FixedLength = true
				if rec.OriginalLength != nil {
					l.OriginalLength = *rec.OriginalLength
				} else {
					l.OriginalLength = l.Length()
				}
			}
			r.slots[rec.Index] = l
			r.lineAt[rec.Index] = l

		case TypeAngle:
			p1 := r.resolvePoint(rec.P1ID)
			vertex := r.resolvePoint(rec.VertexID)
			p2 := r.resolvePoint(rec.P2ID)
			if p1 == nil || vertex == nil || p2 == nil {
				r.s.warn("angle references missing point, skipping", "name", rec.Name)
				continue
			}
			a := geometry.NewAngle(p1, vertex, p2, rec.Name)
			a.Color = decodeColor(rec.Color, geometry.ColorAngleRed)
			if rec.Fixed != nil {
				a.Fixed = *rec.Fixed
			}
			a.TargetAngle = rec.TargetAngle
			r.slots[rec.Index] = a

		case TypePolygon:
			vertices := make([]*geometry.Point, 0, len(rec.VertexIDs))
			for _, ref := range rec.VertexIDs {
				v := r.resolvePoint(ref)
				if v == nil {
					vertices = nil
					break
				}
				vertices = append(vertices, v)
			}
			if len(vertices) < 3 {
				r.s.warn("polygon references missing vertex, skipping", "name", rec.Name)
				continue
			}
			source := rec.Source
			if source == "" {
				source = geometry.SourceAuto
			}
			p := geometry.NewPolygon(vertices, source)
			p.Name = rec.Name
			p.FillColor = decodeColor(rec.FillColor, geometry.ColorPolygonFill)
			p.ShowFill = rec.ShowFill
			p.ShowDiagonals = rec.ShowDiagonals
			p.ShowMedians = rec.ShowMedians
			p.ShowHeights = rec.ShowHeights
			p.ShowAngleBisectors = rec.ShowAngleBisectors
			p.ShowMidlines = rec.ShowMidlines
			p.ShowIncircle = rec.ShowIncircle
			p.ShowCircumcircle = rec.ShowCircumcircle
			r.slots[rec.Index] = p
			r.polygonAt[rec.Index] = p
		}
	}
}

// compact drops still-empty placeholder slots, preserving index order.
func (r *restorer) compact() []geometry.Object {
	objects := make([]geometry.Object, 0, len(r.slots))
	for _, obj := range r.slots {
		if obj != nil {
			objects = append(objects, obj)
		}
	}
	return objects
}

// activePolygons re-derives polygon metadata: detection runs over the
// restored points and lines, saved polygon records are matched to
// detected figures by vertex-identity-set equality, and only matched
// polygons come back active. The reconstructed polygon keeps its saved
// display flags.
func (r *restorer) activePolygons() []*geometry.Polygon {
	var points []*geometry.Point
	for _, p := range r.pointAt {
		points = append(points, p)
	}
	var lines []*geometry.Line
	for _, l := range r.lineAt {
		lines = append(lines, l)
	}
	detected := geometry.DetectPolygons(points, lines)

	var active []*geometry.Polygon
	for _, idx := range r.snap.ActivePolygons {
		poly, ok := r.polygonAt[idx]
		if !ok {
			continue
		}
		matched := false
		for _, d := range detected {
			if poly.SameVertices(d) {
				matched = true
				break
			}
		}
		if matched {
			active = append(active, poly)
		} else {
			r.s.warn("saved polygon no longer forms a closed figure", "name", poly.Name)
		}
	}
	return active
}

// rebuildConstraints replays constraint records against the restored
// objects. Records whose referents did not survive the load are skipped;
// records saved inactive come back inactive.
func (r *restorer) rebuildConstraints(mgr *constraint.Manager) {
	mgr.Clear()
	for _, rec := range r.snap.Constraints {
		target := r.resolvePoint(rec.TargetID)
		if target == nil {
			r.s.warn("constraint target missing, skipping", "type", rec.Type)
			continue
		}

		var k constraint.Constraint
		switch rec.Type {
		case ConstraintMidpoint:
			line := r.resolveLine(rec.LineID)
			if line == nil {
				r.s.warn("midpoint constraint line missing, skipping")
				continue
			}
			k = constraint.NewMidpoint(target, line)

		case ConstraintRatioPoint:
			line := r.resolveLine(rec.LineID)
			if line == nil || rec.Ratio == nil {
				r.s.warn("ratio constraint incomplete, skipping")
				continue
			}
			k = constraint.NewRatioPoint(target, line, *rec.Ratio)

		case ConstraintPerpendicularFoot:
			source := r.resolvePoint(rec.SourceID)
			line := r.resolveLine(rec.LineID)
			if source == nil || line == nil {
				r.s.warn("perpendicular foot constraint incomplete, skipping")
				continue
			}
			k = constraint.NewPerpendicularFoot(target, source, line)

		case ConstraintCircleCenter:
			if len(rec.PointIDs) != 3 {
				r.s.warn("circle center constraint incomplete, skipping")
				continue
			}
			a := r.resolvePoint(rec.PointIDs[0])
			b := r.resolvePoint(rec.PointIDs[1])
			cc := r.resolvePoint(rec.PointIDs[2])
			if a == nil || b == nil || cc == nil {
				r.s.warn("circle center constraint point missing, skipping")
				continue
			}
			k = constraint.NewCircleCenter(target, a, b, cc)

		default:
			r.s.warn("unknown constraint type, skipping", "type", rec.Type)
			continue
		}

		// Add evaluates once. An inactive constraint must leave its
		// target at the saved position, so pin it back afterwards.
		savedX, savedY := target.X, target.Y
		if err := mgr.Add(k); err != nil {
			r.s.warn("constraint not restored", "type", rec.Type, "err", err)
			continue
		}
		if !rec.Active {
			mgr.Deactivate(k)
			target.X = savedX
			target.Y = savedY
		}
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
