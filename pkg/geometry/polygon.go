package geometry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Polygon source tags. Detected polygons carry SourceAuto; polygons the
// user assembled by hand carry SourceUser.
const (
	SourceAuto = "auto"
	SourceUser = "user"
)

// Polygon is a closed figure derived from points and lines on the canvas.
// It refers to its ordered vertex list but owns nothing.
//
// The Show* flags are display metadata carried through snapshots: after a
// load the polygon itself is re-derived from the restored points and
// lines, and the flags are copied onto the re-detected instance.
type Polygon struct {
	id uuid.UUID

	Name     string
	Vertices []*Point

	FillColor Color
	ShowFill  bool

	ShowDiagonals      bool
	ShowMedians        bool
	ShowHeights        bool
	ShowAngleBisectors bool
	ShowMidlines       bool
	ShowIncircle       bool
	ShowCircumcircle   bool

	Source string
}

// NewPolygon creates a polygon over the given vertices. The name is
// derived from the vertex names when present.
func NewPolygon(vertices []*Point, source string) *Polygon {
	return &Polygon{
		id:        uuid.New(),
		Name:      polygonName(vertices),
		Vertices:  vertices,
		FillColor: ColorPolygonFill,
		ShowFill:  true,
		Source:    source,
	}
}

// ID returns the polygon's transient identity.
func (p *Polygon) ID() uuid.UUID { return p.id }

// VertexSet returns the set of vertex identities. Two polygons describe
// the same figure exactly when their vertex sets are equal; snapshot
// loading uses this to match saved display flags onto re-detected
// polygons.
func (p *Polygon) VertexSet() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(p.Vertices))
	for _, v := range p.Vertices {
		set[v.ID()] = struct{}{}
	}
	return set
}

// SameVertices reports whether q spans exactly the same vertices.
func (p *Polygon) SameVertices(q *Polygon) bool {
	if len(p.Vertices) != len(q.Vertices) {
		return false
	}
	set := p.VertexSet()
	for _, v := range q.Vertices {
		if _, ok := set[v.ID()]; !ok {
			return false
		}
	}
	return true
}

func polygonName(vertices []*Point) string {
	var b strings.Builder
	for _, v := range vertices {
		if v.Name == "" {
			return fmt.Sprintf("polygon-%d", len(vertices))
		}
		b.WriteString(v.Name)
	}
	return b.String()
}

// maxPolygonVertices bounds the cycle search; figures on the board are
// small and anything larger is noise.
const maxPolygonVertices = 8

// DetectPolygons finds every closed figure formed by the given lines over
// the given points. A figure is a cycle of at least three distinct points
// where each consecutive pair (including last back to first) is joined by
// a line. Each distinct vertex set is reported once, with vertices in
// traversal order, tagged SourceAuto.
func DetectPolygons(points []*Point, lines []*Line) []*Polygon {
	adj := make(map[uuid.UUID][]*Point)
	for _, l := range lines {
		if l.P1 == nil || l.P2 == nil {
			continue
		}
		adj[l.P1.ID()] = append(adj[l.P1.ID()], l.P2)
		adj[l.P2.ID()] = append(adj[l.P2.ID()], l.P1)
	}

	var (
		polygons []*Polygon
		seen     = map[string]bool{}
	)

	for _, start := range points {
		if len(adj[start.ID()]) < 2 {
			continue
		}
		walkCycles(start, start, []*Point{start}, adj, func(cycle []*Point) {
			key := cycleKey(cycle)
			if seen[key] {
				return
			}
			seen[key] = true
			polygons = append(polygons, NewPolygon(append([]*Point(nil), cycle...), SourceAuto))
		})
	}

	// Deterministic order regardless of traversal.
	sort.Slice(polygons, func(i, j int) bool {
		if len(polygons[i].Vertices) != len(polygons[j].Vertices) {
			return len(polygons[i].Vertices) < len(polygons[j].Vertices)
		}
		return cycleKey(polygons[i].Vertices) < cycleKey(polygons[j].Vertices)
	})
	return polygons
}

func walkCycles(start, current *Point, path []*Point, adj map[uuid.UUID][]*Point, emit func([]*Point)) {
	if len(path) > maxPolygonVertices {
		return
	}
	for _, next := range adj[current.ID()] {
		if next.ID() == start.ID() {
			if len(path) >= 3 {
				emit(path)
			}
			continue
		}
		if containsPoint(path, next) {
			continue
		}
		walkCycles(start, next, append(path, next), adj, emit)
	}
}

func containsPoint(path []*Point, p *Point) bool {
	for _, q := range path {
		if q.ID() == p.ID() {
			return true
		}
	}
	return false
}

func cycleKey(cycle []*Point) string {
	ids := make([]string, len(cycle))
	for i, p := range cycle {
		ids[i] = p.ID().String()
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
