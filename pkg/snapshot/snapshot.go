package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/StellerSurgeCode/ZMathBoardF-V1.1-sub001/pkg/geometry"
)

// FormatVersion is the snapshot format version written by this package.
// Loading checks it and warns on mismatch but does not refuse the file.
const FormatVersion = "1.0"

// Object type tags.
const (
	TypePoint            = "point"
	TypeConstrainedPoint = "constrained_point"
	TypeLine             = "line"
	TypeAngle            = "angle"
	TypePolygon          = "polygon"
)

// Constraint type tags.
const (
	ConstraintMidpoint          = "midpoint"
	ConstraintRatioPoint        = "ratio_point"
	ConstraintPerpendicularFoot = "perpendicular_foot"
	ConstraintCircleCenter      = "circle_center"
)

// Snapshot is the top-level persisted structure.
type Snapshot struct {
	Version        string             `json:"version"`
	Timestamp      time.Time          `json:"timestamp"`
	Canvas         CanvasInfo         `json:"canvas_info"`
	Objects        []ObjectRecord     `json:"objects"`
	Constraints    []ConstraintRecord `json:"constraints"`
	ActivePolygons []int              `json:"active_polygons"`
	IdentityMap    map[string]int     `json:"id_mapping"`
}

// CanvasInfo carries the canvas-level scalars preserved by a snapshot.
type CanvasInfo struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Offset Offset  `json:"canvas_offset"`
}

// Offset is the canvas view offset.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ObjectRecord is one serialized canvas object. Which fields are present
// depends on Type; relational fields hold the transient identities of the
// referenced objects, resolvable through the snapshot's id_mapping.
type ObjectRecord struct {
	Type      string `json:"type"`
	Index     int    `json:"object_index"`
	Name      string `json:"name"`
	Visible   bool   `json:"visible"`
	Draggable bool   `json:"draggable"`

	// Point / constrained point
	X      *float64     `json:"x,omitempty"`
	Y      *float64     `json:"y,omitempty"`
	Radius *float64     `json:"radius,omitempty"`
	Fixed  *bool        `json:"fixed,omitempty"`
	Color  *ColorRecord `json:"color,omitempty"`

	// Line
	P1ID           string   `json:"p1_id,omitempty"`
	P2ID           string   `json:"p2_id,omitempty"`
	Width          *float64 `json:"width,omitempty"`
	FixedLength    *bool    `json:"fixed_length,omitempty"`
	OriginalLength *float64 `json:"original_length,omitempty"`

	// Angle (rays vertex→p1 and vertex→p2)
	VertexID    string   `json:"vertex_id,omitempty"`
	TargetAngle *float64 `json:"target_angle,omitempty"`

	// Polygon
	VertexIDs          []string     `json:"vertex_ids,omitempty"`
	FillColor          *ColorRecord `json:"fill_color,omitempty"`
	ShowFill           bool         `json:"show_fill,omitempty"`
	ShowDiagonals      bool         `json:"show_diagonals,omitempty"`
	ShowMedians        bool         `json:"show_medians,omitempty"`
	ShowHeights        bool         `json:"show_heights,omitempty"`
	ShowAngleBisectors bool         `json:"show_angle_bisectors,omitempty"`
	ShowMidlines       bool         `json:"show_midlines,omitempty"`
	ShowIncircle       bool         `json:"show_incircle,omitempty"`
	ShowCircumcircle   bool         `json:"show_circumcircle,omitempty"`
	Source             string       `json:"source,omitempty"`
}

// ConstraintRecord is one serialized constraint. References use transient
// identities like object records do. Records carry everything needed to
// rebuild the constraint variant on load.
type ConstraintRecord struct {
	Type        string   `json:"type"`
	Active      bool     `json:"active"`
	TargetID    string   `json:"constrained_object_id"`
	LineID      string   `json:"line_id,omitempty"`
	SourceID    string   `json:"source_id,omitempty"`
	PointIDs    []string `json:"point_ids,omitempty"`
	Ratio       *float64 `json:"ratio,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ColorRecord is the tagged encoding of a composite color value: channel
// components instead of an opaque blob, portable across implementations.
type ColorRecord struct {
	Type  string `json:"type"`
	Red   uint8  `json:"red"`
	Green uint8  `json:"green"`
	Blue  uint8  `json:"blue"`
	Alpha uint8  `json:"alpha"`
}

// encodeColor converts a color to its tagged record.
func encodeColor(c geometry.Color) *ColorRecord {
	return &ColorRecord{Type: "color", Red: c.R, Green: c.G, Blue: c.B, Alpha: c.A}
}

// decodeColor converts a tagged record back, falling back to fallback for
// absent records.
func decodeColor(r *ColorRecord, fallback geometry.Color) geometry.Color {
	if r == nil {
		return fallback
	}
	return geometry.Color{R: r.Red, G: r.Green, B: r.Blue, A: r.Alpha}
}

// =============================================================================
// Encoding / decoding primitives
// =============================================================================

// Marshal converts a snapshot to indented JSON bytes.
func Marshal(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(snap, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a snapshot from JSON bytes.
func Unmarshal(data []byte) (*Snapshot, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a snapshot as JSON to w.
func Write(snap *Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a snapshot from r. Read does not validate object
// references; resolution happens during restore, where bad references
// degrade to skipped records instead of errors.
func Read(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &snap, nil
}

// WriteFile writes a snapshot to path. The write goes through a sibling
// temp file renamed over the target, so a crash mid-write never leaves a
// truncated snapshot behind.
func WriteFile(snap *Snapshot, path string) error {
	data, err := Marshal(snap)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and decodes the snapshot at path.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
