package geometry

import "github.com/google/uuid"

// Object is implemented by every entity that can live in a canvas
// collection. The ID is a transient, process-local identity: stable for
// the lifetime of the object, meaningless across processes.
type Object interface {
	ID() uuid.UUID
}

// Color is an RGBA color with 8-bit channels. It is a plain value type so
// snapshots can encode it as a self-describing tagged record instead of
// an opaque blob.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Default colors matching the board's drawing conventions.
var (
	ColorPointBlue   = Color{0, 0, 255, 255}
	ColorLineBlack   = Color{0, 0, 0, 255}
	ColorAngleRed    = Color{255, 0, 0, 255}
	ColorPolygonFill = Color{230, 230, 255, 100}
)
