// Package snapshot converts the live canvas object graph to a durable,
// versioned snapshot and reconstructs an equivalent graph from one.
//
// # Format
//
// A snapshot is UTF-8 JSON:
//
//	{
//	  "version": "1.0",
//	  "timestamp": "...",
//	  "canvas_info": {"width": ..., "height": ..., "canvas_offset": {...}},
//	  "objects": [...],
//	  "constraints": [...],
//	  "active_polygons": [...],
//	  "id_mapping": {"<uuid>": index}
//	}
//
// Objects are keyed two ways. Each object gets a stable sequence index
// (its position in the canvas collection at save time), and the
// id_mapping table translates every object's transient runtime identity
// to that index. Relational records (lines, angles, polygons,
// constraints) reference other objects by transient identity; a loader
// resolves those through the table, so the snapshot is portable across
// processes even though the identities themselves are not.
//
// Scalar attributes are emitted from an explicit allow-list per type,
// never a wildcard dump, and composite values such as colors are encoded
// as small tagged records so the format stays self-describing.
//
// # Loading
//
// Loading is two-pass: leaf records (points, constrained points) are
// instantiated first, then relational records are resolved against them.
// A record that references a missing object is skipped with a warning;
// one bad reference never aborts the load. Constraint records are
// replayed after reconstruction, so derived points stay derived across a
// round trip. The target canvas is only touched once the snapshot has
// fully parsed.
//
// # Stores
//
// [Store] abstracts where named snapshots live, with file, in-memory,
// and redis backends. The rolling autosave snapshot is just the store
// entry named [AutosaveName].
package snapshot
