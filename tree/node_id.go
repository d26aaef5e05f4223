package tree

// NodeId is an opaque, stable handle into a Tree's node storage. It is a
// generational (slot-map) index: index pairs with a generation counter so
// that a handle to a removed node is detected as invalid rather than
// silently aliasing whatever new node later reuses the same slot. NodeId
// values are cheap to copy and compare (spec §3 "Node handle").
type NodeId struct {
	index uint32
	gen   uint32
}

// nilNodeId is the zero NodeId, never issued by a Tree and used
// internally to mean "no parent".
var nilNodeId = NodeId{}

// IsNil reports whether id is the zero value (never a live handle).
func (id NodeId) IsNil() bool { return id == nilNodeId }
