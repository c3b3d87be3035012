// Package graph implements a client for the FalkorDB compact result protocol.
//
// A compact response is a nested array in which every cell is tagged with a
// small integer describing its kind. Node and relationship cells reference
// labels, property keys and relationship types by catalog index rather than by
// name; the client resolves those indices through auxiliary procedure calls
// before decoding rows. See QueryResult for the decoding entry point.
package graph

// ValueType identifies the wire-level kind of a compact result cell.
type ValueType int

const (
	TypeUnknown ValueType = 0
	TypeNull    ValueType = 1
	TypeString  ValueType = 2
	TypeInteger ValueType = 3
	TypeBoolean ValueType = 4
	TypeDouble  ValueType = 5
	TypeArray   ValueType = 6
	TypeEdge    ValueType = 7
	TypeNode    ValueType = 8
	TypePath    ValueType = 9
	TypeMap     ValueType = 10
	TypePoint   ValueType = 11
)

// String returns the protocol name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeDouble:
		return "double"
	case TypeArray:
		return "array"
	case TypeEdge:
		return "edge"
	case TypeNode:
		return "node"
	case TypePath:
		return "path"
	case TypeMap:
		return "map"
	case TypePoint:
		return "point"
	default:
		return "unknown"
	}
}

// Node is a decoded graph vertex. IDs are assigned by the database and are
// stable only within a single database instance. Alias is the query-binding
// name of the column the node was returned under; it is empty for nodes
// nested inside arrays.
type Node struct {
	ID         int64                  `json:"id"`
	Alias      string                 `json:"alias,omitempty"`
	Labels     []string               `json:"labels"`
	Properties map[string]interface{} `json:"properties"`
}

// Edge is a decoded relationship. The protocol returns endpoint node ids, not
// embedded nodes, so SourceID and DestinationID are left unresolved.
type Edge struct {
	ID            int64                  `json:"id"`
	Alias         string                 `json:"alias,omitempty"`
	Type          string                 `json:"type"`
	SourceID      int64                  `json:"sourceId"`
	DestinationID int64                  `json:"destinationId"`
	Properties    map[string]interface{} `json:"properties"`
}

// UnsupportedValue is the sentinel returned for value kinds the client does
// not decode. Kind distinguishes a path from a map from a point, and is
// TypeUnknown for tags the client has never seen. Receiving one means the
// query succeeded but the cell's kind is not representable here.
type UnsupportedValue struct {
	Kind ValueType `json:"kind"`
}

func (u UnsupportedValue) String() string {
	return "<unsupported:" + u.Kind.String() + ">"
}
