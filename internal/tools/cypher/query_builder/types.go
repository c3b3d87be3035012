package query_builder

// AttributeMapping describes one node-to-node traversal used to pull a
// related attribute into a profile. All names come from the live schema;
// nothing here assumes a particular graph model.
type AttributeMapping struct {
	// RelationshipType is the relationship type name from the schema (e.g., "HAS_EMAIL", "OWNS")
	RelationshipType string `json:"relationshipType"`

	// TargetLabel is the node label of the connected entity (e.g., "Email", "Account")
	TargetLabel string `json:"targetLabel"`

	// IdentifierProperty is the property holding the key identifier of the
	// target node. Empty means all properties are returned.
	IdentifierProperty string `json:"identifierProperty,omitempty"`

	// Category is a logical grouping used to organize the output.
	Category string `json:"category,omitempty"`

	// IncludeProperties restricts which target-node properties are
	// retrieved. Empty means all of them, via the properties() function.
	IncludeProperties []string `json:"includeProperties,omitempty"`
}
