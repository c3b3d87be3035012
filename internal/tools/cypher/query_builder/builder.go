// Package query_builder assembles schema-aware Cypher fragments so tools can
// build queries from discovered labels and relationship types instead of
// hardcoding them.
package query_builder

import (
	"fmt"
	"strings"
)

// OptionalMatchBuilder constructs OPTIONAL MATCH clauses dynamically.
type OptionalMatchBuilder struct {
	clauses    []string
	varCounter int
}

// NewOptionalMatchBuilder creates a new builder instance.
func NewOptionalMatchBuilder() *OptionalMatchBuilder {
	return &OptionalMatchBuilder{
		clauses: make([]string, 0),
	}
}

// AddAttributeMatch adds an OPTIONAL MATCH clause for an attribute
// relationship and returns the generated variable name for use in RETURN
// clauses.
//
// Example:
//
//	varName := builder.AddAttributeMatch("e", AttributeMapping{
//	    RelationshipType: "HAS_EMAIL",
//	    TargetLabel: "Email",
//	})
//	// Generates: OPTIONAL MATCH (e)-[:HAS_EMAIL]->(attr0:Email)
//	// Returns: "attr0"
func (b *OptionalMatchBuilder) AddAttributeMatch(sourceVar string, mapping AttributeMapping) string {
	varName := fmt.Sprintf("attr%d", b.varCounter)
	b.varCounter++

	clause := fmt.Sprintf("OPTIONAL MATCH (%s)-[:%s]->(%s:%s)",
		sourceVar,
		mapping.RelationshipType,
		varName,
		mapping.TargetLabel)

	b.clauses = append(b.clauses, clause)
	return varName
}

// AddCustomMatch adds a custom OPTIONAL MATCH clause for patterns not
// covered by the helper methods.
func (b *OptionalMatchBuilder) AddCustomMatch(clause string) {
	b.clauses = append(b.clauses, "OPTIONAL MATCH "+clause)
}

// Build returns all OPTIONAL MATCH clauses as a single string.
func (b *OptionalMatchBuilder) Build() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return strings.Join(b.clauses, "\n")
}

// GetClauseCount returns the number of OPTIONAL MATCH clauses added.
func (b *OptionalMatchBuilder) GetClauseCount() int {
	return len(b.clauses)
}

// CollectionBuilder constructs collect(DISTINCT {...}) expressions for
// RETURN clauses.
type CollectionBuilder struct {
	items []string
}

// NewCollectionBuilder creates a new collection builder.
func NewCollectionBuilder() *CollectionBuilder {
	return &CollectionBuilder{
		items: make([]string, 0),
	}
}

// AddProperty adds a single property to the collection map.
//
//	builder.AddProperty("email", "e", "address")
//	// Generates: email: e.address
func (c *CollectionBuilder) AddProperty(propName string, sourceVar string, sourceProp string) {
	c.items = append(c.items, fmt.Sprintf("%s: %s.%s", propName, sourceVar, sourceProp))
}

// AddAllProperties adds all properties from a node using the properties()
// function.
func (c *CollectionBuilder) AddAllProperties(key string, sourceVar string) {
	c.items = append(c.items, fmt.Sprintf("%s: properties(%s)", key, sourceVar))
}

// Build returns the collection as a map expression, e.g.
// {email: e.address, verified: e.verified}.
func (c *CollectionBuilder) Build() string {
	if len(c.items) == 0 {
		return "{}"
	}
	return "{" + strings.Join(c.items, ", ") + "}"
}

// BuildDistinctCollection wraps the map in collect(DISTINCT {...}).
func (c *CollectionBuilder) BuildDistinctCollection() string {
	return "collect(DISTINCT " + c.Build() + ")"
}
