package dynamic

// ToolConfig represents the YAML configuration for a dynamic guidance tool
type ToolConfig struct {
	// Name is the unique tool identifier (e.g., "find-hub-nodes")
	Name string `yaml:"name"`

	// Description provides the operational description of the tool
	Description string `yaml:"description"`

	// Intent provides semantic understanding for agents - WHEN to use this tool
	Intent string `yaml:"intent,omitempty"`

	// ExpectedPatterns describes the graph patterns this tool helps surface
	ExpectedPatterns []PatternConfig `yaml:"expected_patterns,omitempty"`

	// ReferenceCypher provides a canonical query implementation as guidance for the LLM
	ReferenceCypher string `yaml:"reference_cypher,omitempty"`

	// Parameters defines typed input parameters for the reference query
	Parameters []ParameterConfig `yaml:"parameters,omitempty"`

	// Category is derived from the folder structure (e.g., "analysis").
	// Internal field, not from YAML.
	Category string `yaml:"-"`
}

// PatternConfig describes one pattern the tool is about
type PatternConfig struct {
	// Entity is the node or relationship kind being analyzed
	Entity string `yaml:"entity"`

	// Signal describes what makes this pattern interesting
	Signal string `yaml:"signal"`
}

// ParameterConfig defines a typed input parameter
type ParameterConfig struct {
	// Name is the parameter identifier
	Name string `yaml:"name"`

	// Type is the JSON Schema type (string, integer, number, boolean, array, object)
	Type string `yaml:"type"`

	// Description explains the parameter's purpose
	Description string `yaml:"description,omitempty"`

	// Default value (type depends on Type field)
	Default interface{} `yaml:"default,omitempty"`
}
