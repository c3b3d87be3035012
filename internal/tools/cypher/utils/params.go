// Package utils holds helpers shared by the cypher tools.
package utils

// Params carries user-supplied query parameters. They are bound into the
// query through the client's CYPHER parameter prefix, never interpolated
// into the query text by the tools themselves.
type Params map[string]interface{}
