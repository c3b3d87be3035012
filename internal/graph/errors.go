package graph

import (
	"errors"
	"fmt"
)

// ErrCatalogFetch marks a failure of one of the auxiliary catalog round
// trips (db.labels, db.propertyKeys, db.relationshipTypes). It wraps the
// transport error so callers can tell a broken catalog fetch apart from a
// query error while still reaching the root cause with errors.Is/As.
var ErrCatalogFetch = errors.New("catalog fetch failed")

// DecodeError reports a cell whose raw value does not match the shape its
// type tag declares.
type DecodeError struct {
	Kind ValueType
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s cell: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErrorf(kind ValueType, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
