package kdtree

import "fmt"

// ValidationError reports a point or bounding box that failed validation:
// wrong coordinate count, a non-finite coordinate, or an insertion that
// would exceed the configured MaxDepth.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("kdtree: invalid input: %s", e.Reason)
}

// DuplicateError reports an insertion of a point already present in a tree
// configured with AllowDuplicates false.
type DuplicateError struct {
	Point Point
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("kdtree: duplicate point %v", e.Point)
}

// NotFoundError reports a remove or capped nearest-neighbor query whose
// target is absent from the tree.
type NotFoundError struct {
	Point Point
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("kdtree: point %v not found", e.Point)
}

// EmptyTreeError reports a query against a tree with no root.
type EmptyTreeError struct{}

func (e *EmptyTreeError) Error() string {
	return "kdtree: tree is empty"
}

// InternalError wraps a recovered panic from inside a public operation.
// Callers should never observe one under correct usage; it exists so that
// a programming fault surfaces as a structured failure instead of
// crossing the API as a panic.
type InternalError struct {
	Cause any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("kdtree: internal fault: %v", e.Cause)
}
