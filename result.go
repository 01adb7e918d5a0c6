package kdtree

import "time"

// OpReport records the bookkeeping common to every public operation:
// whether it succeeded, how long it took, how many nodes the traversal
// touched, and the error for an expected failure (validation, duplicate,
// not-found, empty tree). Expected failures never surface as panics.
type OpReport struct {
	Success      bool
	Err          error
	Duration     time.Duration
	NodesVisited int
}

// InsertResult is returned by Insert. Depth is the depth at which the new
// leaf was created (0 for the root).
type InsertResult struct {
	OpReport
	Depth int
}

// BatchError records one failed item of a batch insertion.
type BatchError struct {
	Index int
	Point Point
	Err   error
}

// BatchInsertResult is returned by InsertBatch. The batch is not atomic:
// items that fail are recorded in Errors and earlier successes remain.
type BatchInsertResult struct {
	OpReport
	Inserted int
	Errors   []BatchError
}

// SearchResult is returned by Search and Contains. On success Point is the
// stored copy of the matched point.
type SearchResult struct {
	OpReport
	Found bool
	Point Point
}

// Neighbor pairs a result point with its distance to the query.
type Neighbor struct {
	Point    Point
	Distance float64
}

// NearestResult is returned by NearestNeighbor. Point is nil when the tree
// is empty or no point lies within MaxDistance.
type NearestResult struct {
	OpReport
	Point    Point
	Distance float64
}

// KNNResult is returned by KNearestNeighbors. Neighbors is sorted ascending
// by distance and holds min(k, size) entries.
type KNNResult struct {
	OpReport
	Neighbors []Neighbor
}

// RangeResult is returned by RangeQuery.
type RangeResult struct {
	OpReport
	Points []Point
}

// RemoveResult is returned by Remove.
type RemoveResult struct {
	OpReport
}

// ClearResult is returned by Clear. Removed is the number of live points
// discarded.
type ClearResult struct {
	OpReport
	Removed int
}

// RebuildResult is returned by Rebuild.
type RebuildResult struct {
	OpReport
	OldHeight int
	NewHeight int
}
