// Package kdtree implements a k-dimensional binary space-partitioning tree
// for point storage and exact spatial queries.
//
// The tree supports insertion, exact membership search, nearest-neighbor and
// k-nearest-neighbor queries with hyperplane pruning, axis-aligned range
// queries, generalized Hibbard removal, and a median-split rebuild that
// restores logarithmic height after heavy mutation.
//
// Basic usage:
//
//	tree, err := kdtree.New(kdtree.DefaultConfig(2))
//	res := tree.Insert(kdtree.Point{1, 1})
//	// res.Success, res.Duration, res.NodesVisited
//	nn := tree.NearestNeighbor(kdtree.Point{1.1, 1.1}, kdtree.NearestNeighborOptions{})
//	// nn.Point, nn.Distance
//
// Every public operation validates its argument, performs a single traversal
// from the root, and returns a structured result carrying a success flag,
// execution time, and the number of nodes visited. Expected failures
// (invalid point, duplicate, not found, empty tree) are reported in the
// result's Err field, never as a panic crossing the API.
//
// # Concurrency
//
// The tree is a single-writer structure. Queries (Search, Contains,
// NearestNeighbor, KNearestNeighbors, RangeQuery) are read-only and may run
// concurrently with each other; mutation (Insert, InsertBatch, Remove,
// Clear, Rebuild) must be externally serialized and must not overlap any
// query. NearestNeighborBatch fans queries out across a bounded worker pool
// under these same rules.
package kdtree
