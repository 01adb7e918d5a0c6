package kdtree

import "golang.org/x/sync/errgroup"

// NearestNeighborBatch runs NearestNeighbor for every query using up to
// workers goroutines; workers <= 1 runs sequentially. Results line up
// index-for-index with queries, and each per-query failure lands in its own
// result rather than aborting the batch.
//
// The batch is read-only and must not overlap any mutation. Per-query
// statistics and observer events fire as usual, from worker goroutines.
func (t *Tree) NearestNeighborBatch(queries []Point, opts NearestNeighborOptions, workers int) []NearestResult {
	results := make([]NearestResult, len(queries))

	if workers <= 1 || len(queries) <= 1 {
		for i, q := range queries {
			results[i] = t.NearestNeighbor(q, opts)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = t.NearestNeighbor(q, opts)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return results
}
