package kdtree

import (
	"container/heap"
	"fmt"
	"math"
	"time"
)

// NearestNeighborOptions controls NearestNeighbor queries.
type NearestNeighborOptions struct {
	// Metric is the distance function. Default: EuclideanMetric.
	// See DistanceMetric for the lower-bound property tree pruning relies on.
	Metric DistanceMetric

	// MaxDistance caps acceptable results. Must be >= 0; 0 means no cap.
	// When no point lies within the cap, the query fails with a
	// NotFoundError and a nil result point.
	MaxDistance float64

	// ExcludeQuery skips stored points equal to the query under the
	// configured tolerance, so a tree containing the query point itself
	// returns its nearest other neighbor.
	ExcludeQuery bool
}

// KNNOptions controls KNearestNeighbors queries.
type KNNOptions struct {
	// K is the number of neighbors requested. Must be >= 1. The result
	// holds min(K, size) entries.
	K int

	// Metric and ExcludeQuery behave as in NearestNeighborOptions.
	// MaxDistance (>= 0, 0 means no cap) filters candidates, and unlike
	// NearestNeighbor a cap that excludes every point is not an error:
	// the query succeeds with an empty Neighbors slice.
	Metric       DistanceMetric
	MaxDistance  float64
	ExcludeQuery bool
}

// NearestNeighbor returns the stored point closest to q. The traversal
// descends into the subtree on the query's side of each splitting hyperplane
// first, then visits the far subtree only when the query's perpendicular
// distance to the hyperplane beats the best distance found so far. All
// comparisons happen in the metric's reduced space; the true distance is
// computed once for the materialized result.
func (t *Tree) NearestNeighbor(q Point, opts NearestNeighborOptions) (res NearestResult) {
	start := time.Now()
	defer func() {
		t.complete(OpNearest, start, &res.OpReport, recover())
		t.notify(OpNearest, res)
	}()

	if err := validatePoint(q, t.dims); err != nil {
		res.Err = err
		return res
	}
	if opts.MaxDistance < 0 {
		res.Err = &ValidationError{Reason: fmt.Sprintf("MaxDistance must be >= 0, got %v", opts.MaxDistance)}
		return res
	}
	if t.root == nil {
		res.Err = &EmptyTreeError{}
		return res
	}
	metric := opts.Metric
	if metric == nil {
		metric = EuclideanMetric{}
	}
	capRd := math.Inf(1)
	if opts.MaxDistance > 0 {
		capRd = metric.DistToReduced(opts.MaxDistance)
	}

	// best.Distance holds the reduced distance during the traversal.
	best := Neighbor{Distance: math.Inf(1)}
	t.nnSearch(t.root, q, metric, capRd, opts.ExcludeQuery, &best, &res.NodesVisited)

	if best.Point == nil {
		res.Err = &NotFoundError{Point: q.Clone()}
		return res
	}
	res.Point = best.Point.Clone()
	res.Distance = metric.ReducedToDist(best.Distance)
	res.Success = true
	return res
}

func (t *Tree) nnSearch(n *node, q Point, metric DistanceMetric, capRd float64, exclude bool, best *Neighbor, visited *int) {
	if n == nil {
		return
	}
	*visited++

	if !(exclude && t.equal(n.point, q)) {
		rd := metric.ReducedDistance(q, n.point)
		if rd < best.Distance && rd <= capRd {
			best.Point = n.point
			best.Distance = rd
		}
	}

	sd := n.splitDim
	near, far := n.left, n.right
	if q[sd] >= n.point[sd] {
		near, far = n.right, n.left
	}
	t.nnSearch(near, q, metric, capRd, exclude, best, visited)

	// The far subtree can hold a better point only if the query's
	// perpendicular distance to the splitting hyperplane, in reduced space,
	// is below the current best and within the cap.
	planeRd := metric.DistToReduced(math.Abs(q[sd] - n.point[sd]))
	if planeRd < best.Distance && planeRd <= capRd {
		t.nnSearch(far, q, metric, capRd, exclude, best, visited)
	}
}

// KNearestNeighbors returns up to K stored points closest to q, sorted
// ascending by distance. The traversal is the same as NearestNeighbor, with
// far-subtree pruning against the k-th best reduced distance (or infinity
// while fewer than K candidates have been found). Heap distances stay
// reduced until the results are materialized.
func (t *Tree) KNearestNeighbors(q Point, opts KNNOptions) (res KNNResult) {
	start := time.Now()
	defer func() {
		t.complete(OpKNN, start, &res.OpReport, recover())
		t.notify(OpKNN, res)
	}()

	if err := validatePoint(q, t.dims); err != nil {
		res.Err = err
		return res
	}
	if opts.K < 1 {
		res.Err = &ValidationError{Reason: fmt.Sprintf("K must be >= 1, got %d", opts.K)}
		return res
	}
	if opts.MaxDistance < 0 {
		res.Err = &ValidationError{Reason: fmt.Sprintf("MaxDistance must be >= 0, got %v", opts.MaxDistance)}
		return res
	}
	if t.root == nil {
		res.Err = &EmptyTreeError{}
		return res
	}
	metric := opts.Metric
	if metric == nil {
		metric = EuclideanMetric{}
	}
	capRd := math.Inf(1)
	if opts.MaxDistance > 0 {
		capRd = metric.DistToReduced(opts.MaxDistance)
	}

	h := make(knnHeap, 0, opts.K)
	t.knnSearch(t.root, q, metric, opts.K, capRd, opts.ExcludeQuery, &h, &res.NodesVisited)

	// Drain the max-heap back to front for ascending order, converting out
	// of reduced space.
	res.Neighbors = make([]Neighbor, h.Len())
	for i := len(res.Neighbors) - 1; i >= 0; i-- {
		item := heap.Pop(&h).(knnItem)
		res.Neighbors[i] = Neighbor{Point: item.point.Clone(), Distance: metric.ReducedToDist(item.dist)}
	}
	res.Success = true
	return res
}

func (t *Tree) knnSearch(n *node, q Point, metric DistanceMetric, k int, capRd float64, exclude bool, h *knnHeap, visited *int) {
	if n == nil {
		return
	}
	*visited++

	if !(exclude && t.equal(n.point, q)) {
		rd := metric.ReducedDistance(q, n.point)
		if rd <= capRd {
			if h.Len() < k {
				heap.Push(h, knnItem{point: n.point, dist: rd})
			} else if rd < (*h)[0].dist {
				(*h)[0] = knnItem{point: n.point, dist: rd}
				heap.Fix(h, 0)
			}
		}
	}

	sd := n.splitDim
	near, far := n.left, n.right
	if q[sd] >= n.point[sd] {
		near, far = n.right, n.left
	}
	t.knnSearch(near, q, metric, k, capRd, exclude, h, visited)

	kth := math.Inf(1)
	if h.Len() == k {
		kth = (*h)[0].dist
	}
	planeRd := metric.DistToReduced(math.Abs(q[sd] - n.point[sd]))
	if planeRd < kth && planeRd <= capRd {
		t.knnSearch(far, q, metric, k, capRd, exclude, h, visited)
	}
}

// --- max-heap for KNN queries ---

type knnItem struct {
	point Point
	dist  float64
}

// knnHeap is a max-heap of knnItem (largest distance on top) used as a
// bounded priority queue for KNN queries. Distances are stored in the
// metric's reduced space.
type knnHeap []knnItem

func (h knnHeap) Len() int           { return len(h) }
func (h knnHeap) Less(i, j int) bool { return h[i].dist > h[j].dist } // max-heap
func (h knnHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *knnHeap) Push(x any)        { *h = append(*h, x.(knnItem)) }
func (h *knnHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
