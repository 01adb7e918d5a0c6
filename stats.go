package kdtree

import (
	"math"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Estimated per-node footprint for the memory metric: the point slice
// header, two child pointers, and the cached splitDim/depth ints, plus one
// float64 per coordinate.
const (
	nodeOverheadBytes = 56
	coordinateSize    = 8
)

// statistics accumulates monotonic operation counters and latency totals.
// Counters are atomic because read-only queries may run concurrently.
type statistics struct {
	enabled bool
	counts  [8]atomic.Uint64
	nanos   [8]atomic.Int64
}

func opIndex(op Operation) int {
	switch op {
	case OpInsert:
		return 0
	case OpRemove:
		return 1
	case OpSearch:
		return 2
	case OpNearest:
		return 3
	case OpKNN:
		return 4
	case OpRange:
		return 5
	case OpClear:
		return 6
	default:
		return 7 // OpRebuild
	}
}

func (s *statistics) record(op Operation, d time.Duration) {
	if !s.enabled {
		return
	}
	i := opIndex(op)
	s.counts[i].Add(1)
	s.nanos[i].Add(int64(d))
}

func (s *statistics) count(op Operation) uint64 {
	return s.counts[opIndex(op)].Load()
}

func (s *statistics) average(op Operation) time.Duration {
	i := opIndex(op)
	n := s.counts[i].Load()
	if n == 0 {
		return 0
	}
	return time.Duration(s.nanos[i].Load() / int64(n))
}

// Stats combines the monotonic operation counters with tree-shape metrics
// recomputed on demand by a full traversal.
type Stats struct {
	Insertions     uint64
	Removals       uint64
	Searches       uint64
	NearestQueries uint64
	KNNQueries     uint64
	RangeQueries   uint64
	Rebuilds       uint64

	Size         int
	NodeCount    int
	LeafCount    int
	Height       int
	MaxLeafDepth int
	AvgLeafDepth float64

	// BalanceRatio compares the information-theoretic minimum height
	// ceil(log2(n+1)) to the actual height, in (0, 1]; 1 means perfectly
	// balanced. Empty trees report 1.
	BalanceRatio float64

	// MemoryBytes is an estimate: NodeCount * (fixed node overhead + k
	// coordinates).
	MemoryBytes int
}

// PerformanceMetrics reports the running average execution time per
// operation type. Averages are zero for operations that never ran or when
// stats are disabled.
type PerformanceMetrics struct {
	AvgInsert  time.Duration
	AvgRemove  time.Duration
	AvgSearch  time.Duration
	AvgNearest time.Duration
	AvgKNN     time.Duration
	AvgRange   time.Duration
}

// GetStats returns the operation counters together with freshly computed
// shape metrics.
func (t *Tree) GetStats() Stats {
	var leafDepths []float64
	var nodes, leaves, height, maxLeaf int

	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		nodes++
		if n.depth+1 > height {
			height = n.depth + 1
		}
		if n.isLeaf() {
			leaves++
			leafDepths = append(leafDepths, float64(n.depth))
			if n.depth > maxLeaf {
				maxLeaf = n.depth
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	var avgLeaf float64
	if len(leafDepths) > 0 {
		avgLeaf = stat.Mean(leafDepths, nil)
	}

	return Stats{
		Insertions:     t.stats.count(OpInsert),
		Removals:       t.stats.count(OpRemove),
		Searches:       t.stats.count(OpSearch),
		NearestQueries: t.stats.count(OpNearest),
		KNNQueries:     t.stats.count(OpKNN),
		RangeQueries:   t.stats.count(OpRange),
		Rebuilds:       t.stats.count(OpRebuild),
		Size:           t.size,
		NodeCount:      nodes,
		LeafCount:      leaves,
		Height:         height,
		MaxLeafDepth:   maxLeaf,
		AvgLeafDepth:   avgLeaf,
		BalanceRatio:   balanceRatio(nodes, height),
		MemoryBytes:    nodes * (nodeOverheadBytes + t.dims*coordinateSize),
	}
}

// GetPerformanceMetrics returns the running average latency per operation.
func (t *Tree) GetPerformanceMetrics() PerformanceMetrics {
	return PerformanceMetrics{
		AvgInsert:  t.stats.average(OpInsert),
		AvgRemove:  t.stats.average(OpRemove),
		AvgSearch:  t.stats.average(OpSearch),
		AvgNearest: t.stats.average(OpNearest),
		AvgKNN:     t.stats.average(OpKNN),
		AvgRange:   t.stats.average(OpRange),
	}
}

// height returns the number of levels in the tree; 0 for an empty tree.
func (t *Tree) height() int {
	return subtreeHeight(t.root)
}

func subtreeHeight(n *node) int {
	if n == nil {
		return 0
	}
	lh := subtreeHeight(n.left)
	rh := subtreeHeight(n.right)
	if rh > lh {
		lh = rh
	}
	return lh + 1
}

func balanceRatio(nodes, height int) float64 {
	if nodes == 0 || height == 0 {
		return 1
	}
	minHeight := int(math.Ceil(math.Log2(float64(nodes + 1))))
	return float64(minHeight) / float64(height)
}
