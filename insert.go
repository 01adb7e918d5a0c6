package kdtree

import (
	"fmt"
	"sort"
	"time"
)

// Insert adds one point to the tree. The point is validated first; a failed
// validation, a duplicate (when duplicates are disallowed), or an insertion
// that would exceed MaxDepth leaves the tree untouched and reports the error
// in the result.
func (t *Tree) Insert(p Point) (res InsertResult) {
	start := time.Now()
	defer func() {
		t.complete(OpInsert, start, &res.OpReport, recover())
		t.notify(OpInsert, res)
	}()

	if err := validatePoint(p, t.dims); err != nil {
		res.Err = err
		if t.logger != nil {
			t.logger.Warn("kdtree: insert rejected", "point", p, "err", err)
		}
		return res
	}

	if !t.cfg.AllowDuplicates && t.containsRec(t.root, p, &res.NodesVisited) {
		res.Err = &DuplicateError{Point: p.Clone()}
		return res
	}

	newRoot, depth, err := t.insertRec(t.root, p, 0, &res.NodesVisited)
	if err != nil {
		res.Err = err
		return res
	}
	t.root = newRoot
	t.size++
	res.Depth = depth
	res.Success = true
	return res
}

// insertRec descends by the split-dimension rule (strictly less goes left,
// ties and greater go right) and creates a leaf in the first empty slot.
// On failure it returns the subtree unchanged.
func (t *Tree) insertRec(n *node, p Point, depth int, visited *int) (*node, int, error) {
	if n == nil {
		if depth >= t.cfg.MaxDepth {
			return nil, 0, &ValidationError{
				Reason: fmt.Sprintf("insertion would exceed max depth %d", t.cfg.MaxDepth),
			}
		}
		return newNode(p, depth, t.dims), depth, nil
	}
	*visited++

	if p[n.splitDim] < n.point[n.splitDim] {
		child, leafDepth, err := t.insertRec(n.left, p, depth+1, visited)
		if err != nil {
			return n, 0, err
		}
		n.left = child
		return n, leafDepth, nil
	}
	child, leafDepth, err := t.insertRec(n.right, p, depth+1, visited)
	if err != nil {
		return n, 0, err
	}
	n.right = child
	return n, leafDepth, nil
}

// InsertBatch applies Insert to each point in order. The batch is not
// atomic: a failing item is skipped and recorded in Errors, and earlier
// successes remain. Each item emits its own insert event.
func (t *Tree) InsertBatch(points []Point) BatchInsertResult {
	start := time.Now()
	var res BatchInsertResult

	for i, p := range points {
		ir := t.Insert(p)
		res.NodesVisited += ir.NodesVisited
		if ir.Success {
			res.Inserted++
			continue
		}
		res.Errors = append(res.Errors, BatchError{Index: i, Point: p.Clone(), Err: ir.Err})
	}

	res.Success = len(res.Errors) == 0
	res.Duration = time.Since(start)
	return res
}

// Rebuild reconstructs the tree from its live point set via median-split
// bulk construction, restoring O(log n) height regardless of the insertion
// and removal history. The point multiset and size are unchanged.
func (t *Tree) Rebuild() (res RebuildResult) {
	start := time.Now()
	defer func() {
		t.complete(OpRebuild, start, &res.OpReport, recover())
		t.notify(OpRebuild, res)
	}()

	res.OldHeight = t.height()
	pts := t.Points()
	res.NodesVisited = len(pts)

	t.root = t.buildBalanced(pts, 0)
	res.NewHeight = t.height()
	res.Success = true
	if t.logger != nil {
		t.logger.Debug("kdtree: rebuilt",
			"points", len(pts), "old_height", res.OldHeight, "new_height", res.NewHeight)
	}
	return res
}

// buildBalanced constructs a subtree by sorting on the depth's split
// dimension and selecting the median. Points whose split coordinate equals
// the median's are kept on the right, preserving the strictly-less left
// invariant. Height is O(log n) by construction.
func (t *Tree) buildBalanced(points []Point, depth int) *node {
	if len(points) == 0 {
		return nil
	}
	sd := depth % t.dims
	sort.SliceStable(points, func(i, j int) bool {
		return points[i][sd] < points[j][sd]
	})

	mid := len(points) / 2
	for mid > 0 && points[mid-1][sd] == points[mid][sd] {
		mid--
	}

	n := newNode(points[mid], depth, t.dims)
	n.left = t.buildBalanced(points[:mid], depth+1)
	n.right = t.buildBalanced(points[mid+1:], depth+1)
	return n
}
