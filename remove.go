package kdtree

import "time"

// Remove deletes one point matched by tolerance-based equality, using
// generalized Hibbard deletion. A matched inner node is not unlinked:
// the minimum point along the node's own split dimension is promoted into
// it from the right subtree (or from the left subtree, whose remainder then
// moves to the right slot), and the promoted point is deleted recursively.
// Removing an absent point is a no-op that reports a NotFoundError.
func (t *Tree) Remove(p Point) (res RemoveResult) {
	start := time.Now()
	defer func() {
		t.complete(OpRemove, start, &res.OpReport, recover())
		t.notify(OpRemove, res)
	}()

	if err := validatePoint(p, t.dims); err != nil {
		res.Err = err
		return res
	}
	if t.root == nil {
		res.Err = &EmptyTreeError{}
		return res
	}

	newRoot, removed := t.removeRec(t.root, p, &res.NodesVisited)
	if !removed {
		res.Err = &NotFoundError{Point: p.Clone()}
		return res
	}
	t.root = newRoot
	t.size--
	res.Success = true
	return res
}

// removeRec returns the subtree with one match of p removed and whether a
// match was found. The descent follows the insertion rule, so it reaches
// exactly the slots where p can live.
func (t *Tree) removeRec(n *node, p Point, visited *int) (*node, bool) {
	if n == nil {
		return nil, false
	}
	*visited++

	if t.equal(n.point, p) {
		sd := n.splitDim
		switch {
		case n.right != nil:
			min := t.findMinRec(n.right, sd, visited)
			n.point = min.Clone()
			n.right, _ = t.removeRec(n.right, min, visited)
		case n.left != nil:
			// Left-only case: promote the left-subtree minimum along sd and
			// move the remaining left subtree into the right slot. Every
			// remaining point has coordinate sd >= the promoted minimum, so
			// the partition invariant holds with ties on the right.
			min := t.findMinRec(n.left, sd, visited)
			n.point = min.Clone()
			newRight, _ := t.removeRec(n.left, min, visited)
			n.left = nil
			n.right = newRight
		default:
			return nil, true
		}
		return n, true
	}

	var ok bool
	if p[n.splitDim] < n.point[n.splitDim] {
		n.left, ok = t.removeRec(n.left, p, visited)
	} else {
		n.right, ok = t.removeRec(n.right, p, visited)
	}
	return n, ok
}

// findMinRec returns the point with the minimum coordinate along dim in the
// subtree rooted at n. When the visited node splits on dim itself, the
// minimum cannot live in its right subtree; on any other split dimension it
// can live on either side, so both children are searched. This branching
// rule is unique to deletion and deliberately kept separate from the main
// traversals.
func (t *Tree) findMinRec(n *node, dim int, visited *int) Point {
	if n == nil {
		return nil
	}
	*visited++

	if n.splitDim == dim {
		if n.left == nil {
			return n.point
		}
		return t.findMinRec(n.left, dim, visited)
	}

	best := n.point
	if l := t.findMinRec(n.left, dim, visited); l != nil && l[dim] < best[dim] {
		best = l
	}
	if r := t.findMinRec(n.right, dim, visited); r != nil && r[dim] < best[dim] {
		best = r
	}
	return best
}
