package kdtree

import "time"

// Search looks up a point by tolerance-based equality, descending by the
// same split-dimension rule as insertion. On success the result carries the
// stored copy of the matched point.
func (t *Tree) Search(p Point) (res SearchResult) {
	start := time.Now()
	defer func() {
		t.complete(OpSearch, start, &res.OpReport, recover())
		t.notify(OpSearch, res)
	}()

	if err := validatePoint(p, t.dims); err != nil {
		res.Err = err
		return res
	}
	if t.root == nil {
		res.Err = &EmptyTreeError{}
		return res
	}

	found := t.searchRec(t.root, p, &res.NodesVisited)
	if found == nil {
		res.Err = &NotFoundError{Point: p.Clone()}
		return res
	}
	res.Found = true
	res.Point = found.Clone()
	res.Success = true
	return res
}

// Contains reports whether p is present. It is a convenience wrapper over
// Search and shares its statistics and event reporting.
func (t *Tree) Contains(p Point) bool {
	return t.Search(p).Found
}

func (t *Tree) searchRec(n *node, p Point, visited *int) Point {
	if n == nil {
		return nil
	}
	*visited++
	if t.equal(n.point, p) {
		return n.point
	}
	if p[n.splitDim] < n.point[n.splitDim] {
		return t.searchRec(n.left, p, visited)
	}
	return t.searchRec(n.right, p, visited)
}

// containsRec is the internal containment check used by the duplicate guard
// in Insert; it bypasses statistics and events.
func (t *Tree) containsRec(n *node, p Point, visited *int) bool {
	return t.searchRec(n, p, visited) != nil
}
