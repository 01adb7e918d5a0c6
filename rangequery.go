package kdtree

import "time"

// RangeQueryOptions controls RangeQuery.
type RangeQueryOptions struct {
	// Exclusive treats the box as half-open: Min is included, Max is not.
	// Default (false) includes both bounds.
	Exclusive bool

	// Filter, when non-nil, keeps only points for which it returns true.
	// It runs after the bounds test.
	Filter func(Point) bool
}

// RangeQuery returns every stored point inside the axis-aligned box. At each
// node, the left subtree is skipped only when the node's split coordinate is
// below the box's lower bound on that dimension, and the right subtree only
// when it is above the upper bound; both are visited otherwise. This is
// binary-search pruning generalized to spatial ranges, sub-linear for small
// result sets.
func (t *Tree) RangeQuery(bounds BoundingBox, opts RangeQueryOptions) (res RangeResult) {
	start := time.Now()
	defer func() {
		t.complete(OpRange, start, &res.OpReport, recover())
		t.notify(OpRange, res)
	}()

	if err := bounds.validate(t.dims); err != nil {
		res.Err = err
		return res
	}
	if t.root == nil {
		res.Err = &EmptyTreeError{}
		return res
	}

	res.Points = make([]Point, 0)
	t.rangeSearch(t.root, bounds, opts, &res.Points, &res.NodesVisited)
	res.Success = true
	return res
}

func (t *Tree) rangeSearch(n *node, b BoundingBox, opts RangeQueryOptions, out *[]Point, visited *int) {
	if n == nil {
		return
	}
	*visited++

	if b.contains(n.point, opts.Exclusive) && (opts.Filter == nil || opts.Filter(n.point)) {
		*out = append(*out, n.point.Clone())
	}

	sd := n.splitDim
	c := n.point[sd]
	// Left subtree holds coordinates strictly below c: it can intersect the
	// box only if c is not below the lower bound. Symmetrically for right.
	if c >= b.Min[sd] {
		t.rangeSearch(n.left, b, opts, out, visited)
	}
	if c <= b.Max[sd] {
		t.rangeSearch(n.right, b, opts, out, visited)
	}
}
