package kdtree

// node is the tree's storage unit. A node exclusively owns its left and
// right subtrees; the tree owns the root. There are no parent back-pointers:
// any bookkeeping that needs ancestors carries them on the call stack.
//
// splitDim and depth are fully determined by depth mod k; both are cached
// for convenience.
type node struct {
	point    Point
	left     *node
	right    *node
	splitDim int
	depth    int
}

func newNode(p Point, depth, dims int) *node {
	return &node{
		point:    p.Clone(),
		splitDim: depth % dims,
		depth:    depth,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}
