package tree

// node is a kd-tree node owning one point and up to two child subtrees.
// A nil child marks the subtree boundary; a node with both children nil is a
// leaf.
type node struct {
	point *Point
	left  *node
	right *node
}

func newNode(point *Point) *node {
	return &node{point: point}
}

// height returns the number of nodes on the longest path from n to a leaf,
// or 0 when n is nil.
func (n *node) height() int {
	if n == nil {
		return 0
	}
	lh := n.left.height()
	rh := n.right.height()
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
