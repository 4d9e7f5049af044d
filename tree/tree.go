package tree

// Tree is a kd-tree over domain values of type T. The backing store is
// append-only: every value keeps the index assigned when it was first added,
// and nodes refer back to their domain values through that index.
//
// A finished tree may be read concurrently since queries perform no mutation.
// AddPoint mutates both the structure and the backing store and must not be
// interleaved with any other operation; the tree provides no internal locking.
type Tree[T any] struct {
	root         *node
	dim          int
	adapter      Adapter[T]
	distanceFunc DistanceFunc
	values       values[T]
}

// New constructs an empty kd-tree of the given dimension. The dimension is
// fixed for the tree's lifetime; a dimension of zero yields a degenerate tree
// that stores values without spatial structure and answers no queries.
func New[T any](dim int, adapter Adapter[T]) *Tree[T] {
	if dim < 0 {
		dim = 0
	}
	return &Tree[T]{
		dim:          dim,
		adapter:      adapter,
		distanceFunc: DistanceFunctionSquaredEuclidean.Function(),
	}
}

// FromPoints constructs a balanced kd-tree owning the supplied values. The
// slice is retained as the backing store; callers must not mutate it
// afterwards. Construction partitions an index set recursively around the
// per-axis median, so well-distributed inputs produce logarithmic height.
// Heavily duplicated coordinates can skew the partition and increase height;
// queries stay correct regardless.
func FromPoints[T any](dim int, adapter Adapter[T], points []T) *Tree[T] {
	t := New[T](dim, adapter)
	t.values.data = points
	if t.dim == 0 || len(points) == 0 {
		return t
	}
	coords := make([][]float32, len(points))
	for i := range points {
		coords[i] = adapter(points[i])
	}
	indices := make([]int32, len(points))
	for i := range indices {
		indices[i] = int32(i)
	}
	t.root = t.build(coords, indices, 0)
	return t
}

func (t *Tree[T]) build(coords [][]float32, indices []int32, depth int) *node {
	if len(indices) == 0 {
		return nil
	}
	axis := depth % t.dim
	median := len(indices) / 2
	selectMedian(indices, median, axis, coords)
	idx := indices[median]
	n := newNode(&Point{index: idx, Vector: coords[idx]})
	n.left = t.build(coords, indices[:median], depth+1)
	n.right = t.build(coords, indices[median+1:], depth+1)
	return n
}

// NearestByCoord returns the stored domain value closest to coord by squared
// Euclidean distance. The boolean is false when the tree is empty or
// zero-dimensional. When two reachable points are equidistant from coord the
// earliest-stored one (lowest stable index) wins, matching the order a linear
// scan over the backing store would report.
func (t *Tree[T]) NearestByCoord(coord []float32) (T, bool) {
	var zero T
	if t.root == nil || t.dim == 0 {
		return zero, false
	}
	var b best
	t.nearest(t.root, coord, 0, &b)
	if b.node == nil {
		return zero, false
	}
	return t.values.value(b.node.point.index)
}

// Nearest adapts target to its coordinate vector and returns the stored
// domain value closest to it.
func (t *Tree[T]) Nearest(target T) (T, bool) {
	return t.NearestByCoord(t.adapter(target))
}

// best tracks the closest candidate found so far and its squared distance to
// the query target.
type best struct {
	node *node
	dist float32
}

func (t *Tree[T]) nearest(n *node, target []float32, depth int, b *best) {
	d := t.distanceFunc(n.point, target)
	if b.node == nil || d < b.dist || (d == b.dist && n.point.index < b.node.point.index) {
		b.node = n
		b.dist = d
	}
	axis := depth % t.dim
	near, far := n.left, n.right
	// Strict < keeps routing deterministic for NaN targets: they never order
	// before the splitting value and always descend right.
	if !(target[axis] < n.point.Vector[axis]) {
		near, far = n.right, n.left
	}
	if near != nil {
		t.nearest(near, target, depth+1, b)
	}
	if far == nil {
		return
	}
	// The far subtree can only hold a closer point when the splitting
	// hyperplane lies strictly within the best candidate's radius. Both sides
	// of the comparison are squared distances.
	gap := target[axis] - n.point.Vector[axis]
	if gap*gap < b.dist {
		t.nearest(far, target, depth+1, b)
	}
}

// AddPoint appends point to the backing store and attaches a new leaf by
// descending the existing structure on the cycling axis, left when the new
// coordinate is strictly less along the node's axis, right otherwise. No part
// of the tree is rebuilt or rebalanced; repeated skewed insertions degrade
// height toward the number of points.
func (t *Tree[T]) AddPoint(point T) {
	coord := t.adapter(point)
	idx := t.values.put(point)
	if t.dim == 0 {
		return
	}
	leaf := newNode(&Point{index: idx, Vector: coord})
	if t.root == nil {
		t.root = leaf
		return
	}
	n := t.root
	for depth := 0; ; depth++ {
		axis := depth % t.dim
		if coord[axis] < n.point.Vector[axis] {
			if n.left == nil {
				n.left = leaf
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = leaf
				return
			}
			n = n.right
		}
	}
}

// Size returns the number of stored domain values.
func (t *Tree[T]) Size() int {
	return t.values.len()
}

// IsEmpty reports whether the tree has no root node.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of nodes on the longest root-to-leaf path, or 0
// for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// Dimension returns the fixed dimension the tree was constructed with.
func (t *Tree[T]) Dimension() int {
	return t.dim
}
