package tree

// Walk visits every stored domain value reachable from the root in pre-order
// and stops early when fn returns false. Traversal uses an explicit stack, so
// walking a heavily skewed tree cannot exhaust the call stack. A
// zero-dimension tree has no nodes to visit.
func (t *Tree[T]) Walk(fn func(value T) bool) {
	if t.root == nil {
		return
	}
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		value, ok := t.values.value(n.point.index)
		if ok && !fn(value) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}
