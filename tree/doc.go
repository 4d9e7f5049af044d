// Package tree implements a kd-tree over fixed-dimension points. It supports
// balanced construction from a point set via recursive median partitioning,
// unbalanced single-point insertion, and nearest-neighbor queries that prune
// subtrees with a branch-and-bound hyperplane bound. Domain values of any type
// are stored alongside the tree and resolved through stable indices.
package tree
