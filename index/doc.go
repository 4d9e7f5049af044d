// Package index defines a minimal abstraction for nearest-neighbor indexes
// that can be built from id/vector pairs and queried for the single closest
// match. Implementations in this module include a brute-force baseline and a
// kd-tree backed index.
package index
