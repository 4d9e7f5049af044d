// Package bruteforce provides a nearest-neighbor index that answers queries
// by scanning all vectors and scoring via squared Euclidean distance. It is
// the ground-truth baseline the kd-tree index is verified against.
package bruteforce
