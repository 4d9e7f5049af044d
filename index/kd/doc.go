// Package kd provides a kd-tree backed nearest-neighbor index. It delegates
// construction and search to the tree package and exposes the same contract
// as the brute-force baseline, so the two can be swapped or cross-checked.
package kd
