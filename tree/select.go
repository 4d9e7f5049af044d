package tree

// selectMedian rearranges indices so the element at position k is the one a
// full sort by coordinate along axis would place there, with every element
// before it ordering no higher and every element after it no lower. Relative
// order on each side, and the order among equal axis values, is unspecified.
// Expected linear time over repeated partitions, no full sort.
//
// Comparisons use strict less-than only, so a NaN coordinate never orders
// before or after anything; ties involving NaN resolve the same way on every
// run.
func selectMedian(indices []int32, k int, axis int, coords [][]float32) {
	lo, hi := 0, len(indices)-1
	for lo < hi {
		p := partition(indices, lo, hi, axis, coords)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partition places the pivot taken from the middle of [lo, hi] into its final
// position and returns that position.
func partition(indices []int32, lo, hi int, axis int, coords [][]float32) int {
	mid := lo + (hi-lo)/2
	indices[mid], indices[hi] = indices[hi], indices[mid]
	pivot := coords[indices[hi]][axis]
	i := lo
	for j := lo; j < hi; j++ {
		if coords[indices[j]][axis] < pivot {
			indices[i], indices[j] = indices[j], indices[i]
			i++
		}
	}
	indices[i], indices[hi] = indices[hi], indices[i]
	return i
}
