package tree

// Point represents a k-dimensional coordinate in the tree together with the
// stable index of its owning domain value in the backing store.
type Point struct {
	index  int32
	Vector []float32
}

// HasValue reports whether the point maps back to a stored domain value.
func (p *Point) HasValue() bool {
	return p != nil && p.index >= 0
}

// NewPoint constructs a detached point for the given coordinate vector.
func NewPoint(vector ...float32) *Point {
	return &Point{index: -1, Vector: vector}
}

// Adapter converts a domain value into its coordinate vector. Implementations
// must be pure and always return exactly as many values as the tree's
// dimension; the tree does not re-check the length at query time.
type Adapter[T any] func(value T) []float32

// Coord is the identity adapter for trees that store raw coordinate vectors.
func Coord(vector []float32) []float32 {
	return vector
}
