package tree

import "github.com/viant/vec/search"

// DistanceFunction enumerates supported distance metrics for the kd-tree.
type DistanceFunction string

const (
	DistanceFunctionSquaredEuclidean DistanceFunction = "squared_euclidean"
)

// DistanceFunc computes the distance between a stored point and a query
// coordinate.
type DistanceFunc func(p *Point, coord []float32) float32

// Function resolves the callable distance implementation.
func (d DistanceFunction) Function() DistanceFunc {
	switch d {
	case DistanceFunctionSquaredEuclidean:
		return SquaredEuclideanDistance
	default:
		return nil
	}
}

// SquaredEuclideanDistance returns the squared Euclidean distance between a
// point and a coordinate. The squared form keeps the best-candidate bound on
// the same scale as the squared hyperplane distance used for pruning.
// Non-finite coordinate values propagate into the result.
func SquaredEuclideanDistance(p *Point, coord []float32) float32 {
	d := search.Float32s(p.Vector).EuclideanDistance(coord)
	return d * d
}
