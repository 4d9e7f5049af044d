package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredEuclideanDistance(t *testing.T) {
	p := NewPoint(0, 0)
	assert.Equal(t, float32(25), SquaredEuclideanDistance(p, []float32{3, 4}))
	assert.Equal(t, float32(0), SquaredEuclideanDistance(p, []float32{0, 0}))
}

func TestDistanceFunctionResolve(t *testing.T) {
	require.NotNil(t, DistanceFunctionSquaredEuclidean.Function())
	assert.Nil(t, DistanceFunction("manhattan").Function())
}

func TestNonFiniteCoordinates(t *testing.T) {
	nan := float32(math.NaN())
	p := NewPoint(1, 2)
	assert.True(t, math.IsNaN(float64(SquaredEuclideanDistance(p, []float32{nan, 2}))))

	// Queries with a non-finite target have undefined quality but must not
	// panic or loop.
	kd := FromPoints(2, Coord, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	assert.NotPanics(t, func() {
		kd.NearestByCoord([]float32{nan, nan})
	})
}
