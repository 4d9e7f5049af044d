package bruteforce

import (
	"fmt"
	"math"

	"github.com/viant/vec/search"
)

// Index is a simple brute-force nearest-neighbor index that scores every
// stored vector by squared Euclidean distance.
type Index struct {
	ids  []string
	vecs [][]float32
	dim  int
}

// Build loads ids and vectors.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.dim = nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	return nil
}

// Nearest scans all vectors and returns the closest one. Vectors whose
// distance to the query is NaN are skipped.
func (i *Index) Nearest(query []float32) (string, float32, bool, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return "", 0, false, nil
	}
	if len(query) != i.dim {
		return "", 0, false, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	bestIdx := -1
	var bestDist float32
	for j := range i.vecs {
		d := search.Float32s(i.vecs[j]).EuclideanDistance(query)
		d *= d
		if math.IsNaN(float64(d)) {
			continue
		}
		if bestIdx < 0 || d < bestDist {
			bestIdx = j
			bestDist = d
		}
	}
	if bestIdx < 0 {
		return "", 0, false, nil
	}
	return i.ids[bestIdx], bestDist, true, nil
}
