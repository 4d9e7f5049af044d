package kd

import (
	"fmt"

	"github.com/viant/kdtree/index"
	"github.com/viant/kdtree/tree"
)

// Compile-time check that Index satisfies the index contract.
var _ index.Index = (*Index)(nil)

// Index implements a nearest-neighbor index backed by a kd-tree, pruning the
// search with branch-and-bound descent instead of scoring every vector.
type Index struct {
	tree *tree.Tree[item]
	dim  int
}

// item pairs an external id with its coordinate vector.
type item struct {
	id     string
	vector []float32
}

func itemCoord(it item) []float32 {
	return it.vector
}

// Build constructs a balanced kd-tree from the given ids and vectors.
// Building from empty input resets the index.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("kd: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.tree, i.dim = nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("kd: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	items := make([]item, len(ids))
	for j := range ids {
		items[j] = item{id: ids[j], vector: vectors[j]}
	}
	i.tree = tree.FromPoints(dim, itemCoord, items)
	i.dim = dim
	return nil
}

// Insert attaches a single id/vector pair to the existing structure without
// rebalancing. Inserting into a fresh index fixes its dimension.
func (i *Index) Insert(id string, vector []float32) error {
	if i.tree == nil {
		i.dim = len(vector)
		i.tree = tree.New(i.dim, itemCoord)
	}
	if len(vector) != i.dim {
		return fmt.Errorf("kd: vector dim %d != index dim %d", len(vector), i.dim)
	}
	i.tree.AddPoint(item{id: id, vector: vector})
	return nil
}

// Nearest returns the id of the stored vector closest to query by squared
// Euclidean distance.
func (i *Index) Nearest(query []float32) (string, float32, bool, error) {
	if i.tree == nil || i.tree.IsEmpty() {
		return "", 0, false, nil
	}
	if len(query) != i.dim {
		return "", 0, false, fmt.Errorf("kd: query dim %d != index dim %d", len(query), i.dim)
	}
	it, ok := i.tree.NearestByCoord(query)
	if !ok {
		return "", 0, false, nil
	}
	d := tree.SquaredEuclideanDistance(tree.NewPoint(it.vector...), query)
	return it.id, d, true, nil
}

// Size returns the number of stored vectors.
func (i *Index) Size() int {
	if i.tree == nil {
		return 0
	}
	return i.tree.Size()
}
