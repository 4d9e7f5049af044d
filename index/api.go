package index

// Index defines a nearest-neighbor index over fixed-dimension vectors.
// It enables building from (id, vector) pairs and single nearest queries.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length; all vectors must share one
	// dimension. Building from empty input resets the index.
	Build(ids []string, vectors [][]float32) error

	// Nearest returns the id of the stored vector with minimal squared
	// Euclidean distance to query, together with that distance. ok is false
	// when the index holds no vectors; absence is never an error.
	Nearest(query []float32) (id string, distance float32, ok bool, err error)
}
