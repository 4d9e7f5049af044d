package tree

// values is the append-only backing store for domain values. Indices are
// assigned once at put time and never reused or invalidated; deletion is not
// supported. The store performs no locking; callers serialize mutation
// externally.
type values[T any] struct {
	data []T
}

func (v *values[T]) put(value T) int32 {
	idx := len(v.data)
	v.data = append(v.data, value)
	return int32(idx)
}

func (v *values[T]) value(index int32) (T, bool) {
	var zero T
	if index < 0 || int(index) >= len(v.data) {
		return zero, false
	}
	return v.data[index], true
}

func (v *values[T]) len() int {
	return len(v.data)
}
