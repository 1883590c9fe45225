package cache

// Null is a no-op store that never keeps anything.
// Useful for testing or when caching should be disabled.
type Null[T any] struct{}

// NewNull creates a null store.
func NewNull[T any]() Store[T] {
	return Null[T]{}
}

// Get always returns a miss.
func (Null[T]) Get(string) (T, bool) {
	var zero T
	return zero, false
}

// Set does nothing.
func (Null[T]) Set(string, T) {}

// Clear does nothing.
func (Null[T]) Clear() {}

var _ Store[int] = Null[int]{}
