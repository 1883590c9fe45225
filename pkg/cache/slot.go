package cache

// Slot is a Store holding at most one entry. Setting a new key replaces the
// previous entry.
type Slot[T any] struct {
	key   string
	value T
	full  bool
}

// NewSlot creates an empty single-entry store.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Get returns the stored value if key matches the current entry.
func (s *Slot[T]) Get(key string) (T, bool) {
	if !s.full || s.key != key {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Set replaces the current entry.
func (s *Slot[T]) Set(key string, v T) {
	s.key, s.value, s.full = key, v, true
}

// Clear empties the slot.
func (s *Slot[T]) Clear() {
	var zero T
	s.key, s.value, s.full = "", zero, false
}

// CurrentKey returns the key of the stored entry, or "" when empty.
func (s *Slot[T]) CurrentKey() string { return s.key }

var _ Store[int] = (*Slot[int])(nil)
