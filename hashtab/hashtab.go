// Package hashtab declares the interface for a fixed-capacity key/value table parameterized by caller-supplied
// equality and hash functions.
//
// The table is intentionally incomplete: creation and the capacity check on insertion are functional, but no key
// placement, lookup or removal logic exists yet, those operations return 'ErrNotImplemented'. Callers needing
// key/value lookup should use a plain map instead of relying on this package.
package hashtab

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

// HashFunc maps a key to a bucket-selection hash.
type HashFunc[K any] func(k K) uint32

// Table is a fixed-capacity key/value table.
//
// NOTE: A Table is not safe for concurrent use.
type Table[K, V any] struct {
	capacity int
	length   int

	equal EqualFunc[K]
	hash  HashFunc[K]
}

// New creates an empty table which can hold up to capacity entries, using the given equality and hash functions over
// keys.
func New[K, V any](capacity int, equal EqualFunc[K], hash HashFunc[K]) (*Table[K, V], error) {
	if capacity < 0 {
		return nil, InvalidCapacityError{capacity: capacity}
	}

	if equal == nil {
		return nil, ErrNilEqualFunc
	}

	if hash == nil {
		return nil, ErrNilHashFunc
	}

	return &Table[K, V]{capacity: capacity, equal: equal, hash: hash}, nil
}

// Insert adds the given key/value pair to the table, returning a 'FullError' if the table is already at capacity.
//
// TODO: Implement bucket placement and collision resolution; only the capacity check exists today, a successful
// check returns 'ErrNotImplemented'.
func (t *Table[K, V]) Insert(k K, v V) error {
	if t.length >= t.capacity {
		return FullError{length: t.length + 1, capacity: t.capacity}
	}

	return ErrNotImplemented
}

// Get returns the value stored against the given key.
func (t *Table[K, V]) Get(k K) (V, error) {
	return *new(V), ErrNotImplemented
}

// Remove removes and returns the value stored against the given key.
func (t *Table[K, V]) Remove(k K) (V, error) {
	return *new(V), ErrNotImplemented
}

// Len returns the number of entries currently in the table.
func (t *Table[K, V]) Len() int {
	return t.length
}

// Size returns the maximum number of entries the table can hold.
func (t *Table[K, V]) Size() int {
	return t.capacity
}
