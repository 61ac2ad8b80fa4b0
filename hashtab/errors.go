package hashtab

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEqualFunc is returned when creating a table without a key equality function.
	ErrNilEqualFunc = errors.New("equal function must not be nil")

	// ErrNilHashFunc is returned when creating a table without a key hash function.
	ErrNilHashFunc = errors.New("hash function must not be nil")

	// ErrNotImplemented is returned by the operations which the table does not support yet; see the package
	// documentation.
	ErrNotImplemented = errors.New("not implemented")
)

// InvalidCapacityError is returned when creating a table with a negative capacity.
type InvalidCapacityError struct {
	capacity int
}

func (e InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity %d", e.capacity)
}

// FullError is returned when inserting into a table which is already at capacity.
type FullError struct {
	length   int
	capacity int
}

func (e FullError) Error() string {
	return fmt.Sprintf("new length %d is greater than table size %d", e.length, e.capacity)
}
