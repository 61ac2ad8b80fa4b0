package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when popping from a vector which contains no elements.
	ErrEmpty = errors.New("vector is empty")

	// ErrDestroyed is returned when operating on a vector which has already been destroyed.
	ErrDestroyed = errors.New("vector has been destroyed")
)

// InvalidCapacityError is returned when creating a vector with a negative capacity.
type InvalidCapacityError struct {
	capacity int
}

func (e InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity %d", e.capacity)
}

// IndexOutOfRangeError is returned when performing a request which the provided index would cause an index out of
// range panic if executed.
type IndexOutOfRangeError struct {
	length int
	i      int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range %d with length %d", e.i, e.length)
}
