package pqueue

import (
	"errors"
	"fmt"
)

var (
	// ErrNilComparator is returned when creating a queue without a comparator; a queue cannot rank elements without
	// one.
	ErrNilComparator = errors.New("comparator must not be nil")

	// ErrEmpty is returned when peeking at, or removing from, a queue which contains no elements.
	ErrEmpty = errors.New("queue is empty")

	// ErrDestroyed is returned when operating on a queue which has already been destroyed.
	ErrDestroyed = errors.New("queue has been destroyed")
)

// InvalidCapacityError is returned when creating a queue with a negative capacity.
type InvalidCapacityError struct {
	capacity int
}

func (e InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid capacity %d", e.capacity)
}

// FullError is returned when inserting into a queue which is already at capacity; the queue never resizes, callers
// must size it ahead of use.
type FullError struct {
	length   int
	capacity int
}

func (e FullError) Error() string {
	return fmt.Sprintf("new length %d is greater than queue size %d", e.length, e.capacity)
}
