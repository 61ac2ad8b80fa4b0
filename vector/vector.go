// Package vector exposes a growable generic sequence with push/pop at both ends and shifting insertion/removal at
// arbitrary indexes.
package vector

import (
	"fmt"
	"strings"

	"github.com/fixedcap/collections/errdefs"
	"github.com/fixedcap/collections/format"
	"github.com/fixedcap/collections/log"
)

// growthFactor is the factor by which the backing array capacity increases when we have to grow it.
//
// NOTE: This value was chosen because it is a common value that languages use to increase capacity of their dynamic
// array types.
const growthFactor = 2

// FreeFunc is a cleanup callback run on each element released during 'Destroy'. Element ownership always lies with
// the caller, the vector only invokes the callback during teardown.
type FreeFunc[T any] func(element T) error

// IterFunc is a function which will be executed for every element in the vector, front to back.
type IterFunc[T any] func(element T) error

// ToStringFunc converts a single element into its rendered representation.
type ToStringFunc[T any] func(element T) string

// Vector is a general-purpose dynamic array; unlike the priority queue it maintains no ordering invariant and grows
// automatically when full.
//
// NOTE: A Vector is not safe for concurrent use.
type Vector[T any] struct {
	length int
	slots  []T

	destroyed bool
}

// New creates an empty vector with the given initial capacity.
func New[T any](capacity int) (*Vector[T], error) {
	if capacity < 0 {
		return nil, InvalidCapacityError{capacity: capacity}
	}

	return &Vector[T]{slots: make([]T, capacity)}, nil
}

// Len returns the number of elements currently in the vector.
func (v *Vector[T]) Len() int {
	return v.length
}

// Size returns the number of elements the vector can hold before it has to grow again.
func (v *Vector[T]) Size() int {
	return len(v.slots)
}

// IsEmpty returns a boolean indicating whether the vector contains no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// growIfRequired reallocates the backing array, grown by 'growthFactor', when there's no room left for another
// element.
func (v *Vector[T]) growIfRequired() {
	if v.length < len(v.slots) {
		return
	}

	grown := len(v.slots) * growthFactor
	if grown == 0 {
		grown = 1
	}

	slots := make([]T, grown)
	copy(slots, v.slots)

	log.Tracef("(Vector) Grew capacity from %d to %d", len(v.slots), grown)

	v.slots = slots
}

// PushBack appends the given element to the end of the vector.
func (v *Vector[T]) PushBack(element T) error {
	if v.destroyed {
		return ErrDestroyed
	}

	v.growIfRequired()

	v.slots[v.length] = element
	v.length++

	return nil
}

// PushFront adds the given element to the front of the vector, shifting the existing elements right.
func (v *Vector[T]) PushFront(element T) error {
	if v.destroyed {
		return ErrDestroyed
	}

	v.growIfRequired()

	copy(v.slots[1:v.length+1], v.slots[:v.length])

	v.slots[0] = element
	v.length++

	return nil
}

// PopBack removes and returns the element at the back of the vector, returning 'ErrEmpty' if there is none.
func (v *Vector[T]) PopBack() (T, error) {
	if v.destroyed {
		return *new(T), ErrDestroyed
	}

	if v.length == 0 {
		return *new(T), ErrEmpty
	}

	v.length--

	element := v.slots[v.length]
	v.slots[v.length] = *new(T)

	return element, nil
}

// PopFront removes and returns the element at the front of the vector, shifting the remaining elements left.
func (v *Vector[T]) PopFront() (T, error) {
	return v.Remove(0)
}

// Get returns the element at the given index without removing it.
func (v *Vector[T]) Get(i int) (T, error) {
	if v.destroyed {
		return *new(T), ErrDestroyed
	}

	if i < 0 || i >= v.length {
		return *new(T), IndexOutOfRangeError{length: v.length, i: i}
	}

	return v.slots[i], nil
}

// Set replaces the element at the given index, returning the element which previously occupied it.
func (v *Vector[T]) Set(i int, element T) (T, error) {
	if v.destroyed {
		return *new(T), ErrDestroyed
	}

	if i < 0 || i >= v.length {
		return *new(T), IndexOutOfRangeError{length: v.length, i: i}
	}

	replaced := v.slots[i]
	v.slots[i] = element

	return replaced, nil
}

// Insert places the given element at the given index, shifting the elements in or after it right. An index equal to
// the current length appends.
func (v *Vector[T]) Insert(i int, element T) error {
	if v.destroyed {
		return ErrDestroyed
	}

	if i < 0 || i > v.length {
		return IndexOutOfRangeError{length: v.length, i: i}
	}

	v.growIfRequired()

	copy(v.slots[i+1:v.length+1], v.slots[i:v.length])

	v.slots[i] = element
	v.length++

	return nil
}

// Remove removes and returns the element at the given index, shifting the remaining elements left to fill the gap.
func (v *Vector[T]) Remove(i int) (T, error) {
	if v.destroyed {
		return *new(T), ErrDestroyed
	}

	if v.length == 0 {
		return *new(T), ErrEmpty
	}

	if i < 0 || i >= v.length {
		return *new(T), IndexOutOfRangeError{length: v.length, i: i}
	}

	element := v.slots[i]

	copy(v.slots[i:v.length-1], v.slots[i+1:v.length])

	v.length--
	v.slots[v.length] = *new(T)

	return element, nil
}

// Copy returns a new vector with the same elements as this one; the two are fully independent, mutating one never
// affects the other.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	if v.destroyed {
		return nil, ErrDestroyed
	}

	dup := &Vector[T]{length: v.length, slots: make([]T, len(v.slots))}
	copy(dup.slots, v.slots)

	return dup, nil
}

// Iter calls fn on each element in the vector, front to back, stopping early in the event of an error.
func (v *Vector[T]) Iter(fn IterFunc[T]) error {
	if v.destroyed {
		return ErrDestroyed
	}

	for i := 0; i < v.length; i++ {
		if err := fn(v.slots[i]); err != nil {
			return err
		}
	}

	return nil
}

// Destroy releases the vector, running the given cleanup callback on each element it still holds. Cleanup failures
// do not stop teardown; they're aggregated and returned once every element has been released.
//
// A <nil> callback is valid and means elements are never cleaned up by the vector. Any operation on the vector after
// this call returns 'ErrDestroyed'.
func (v *Vector[T]) Destroy(free FreeFunc[T]) error {
	if v.destroyed {
		return ErrDestroyed
	}

	v.destroyed = true

	errs := errdefs.MultiError{Prefix: "failed to destroy vector: "}

	for i := 0; free != nil && i < v.length; i++ {
		if err := free(v.slots[i]); err != nil {
			errs.Add(fmt.Errorf("failed to free element %d: %w", i, err))
		}
	}

	log.Tracef("(Vector) Destroyed vector releasing %d elements", v.length)

	v.slots = nil
	v.length = 0

	return errs.ErrOrNil()
}

// Render returns a space-separated rendering of the vector's elements in index order, each one converted to a string
// using the given callback.
func (v *Vector[T]) Render(toString ToStringFunc[T]) (string, error) {
	if v.destroyed {
		return "", ErrDestroyed
	}

	if toString == nil {
		toString = format.Element[T]
	}

	var builder strings.Builder

	for i := 0; i < v.length; i++ {
		if i != 0 {
			builder.WriteByte(' ')
		}

		builder.WriteString(toString(v.slots[i]))
	}

	return builder.String(), nil
}

// Print writes the vector's elements to standard output in index order, see 'Render'.
func (v *Vector[T]) Print(toString ToStringFunc[T]) error {
	rendered, err := v.Render(toString)
	if err != nil {
		return err
	}

	fmt.Println(rendered)

	return nil
}
