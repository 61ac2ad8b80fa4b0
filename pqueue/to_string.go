package pqueue

import "github.com/fixedcap/collections/format"

// ToStringFunc converts a single payload into its rendered representation.
type ToStringFunc[T any] func(payload T) string

// DefaultToString returns the stringifier used when rendering a queue without a caller-supplied one, see
// 'format.Element'.
func DefaultToString[T any]() ToStringFunc[T] {
	return format.Element[T]
}
