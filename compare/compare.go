// Package compare exposes the comparator contract shared by the ordered containers in this module.
package compare

import "golang.org/x/exp/constraints"

// Comparator defines a total order over T which the ordered containers use to rank elements.
//
// The return value follows the usual three-way convention: a negative value means 'a' has strictly higher priority
// than 'b', zero means the two are of equal priority, and a positive value means 'a' has lower priority than 'b'.
type Comparator[T any] func(a, b T) int

// Natural returns a comparator ordering values ascending, meaning the smallest value has the highest priority.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}

		return 0
	}
}

// Reverse returns a comparator which inverts the order defined by the given comparator.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -cmp(a, b)
	}
}
