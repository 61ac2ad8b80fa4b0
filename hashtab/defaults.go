package hashtab

import (
	"fmt"
	"hash/fnv"
)

// EqualString is the default equality function for string keys.
func EqualString(a, b string) bool {
	return a == b
}

// HashString is the default hash function for string keys, an FNV-1a hash over the string's bytes.
func HashString(k string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(k)) //nolint:errcheck

	return h.Sum32()
}

// EqualPointer is the default equality function for pointer keys; two keys are equal when they reference the same
// object.
func EqualPointer[T any](a, b *T) bool {
	return a == b
}

// HashPointer is the default hash function for pointer keys, derived from the pointee's address rather than its
// contents.
func HashPointer[T any](k *T) uint32 {
	return HashString(fmt.Sprintf("%p", k))
}
