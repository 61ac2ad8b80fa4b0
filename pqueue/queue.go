// Package pqueue exposes a fixed-capacity generic priority queue implemented using a binary heap.
package pqueue

import (
	"fmt"
	"strings"

	"github.com/fixedcap/collections/compare"
	"github.com/fixedcap/collections/errdefs"
	"github.com/fixedcap/collections/log"
)

// FreeFunc is a cleanup callback run on each payload released during 'Destroy'. Payload ownership always lies with
// the caller, the queue only invokes the callback at the point where no queue holds the payload anymore.
type FreeFunc[T any] func(payload T) error

// Queue implements a priority queue with a capacity fixed at creation; it accepts a generic payload and ranks
// elements using the comparator bound at creation.
//
// The element with the highest priority (the one the comparator orders first) is always the one returned by
// 'Peek'/'Remove'. The queue never grows, inserting beyond the capacity is reported as an error.
//
// NOTE: A Queue is not safe for concurrent use.
type Queue[T any] struct {
	capacity int
	length   int
	cmp      compare.Comparator[T]

	// slots is the backing array for the binary heap; exactly the first 'length' entries are populated and
	// heap-ordered.
	slots []*node[T]

	destroyed bool
}

// New creates an empty queue which can hold up to capacity elements, ranked by the given comparator.
func New[T any](capacity int, cmp compare.Comparator[T]) (*Queue[T], error) {
	if capacity < 0 {
		return nil, InvalidCapacityError{capacity: capacity}
	}

	if cmp == nil {
		return nil, ErrNilComparator
	}

	return &Queue[T]{capacity: capacity, cmp: cmp, slots: make([]*node[T], capacity)}, nil
}

// Insert adds the given payload to the queue, returning a 'FullError' if the queue is already at capacity.
func (q *Queue[T]) Insert(payload T) error {
	if q.destroyed {
		return ErrDestroyed
	}

	if q.length >= q.capacity {
		return FullError{length: q.length + 1, capacity: q.capacity}
	}

	q.slots[q.length] = &node[T]{payload: payload, refs: 1}
	q.length++

	q.siftUp(q.length - 1)

	return nil
}

// Peek returns the highest priority payload without removing it, returning 'ErrEmpty' if the queue contains no
// elements.
func (q *Queue[T]) Peek() (T, error) {
	if q.destroyed {
		return *new(T), ErrDestroyed
	}

	if q.length == 0 {
		return *new(T), ErrEmpty
	}

	return q.slots[0].payload, nil
}

// Remove removes and returns the highest priority payload, returning 'ErrEmpty' if the queue contains no elements.
//
// NOTE: The payload is handed back to the caller as-is; 'Remove' never runs a cleanup callback on it.
func (q *Queue[T]) Remove() (T, error) {
	if q.destroyed {
		return *new(T), ErrDestroyed
	}

	if q.length == 0 {
		return *new(T), ErrEmpty
	}

	root := q.slots[0]

	q.length--
	q.slots[0] = q.slots[q.length]
	q.slots[q.length] = nil

	if q.length > 0 {
		q.siftDown(0)
	}

	root.release()

	return root.payload, nil
}

// IsEmpty returns a boolean indicating whether the queue contains no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.length == 0
}

// Len returns the number of elements currently in the queue.
func (q *Queue[T]) Len() int {
	return q.length
}

// Size returns the maximum number of elements the queue can hold.
func (q *Queue[T]) Size() int {
	return q.capacity
}

// Copy returns a new queue with the same capacity, comparator and elements as this one.
//
// The two queues are operationally independent, inserting into or removing from one does not affect the other. The
// payloads themselves are not duplicated however; both queues share the underlying nodes, and a cleanup callback
// supplied to 'Destroy' only runs on a shared payload once the last owning queue releases it.
func (q *Queue[T]) Copy() (*Queue[T], error) {
	if q.destroyed {
		return nil, ErrDestroyed
	}

	dup := &Queue[T]{
		capacity: q.capacity,
		length:   q.length,
		cmp:      q.cmp,
		slots:    make([]*node[T], q.capacity),
	}

	for i := 0; i < q.length; i++ {
		q.slots[i].refs++
		dup.slots[i] = q.slots[i]
	}

	return dup, nil
}

// Destroy releases the queue and every node it holds, running the given cleanup callback on each payload which is no
// longer held by any queue. Cleanup failures do not stop teardown; they're aggregated and returned once every node
// has been released.
//
// A <nil> callback is valid and means payloads are never cleaned up by the queue, for example when they're borrowed
// or not resource-like at all. Any operation on the queue after this call returns 'ErrDestroyed'.
func (q *Queue[T]) Destroy(free FreeFunc[T]) error {
	if q.destroyed {
		return ErrDestroyed
	}

	q.destroyed = true

	var (
		errs  = errdefs.MultiError{Prefix: "failed to destroy queue: "}
		freed int
	)

	for i := 0; i < q.length; i++ {
		n := q.slots[i]
		q.slots[i] = nil

		if !n.release() || free == nil {
			continue
		}

		freed++

		if err := free(n.payload); err != nil {
			errs.Add(fmt.Errorf("failed to free element %d: %w", i, err))
		}
	}

	log.Tracef("(PQueue) Destroyed queue releasing %d nodes of which %d were freed", q.length, freed)

	q.slots = nil
	q.length = 0

	return errs.ErrOrNil()
}

// Drain removes all the elements from the queue in priority order running the given function on each payload. In the
// event of an error, removal stops early, and returns the error.
func (q *Queue[T]) Drain(fn func(payload T) error) error {
	for !q.IsEmpty() {
		payload, err := q.Remove()
		if err != nil {
			return err
		}

		if err := fn(payload); err != nil {
			return err
		}
	}

	return nil
}

// siftUp restores the heap property after an insertion at the given index by bubbling the node up towards the root
// while it outranks its parent.
func (q *Queue[T]) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2

		if q.cmp(q.slots[idx].payload, q.slots[parent].payload) >= 0 {
			break
		}

		q.slots[idx], q.slots[parent] = q.slots[parent], q.slots[idx]

		idx = parent
	}
}

// siftDown restores the heap property after a removal by walking the node at the given index down, swapping it with
// its highest priority child until neither child outranks it. Children of equal priority resolve to the left child.
func (q *Queue[T]) siftDown(idx int) {
	for {
		var (
			left  = 2*idx + 1
			right = 2*idx + 2
			next  = idx
		)

		if left < q.length && q.cmp(q.slots[left].payload, q.slots[next].payload) < 0 {
			next = left
		}

		if right < q.length && q.cmp(q.slots[right].payload, q.slots[next].payload) < 0 {
			next = right
		}

		if next == idx {
			return
		}

		q.slots[idx], q.slots[next] = q.slots[next], q.slots[idx]

		idx = next
	}
}

// Render returns a space-separated rendering of the queue's payloads in priority order, each one converted to a
// string using the given callback.
//
// The queue itself is left untouched; rendering drains a transient copy which shares this queue's nodes, then tears
// the copy down without running any cleanup on the payloads.
func (q *Queue[T]) Render(toString ToStringFunc[T]) (string, error) {
	if toString == nil {
		toString = DefaultToString[T]()
	}

	dup, err := q.Copy()
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	//nolint:errcheck
	dup.Drain(func(payload T) error {
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}

		builder.WriteString(toString(payload))

		return nil
	})

	//nolint:errcheck
	dup.Destroy(nil)

	return builder.String(), nil
}

// Print writes the queue's payloads to standard output in priority order, see 'Render'.
func (q *Queue[T]) Print(toString ToStringFunc[T]) error {
	rendered, err := q.Render(toString)
	if err != nil {
		return err
	}

	fmt.Println(rendered)

	return nil
}
