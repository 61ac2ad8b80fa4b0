package pqueue

// node wraps a single payload stored in a queue.
//
// The same node may be held by multiple queues created via 'Copy'; refs tracks the number of queues which currently
// hold it. The free callback supplied to 'Destroy' only runs on a payload once the last owning queue releases its
// node, which means a transient copy may be created and torn down without affecting payloads still owned by the
// original queue.
type node[T any] struct {
	payload T
	refs    int
}

// release drops one owner from the node, returning a boolean indicating whether this was the last owner.
func (n *node[T]) release() bool {
	n.refs--
	return n.refs == 0
}
