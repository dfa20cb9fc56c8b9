package rlist

import "fmt"

// Node is a list element. It carries an opaque payload, links to its
// neighbors within one owning chain, and optionally owns a child list,
// which makes it a branch of the enclosing tree.
//
// The payload is set at construction and never changes. Two nodes are equal
// iff their payloads are equal; links and tree position never participate.
type Node[V comparable] struct {
	value V
	prev  *Node[V]
	next  *Node[V]
	child *List[V]
	level int
}

// NewNode returns an unlinked node holding v.
func NewNode[V comparable](v V) *Node[V] {
	return &Node[V]{value: v}
}

// Value returns the payload.
func (n *Node[V]) Value() V { //nolint:ireturn
	return n.value
}

// Next returns the next node in the owning chain or nil at the back.
func (n *Node[V]) Next() *Node[V] { return n.next }

// Prev returns the previous node in the owning chain or nil at the front.
func (n *Node[V]) Prev() *Node[V] { return n.prev }

// Child returns the node's child list or nil if the node is a leaf.
func (n *Node[V]) Child() *List[V] { return n.child }

// SetChild attaches childList below the node, replacing any existing child
// list outright. Passing nil turns a branch back into a leaf.
func (n *Node[V]) SetChild(childList *List[V]) {
	n.child = childList
}

// IsBranch reports whether the node owns a child list.
func (n *Node[V]) IsBranch() bool { return n.child != nil }

// Level returns the node's depth within the enclosing tree.
func (n *Node[V]) Level() int { return n.level }

// SetLevel tags the node, and its child list if present, with level.
func (n *Node[V]) SetLevel(level int) {
	n.level = level
	if n.child != nil {
		n.child.SetLevel(level)
	}
}

// Len returns the length of the node's child list, 0 for a leaf.
func (n *Node[V]) Len() int {
	if n.child == nil {
		return 0
	}

	return n.child.Len()
}

// Equal reports whether o carries an equal payload. A nil o is never equal.
func (n *Node[V]) Equal(o *Node[V]) bool {
	return o != nil && n.value == o.value
}

// Copy returns a deep copy of the node: same payload and level, no links,
// and a deep copy of the child list if the node is a branch. The copy tests
// Equal to the source; mutating it never affects the source's list.
func (n *Node[V]) Copy() *Node[V] {
	out := &Node[V]{value: n.value, level: n.level}
	if n.child != nil {
		out.child = n.child.Copy()
	}

	return out
}

// Unlink clears the node's neighbor links and child list.
func (n *Node[V]) Unlink() {
	n.prev = nil
	n.next = nil
	n.child = nil
}

// detach clears only the neighbor links, keeping the child list.
func (n *Node[V]) detach() {
	n.prev = nil
	n.next = nil
}

func (n *Node[V]) String() string {
	return fmt.Sprintf("%v", n.value)
}
