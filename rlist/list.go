package rlist

import (
	"fmt"

	"go.expect.digital/list/internal/index"
)

// List is a doubly-linked list whose nodes may each own a nested List,
// forming a tree of lists. All positional methods accept negative indices,
// resolved as Len()+index before validation, so -1 addresses the last
// element.
//
// A shared cursor caches the most recently accessed position; it and any
// live iterators are reset through a size-change notification before every
// count-changing method returns.
type List[V comparable] struct {
	head  *Node[V]
	tail  *Node[V]
	top   int // last valid index, -1 when empty
	level int

	access    *cursor[V]
	flat      *Iter[V]
	depth     *DepthIter[V]
	listeners []sizeListener
}

// New returns an empty list at tree level 0.
func New[V comparable]() *List[V] {
	l := &List[V]{top: -1}
	l.access = newCursor[V](l)
	l.listeners = append(l.listeners, l.access)

	return l
}

// Len returns the number of top-level elements.
func (l *List[V]) Len() int { return l.top + 1 }

// Level returns the list's depth within the enclosing tree, 0 at the root.
func (l *List[V]) Level() int { return l.level }

// SetLevel tags the list with its depth within the enclosing tree.
func (l *List[V]) SetLevel(level int) { l.level = level }

func (l *List[V]) grow(n int) {
	l.top += n
	l.notify()
}

func (l *List[V]) shrink(n int) {
	l.top -= n
	l.notify()
}

func (l *List[V]) notify() {
	for _, listener := range l.listeners {
		listener.onSizeChanged()
	}
}

// IndexOf returns the index of the first node equal to target, -1 if no
// node matches. The -1 sentinel composes with negative indexing elsewhere.
func (l *List[V]) IndexOf(target *Node[V]) int {
	if l.top < 0 || !l.access.seekNode(target) {
		return -1
	}

	return l.access.row
}

// Seek positions the shared cursor on the element at i, so that a following
// At, Insert or PopAt near the same position is O(distance).
func (l *List[V]) Seek(i int) error {
	return l.access.seek(i)
}

// SeekNode positions the shared cursor on the first node equal to target and
// reports whether one exists. Absence is a normal outcome, not an error.
func (l *List[V]) SeekNode(target *Node[V]) bool {
	return l.top >= 0 && l.access.seekNode(target)
}

// Front returns the first node or nil if the list is empty. The node is
// aliased: mutating it affects the live list.
func (l *List[V]) Front() *Node[V] { return l.head }

// Back returns the last node or nil if the list is empty. The node is
// aliased: mutating it affects the live list.
func (l *List[V]) Back() *Node[V] { return l.tail }

// At returns the aliased node at i.
func (l *List[V]) At(i int) (*Node[V], error) {
	if err := l.access.seek(i); err != nil {
		return nil, err
	}

	return l.access.node, nil
}

// PushFront links n in as the new head.
func (l *List[V]) PushFront(n *Node[V]) {
	n.SetLevel(l.level + 1)
	n.prev = nil
	n.next = l.head

	if l.top < 0 {
		l.tail = n
	} else {
		l.head.prev = n
	}

	l.head = n
	l.grow(1)
}

// PushBack links n in as the new tail.
func (l *List[V]) PushBack(n *Node[V]) {
	if l.top < 0 {
		l.PushFront(n)

		return
	}

	n.SetLevel(l.level + 1)
	n.prev = l.tail
	n.next = nil
	l.tail.next = n
	l.tail = n
	l.grow(1)
}

// Insert splices n in so that it occupies index i. A normalized i of 0 is a
// front push; i past the end is a back push, not an error. The shared cursor
// is left on the inserted node.
func (l *List[V]) Insert(i int, n *Node[V]) error {
	i = index.Norm(i, l.Len())

	switch {
	case i < 0:
		return fmt.Errorf("insert at %d: %w", i, ErrIndexOutOfRange)
	case i == 0:
		l.PushFront(n)
	case i > l.top:
		l.PushBack(n)
	default:
		if err := l.access.seek(i); err != nil {
			return err
		}

		at := l.access.node
		n.SetLevel(l.level + 1)
		n.prev = at.prev
		n.next = at
		at.prev.next = n
		at.prev = n
		l.access.node = n
		l.access.row++
		l.grow(1)
	}

	return nil
}

// SpliceFront grafts the donor's whole chain in front of the list. The nodes
// transfer as-is, no copies and no re-leveling; the donor's own bookkeeping
// is unreliable afterwards and the donor must not be reused. An empty donor
// is a no-op.
func (l *List[V]) SpliceFront(donor *List[V]) {
	if donor.top < 0 {
		return
	}

	if l.top < 0 {
		l.SpliceBack(donor)

		return
	}

	donor.tail.next = l.head
	l.head.prev = donor.tail
	l.head = donor.head
	l.grow(donor.Len())
}

// SpliceBack grafts the donor's whole chain behind the list. See SpliceFront
// for the ownership contract.
func (l *List[V]) SpliceBack(donor *List[V]) {
	if donor.top < 0 {
		return
	}

	if l.top < 0 {
		l.head = donor.head
	} else {
		donor.head.prev = l.tail
		l.tail.next = donor.head
	}

	l.tail = donor.tail
	l.grow(donor.Len())
}

// SpliceAt grafts the donor's chain so that its first node occupies index i.
// Index clamping follows Insert.
func (l *List[V]) SpliceAt(i int, donor *List[V]) error {
	if donor.top < 0 {
		return nil
	}

	if l.top < 0 {
		l.SpliceBack(donor)

		return nil
	}

	i = index.Norm(i, l.Len())

	switch {
	case i < 0:
		return fmt.Errorf("splice at %d: %w", i, ErrIndexOutOfRange)
	case i == 0:
		l.SpliceFront(donor)
	case i > l.top:
		l.SpliceBack(donor)
	default:
		at, err := l.At(i)
		if err != nil {
			return err
		}

		before := at.prev
		donor.head.prev = before
		before.next = donor.head
		donor.tail.next = at
		at.prev = donor.tail
		l.grow(donor.Len())
	}

	return nil
}

// PopFront detaches and returns the head, nil if the list is empty. The
// returned node keeps its child list but its neighbor links are cleared.
func (l *List[V]) PopFront() *Node[V] {
	if l.top < 0 {
		return nil
	}

	victim := l.head
	l.head = victim.next

	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}

	victim.detach()
	l.shrink(1)

	return victim
}

// PopBack detaches and returns the tail, nil if the list is empty.
func (l *List[V]) PopBack() *Node[V] {
	if l.top < 0 {
		return nil
	}

	victim := l.tail
	l.tail = victim.prev

	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}

	victim.detach()
	l.shrink(1)

	return victim
}

// PopAt detaches and returns the node at i.
func (l *List[V]) PopAt(i int) (*Node[V], error) {
	i = index.Norm(i, l.Len())
	if err := index.Check(i, l.top); err != nil {
		return nil, err
	}

	switch i {
	case 0:
		return l.PopFront(), nil
	case l.top:
		return l.PopBack(), nil
	}

	if err := l.access.seek(i); err != nil {
		return nil, err
	}

	victim := l.access.node
	victim.prev.next = victim.next
	victim.next.prev = victim.prev
	l.access.node = victim.next
	victim.detach()
	l.shrink(1)

	return victim, nil
}

// RemoveFront drops elements 0 through hi, relinking the survivors. The
// dropped nodes are discarded, not returned; use CutFront to keep a copy.
func (l *List[V]) RemoveFront(hi int) error {
	hi = index.Norm(hi, l.Len())
	if err := index.Check(hi, l.top); err != nil {
		return err
	}

	last, err := l.At(hi)
	if err != nil {
		return err
	}

	l.head = last.next
	last.next = nil

	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}

	l.shrink(hi + 1)

	return nil
}

// RemoveBack drops elements lo through the end.
func (l *List[V]) RemoveBack(lo int) error {
	lo = index.Norm(lo, l.Len())
	if err := index.Check(lo, l.top); err != nil {
		return err
	}

	first, err := l.At(lo)
	if err != nil {
		return err
	}

	span := l.top - lo + 1
	l.tail = first.prev
	first.prev = nil

	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}

	l.shrink(span)

	return nil
}

// RemoveRange drops elements lo through hi, requiring lo < hi after
// negative-index resolution.
func (l *List[V]) RemoveRange(lo, hi int) error {
	lo, hi, err := index.Range(lo, hi, l.top)
	if err != nil {
		return err
	}

	switch {
	case lo == 0:
		return l.RemoveFront(hi)
	case hi == l.top:
		return l.RemoveBack(lo)
	}

	first, err := l.At(lo)
	if err != nil {
		return err
	}

	last, err := l.At(hi)
	if err != nil {
		return err
	}

	first.prev.next = last.next
	last.next.prev = first.prev
	first.prev = nil
	last.next = nil
	l.shrink(hi - lo + 1)

	return nil
}
