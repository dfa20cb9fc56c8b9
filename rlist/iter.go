package rlist

import (
	"fmt"

	"go.expect.digital/list/internal/index"
)

// Iter traverses a list's own top-level nodes. It is obtained through
// List.Iter, which reuses one lazily created instance per list, and follows
// the database/sql.Rows shape:
//
//	it := l.Iter()
//	for it.Next() {
//		n := it.Node()
//		...
//	}
//	if err := it.Err(); err != nil {
//		// the list was mutated mid-traversal
//	}
//
// Range, direction and step are configured between obtaining the iterator
// and Rewind. A size change while the iterator is mid-traversal invalidates
// it: the next Next returns false and Err reports ErrConcurrentMutation. A
// size change while idle only resets the range on the next Rewind.
type Iter[V comparable] struct {
	cur *cursor[V]

	start, end, step int

	sizeChanged bool
	busy        bool
	invalid     bool
	started     bool
	err         error
}

func newIter[V comparable](l *List[V]) *Iter[V] {
	return &Iter[V]{cur: newCursor(l), step: 1, sizeChanged: true}
}

// Iter returns the list's flat iterator with a full forward range, rewound
// and ready to loop. The same instance is reused across calls.
func (l *List[V]) Iter() *Iter[V] {
	if l.flat == nil {
		l.flat = newIter(l)
		l.listeners = append(l.listeners, l.flat)
	}

	l.flat.ClearRange()
	l.flat.Rewind()

	return l.flat
}

// SetRange bounds the traversal to [start, end] stepping by step positions
// per Next. Both bounds resolve negative indices like list access, then
// clamp into the list; end < start after resolution or a zero step is
// ErrInvalidRange. A negative step traverses backward.
func (it *Iter[V]) SetRange(start, end, step int) error {
	if step == 0 {
		return fmt.Errorf("zero step: %w", ErrInvalidRange)
	}

	n := it.cur.list.Len()
	start = index.Norm(start, n)
	end = index.Norm(end, n)

	if end < start {
		return fmt.Errorf("end %d < start %d: %w", end, start, ErrInvalidRange)
	}

	if start < 0 {
		start = 0
	}

	if end > it.cur.list.top {
		end = it.cur.list.top
	}

	it.start, it.end, it.step = start, end, step
	it.sizeChanged = false

	return nil
}

// ClearRange resets to the full list, forward, one position per Next.
func (it *Iter[V]) ClearRange() {
	it.start = 0
	it.end = it.cur.list.top
	it.step = 1
	it.sizeChanged = false
}

// Back resets to the full list traversed back-to-front.
func (it *Iter[V]) Back() {
	it.start = 0
	it.end = it.cur.list.top
	it.step = -1
	it.sizeChanged = false
}

// Rewind positions the iterator at the range start (forward) or end
// (backward) and marks it mid-traversal. If the list's size changed since
// the range was last set explicitly, the range resets to the full list
// first; an explicitly set range survives the rewind.
func (it *Iter[V]) Rewind() {
	if it.sizeChanged {
		it.ClearRange()
	}

	pos := it.start
	if it.step < 0 {
		pos = it.end
	}

	// Empty list or empty range: the seek fails, leaving no node, and the
	// first Next reports exhaustion.
	_ = it.cur.seek(pos)

	it.busy = true
	it.started = false
	it.invalid = false
	it.err = nil
}

// Next advances to the next element of the range and reports whether one
// exists. The first call after Rewind stays on the start position. After
// Next returns false, check Err.
func (it *Iter[V]) Next() bool {
	if it.invalid {
		it.invalid = false
		it.busy = false
		it.err = ErrConcurrentMutation

		return false
	}

	if !it.busy {
		return false
	}

	if it.started {
		it.cur.step(it.step)
	}

	it.started = true

	if it.cur.node == nil || it.cur.row < it.start || it.cur.row > it.end {
		it.busy = false

		return false
	}

	return true
}

// Node returns the element the last Next produced, aliased to the live
// list. Before the first Next it returns the element about to be produced.
func (it *Iter[V]) Node() *Node[V] { return it.cur.node }

// Key returns the index of the element the last Next produced (or, before
// the first Next, of the element about to be produced).
func (it *Iter[V]) Key() int { return it.cur.row }

// Level returns the tree depth of the list being traversed.
func (it *Iter[V]) Level() int { return it.cur.list.level }

// Peek returns the node the next call to Next would produce, without
// consuming it, or nil at the end of the range.
func (it *Iter[V]) Peek() *Node[V] {
	if !it.busy {
		return nil
	}

	if !it.started {
		return it.cur.node
	}

	row := it.cur.row + it.step
	if row < it.start || row > it.end {
		return nil
	}

	n := it.cur.node

	for steps := it.step; steps < 0 && n != nil; steps++ {
		n = n.prev
	}

	for steps := it.step; steps > 0 && n != nil; steps-- {
		n = n.next
	}

	return n
}

// Err returns ErrConcurrentMutation if the list's size changed while the
// iterator was mid-traversal, nil otherwise.
func (it *Iter[V]) Err() error { return it.err }

func (it *Iter[V]) onSizeChanged() {
	if it.busy {
		it.invalid = true
		it.busy = false
	}

	it.cur.onSizeChanged()
	it.sizeChanged = true
}
