package rlist

// DepthIter traverses every payload-bearing element of the tree depth
// first: whenever the next top-level element is a branch node with a
// non-empty child list, traversal descends into that child's own depth
// iterator, inheriting the chosen direction, until it is exhausted, then
// resumes at this level. Branch nodes with children are structural and
// never yielded; a branch whose child list is empty still is.
//
// The loop shape, the mutation guard and the range surface match Iter; a
// size change at any currently open level surfaces ErrConcurrentMutation.
type DepthIter[V comparable] struct {
	it    *Iter[V]
	child *DepthIter[V]
}

// DepthIter returns the list's depth-first iterator with a full forward
// range, rewound and ready to loop. The same instance is reused across
// calls.
func (l *List[V]) DepthIter() *DepthIter[V] {
	if l.depth == nil {
		l.depth = &DepthIter[V]{it: newIter(l)}
		l.listeners = append(l.listeners, l.depth)
	}

	l.depth.ClearRange()
	l.depth.Rewind()

	return l.depth
}

// SetRange bounds the top-level traversal; descents always cover a child
// list in full. See Iter.SetRange.
func (d *DepthIter[V]) SetRange(start, end, step int) error {
	return d.it.SetRange(start, end, step)
}

// ClearRange resets to the full list, forward.
func (d *DepthIter[V]) ClearRange() { d.it.ClearRange() }

// Back resets to the full list traversed back-to-front, descendants
// included.
func (d *DepthIter[V]) Back() { d.it.Back() }

// Rewind repositions at the range start or end and abandons any open
// descent.
func (d *DepthIter[V]) Rewind() {
	d.it.Rewind()
	d.child = nil
}

// Next advances to the next leaf-or-empty-branch element, descending and
// resuming as needed, and reports whether one exists. After Next returns
// false, check Err.
func (d *DepthIter[V]) Next() bool {
	for {
		if d.child != nil {
			if d.child.Next() {
				return true
			}

			if err := d.child.Err(); err != nil {
				d.it.err = err
				d.it.busy = false

				return false
			}

			d.child = nil
		}

		if !d.it.Next() {
			return false
		}

		n := d.it.Node()
		if n.IsBranch() && n.child.Len() > 0 {
			sub := n.child.DepthIter()
			if d.it.step < 0 {
				sub.Back()
				sub.Rewind()
			}

			d.child = sub

			continue
		}

		return true
	}
}

// Node returns the element the last Next produced, aliased to its live
// list.
func (d *DepthIter[V]) Node() *Node[V] {
	if d.child != nil {
		return d.child.Node()
	}

	return d.it.Node()
}

// Key returns the produced element's index within its own list.
func (d *DepthIter[V]) Key() int {
	if d.child != nil {
		return d.child.Key()
	}

	return d.it.Key()
}

// Level returns the tree depth of the produced element's list.
func (d *DepthIter[V]) Level() int {
	if d.child != nil {
		return d.child.Level()
	}

	return d.it.Level()
}

// Peek returns the node the next call to Next would consider at the
// currently open level, without consuming it.
func (d *DepthIter[V]) Peek() *Node[V] {
	if d.child != nil {
		return d.child.Peek()
	}

	return d.it.Peek()
}

// Err returns ErrConcurrentMutation if any currently open level observed a
// size change mid-traversal, nil otherwise.
func (d *DepthIter[V]) Err() error { return d.it.err }

func (d *DepthIter[V]) onSizeChanged() {
	d.it.onSizeChanged()
	d.child = nil
}
