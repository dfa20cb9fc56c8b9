package rlist

import "go.expect.digital/list/internal/index"

// The Slice family returns brand-new lists of deep-copied nodes with their
// own link chains, safe to mutate independently of the source. The Cut
// family additionally removes the sliced span from the source.

// copyRange copies up to n nodes into a fresh list, starting at first.
func (l *List[V]) copyRange(first *Node[V], n int) *List[V] {
	out := New[V]()
	for s := first; n > 0 && s != nil; s = s.next {
		out.PushBack(s.Copy())
		n--
	}

	return out
}

// SliceFront returns a deep copy of elements 0 through hi.
func (l *List[V]) SliceFront(hi int) (*List[V], error) {
	hi = index.Norm(hi, l.Len())
	if err := index.Check(hi, l.top); err != nil {
		return nil, err
	}

	return l.copyRange(l.head, hi+1), nil
}

// SliceBack returns a deep copy of elements lo through the end.
func (l *List[V]) SliceBack(lo int) (*List[V], error) {
	first, err := l.At(lo)
	if err != nil {
		return nil, err
	}

	return l.copyRange(first, l.top-l.access.row+1), nil
}

// Slice returns a deep copy of elements lo through hi, requiring lo < hi
// after negative-index resolution.
func (l *List[V]) Slice(lo, hi int) (*List[V], error) {
	lo, hi, err := index.Range(lo, hi, l.top)
	if err != nil {
		return nil, err
	}

	first, err := l.At(lo)
	if err != nil {
		return nil, err
	}

	return l.copyRange(first, hi-lo+1), nil
}

// SliceToNode returns a deep copy of the elements from the front through the
// first node equal to last, or through the end if none matches.
func (l *List[V]) SliceToNode(last *Node[V]) *List[V] {
	out := New[V]()

	for s := l.head; s != nil; s = s.next {
		out.PushBack(s.Copy())

		if s.Equal(last) {
			break
		}
	}

	return out
}

// SliceFromNode returns a deep copy of the elements from the first node
// equal to first through the end, or an empty list if none matches.
func (l *List[V]) SliceFromNode(first *Node[V]) *List[V] {
	out := New[V]()

	if l.top < 0 || !l.access.seekNode(first) {
		return out
	}

	for s := l.access.node; s != nil; s = s.next {
		out.PushBack(s.Copy())
	}

	return out
}

// SliceBetween returns a deep copy of the elements from the first node equal
// to first through the next node equal to last, matching each by payload
// equality. Both must occur somewhere in the list, else the result is empty.
func (l *List[V]) SliceBetween(first, last *Node[V]) *List[V] {
	out := New[V]()

	if l.top < 0 || !l.access.seekNode(first) {
		return out
	}

	start := l.access.node
	if !l.access.seekNode(last) {
		return out
	}

	for s := start; s != nil; s = s.next {
		out.PushBack(s.Copy())

		if s.Equal(last) {
			break
		}
	}

	return out
}

// CutFront slices elements 0 through hi out of the list: the returned list
// holds deep copies, the source loses the span.
func (l *List[V]) CutFront(hi int) (*List[V], error) {
	out, err := l.SliceFront(hi)
	if err != nil {
		return nil, err
	}

	if err := l.RemoveFront(hi); err != nil {
		return nil, err
	}

	return out, nil
}

// CutBack slices elements lo through the end out of the list.
func (l *List[V]) CutBack(lo int) (*List[V], error) {
	out, err := l.SliceBack(lo)
	if err != nil {
		return nil, err
	}

	if err := l.RemoveBack(lo); err != nil {
		return nil, err
	}

	return out, nil
}

// Cut slices elements lo through hi out of the list.
func (l *List[V]) Cut(lo, hi int) (*List[V], error) {
	out, err := l.Slice(lo, hi)
	if err != nil {
		return nil, err
	}

	if err := l.RemoveRange(lo, hi); err != nil {
		return nil, err
	}

	return out, nil
}
