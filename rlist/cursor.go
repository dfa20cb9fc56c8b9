package rlist

import "go.expect.digital/list/internal/index"

// sizeListener is notified synchronously by the owning list after every
// count-changing mutation, before the mutating call returns.
type sizeListener interface {
	onSizeChanged()
}

// cursor caches a node together with its index so that repeated access near
// the same position never rescans from an end. The list's shared cursor and
// each iterator own one; every cursor resets to the front when the list's
// length changes.
type cursor[V comparable] struct {
	list *List[V]
	node *Node[V]
	row  int
}

func newCursor[V comparable](l *List[V]) *cursor[V] {
	return &cursor[V]{list: l}
}

func (c *cursor[V]) onSizeChanged() {
	c.row = 0
	c.node = c.list.head
}

// seek positions the cursor on the node at i. The index may be negative.
// A one-step move follows a link; anything further scans from the cheaper
// of the cached position, the head and the tail.
func (c *cursor[V]) seek(i int) error {
	i = index.Norm(i, c.list.Len())
	if err := index.Check(i, c.list.top); err != nil {
		return err
	}

	switch {
	case c.node == nil:
		c.seekFront(i)
	case i == c.row:
		// already there
	case i == c.row+1:
		c.row = i
		c.node = c.node.next
	case i == c.row-1:
		c.row = i
		c.node = c.node.prev
	case c.list.top+1-i < i:
		c.seekBack(i)
	default:
		c.seekFront(i)
	}

	return nil
}

func (c *cursor[V]) seekFront(i int) {
	for c.node, c.row = c.list.head, 0; c.row < i; c.row++ {
		c.node = c.node.next
	}
}

func (c *cursor[V]) seekBack(i int) {
	for c.node, c.row = c.list.tail, c.list.top; c.row > i; c.row-- {
		c.node = c.node.prev
	}
}

// seekNode scans forward from the head for the first node equal to target.
// Equality, not identity, is the match criterion, so duplicate payloads
// resolve to the first occurrence.
func (c *cursor[V]) seekNode(target *Node[V]) bool {
	c.node = c.list.head
	c.row = 0

	for c.node != nil && !c.node.Equal(target) {
		c.row++
		c.node = c.node.next
	}

	return c.node != nil
}

// step moves the cursor by n positions, negative n moving backward. The row
// is updated even when the walk runs off an end, leaving the node nil.
func (c *cursor[V]) step(n int) {
	c.row += n

	for ; n < 0 && c.node != nil; n++ {
		c.node = c.node.prev
	}

	for ; n > 0 && c.node != nil; n-- {
		c.node = c.node.next
	}
}
