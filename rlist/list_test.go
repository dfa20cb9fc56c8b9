package rlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func build(values ...string) *List[string] {
	l := New[string]()
	for _, v := range values {
		l.PushBack(NewNode(v))
	}

	return l
}

// assertList checks length, front-to-back values and the back-to-front link
// chain.
func assertList[V comparable](t *testing.T, want []V, l *List[V]) {
	t.Helper()

	assert.Equal(t, len(want), l.Len())
	assert.Equal(t, want, l.Values())

	for i, s := len(want)-1, l.Back(); i >= 0; i, s = i-1, s.Prev() {
		if !assert.NotNil(t, s, "prev chain ends early at %d", i) {
			return
		}

		assert.Equal(t, want[i], s.Value())
	}
}

func TestPushFront(t *testing.T) {
	t.Parallel()

	l := New[string]()

	l.PushFront(NewNode("a"))
	assertList(t, []string{"a"}, l)

	l.PushFront(NewNode("b"))
	assertList(t, []string{"b", "a"}, l)

	l.PushFront(NewNode("c"))
	assertList(t, []string{"c", "b", "a"}, l)
}

func TestPushBack(t *testing.T) {
	t.Parallel()

	l := New[string]()

	l.PushBack(NewNode("a"))
	assertList(t, []string{"a"}, l)

	l.PushBack(NewNode("b"))
	assertList(t, []string{"a", "b"}, l)

	assert.Equal(t, 1, l.Front().Level())
}

func TestInsert(t *testing.T) {
	t.Parallel()

	l := build("a", "c")

	assert.NoError(t, l.Insert(1, NewNode("b")))
	assertList(t, []string{"a", "b", "c"}, l)

	// index 0 is a front push
	assert.NoError(t, l.Insert(0, NewNode("x")))
	assertList(t, []string{"x", "a", "b", "c"}, l)

	// past the end is a back push, not an error
	assert.NoError(t, l.Insert(99, NewNode("z")))
	assertList(t, []string{"x", "a", "b", "c", "z"}, l)

	// negative index counts from the back
	assert.NoError(t, l.Insert(-1, NewNode("y")))
	assertList(t, []string{"x", "a", "b", "c", "y", "z"}, l)

	assert.ErrorIs(t, l.Insert(-99, NewNode("w")), ErrIndexOutOfRange)
}

func TestPopFrontBack(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c")

	assert.Equal(t, "a", l.PopFront().Value())
	assert.Equal(t, "c", l.PopBack().Value())
	assertList(t, []string{"b"}, l)

	assert.Equal(t, "b", l.PopBack().Value())
	assert.Nil(t, l.PopFront())
	assert.Nil(t, l.PopBack())
	assertList(t, []string{}, l)
}

func TestPushPopInverse(t *testing.T) {
	t.Parallel()

	l := build("a", "b")
	x := NewNode("x")

	l.PushFront(x)
	assert.Same(t, x, l.PopFront())
	assertList(t, []string{"a", "b"}, l)

	l.PushBack(x)
	assert.Same(t, x, l.PopBack())
	assertList(t, []string{"a", "b"}, l)
}

func TestPopAt(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c", "d")

	n, err := l.PopAt(1)
	assert.NoError(t, err)
	assert.Equal(t, "b", n.Value())
	assert.Nil(t, n.Next())
	assert.Nil(t, n.Prev())
	assertList(t, []string{"a", "c", "d"}, l)

	n, err = l.PopAt(-1)
	assert.NoError(t, err)
	assert.Equal(t, "d", n.Value())
	assertList(t, []string{"a", "c"}, l)

	_, err = l.PopAt(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assertList(t, []string{"a", "c"}, l)
}

func TestAt(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c", "d")

	for i, want := range []string{"a", "b", "c", "d"} {
		n, err := l.At(i)
		assert.NoError(t, err)
		assert.Equal(t, want, n.Value())
	}

	// negative-index identities
	n, err := l.At(-1)
	assert.NoError(t, err)
	assert.Same(t, l.Back(), n)

	n, err = l.At(-l.Len())
	assert.NoError(t, err)
	assert.Same(t, l.Front(), n)

	n, err = l.At(-2)
	assert.NoError(t, err)
	assert.Equal(t, "c", n.Value())

	_, err = l.At(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.At(-5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAtAliases(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c")

	n, err := l.At(1)
	assert.NoError(t, err)

	// the returned node is the live node
	assert.Same(t, l.Front().Next(), n)
}

func TestSeek(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c", "d", "e")

	assert.NoError(t, l.Seek(3))
	assert.Equal(t, "d", l.access.node.Value())

	// one-step shortcuts follow a single link
	assert.NoError(t, l.Seek(4))
	assert.Equal(t, "e", l.access.node.Value())
	assert.NoError(t, l.Seek(3))
	assert.Equal(t, "d", l.access.node.Value())

	assert.ErrorIs(t, l.Seek(5), ErrIndexOutOfRange)
}

func TestSeekNode(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "b", "c")

	// match is by payload equality, first occurrence wins
	assert.True(t, l.SeekNode(NewNode("b")))
	assert.Equal(t, 1, l.access.row)

	assert.False(t, l.SeekNode(NewNode("z")))
	assert.False(t, New[string]().SeekNode(NewNode("a")))
}

func TestIndexOf(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "b", "c")

	assert.Equal(t, 1, l.IndexOf(NewNode("b")))
	assert.Equal(t, 3, l.IndexOf(NewNode("c")))
	assert.Equal(t, -1, l.IndexOf(NewNode("z")))
	assert.Equal(t, -1, New[string]().IndexOf(NewNode("a")))
}

func TestRemoveFront(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c", "d")

	assert.NoError(t, l.RemoveFront(1))
	assertList(t, []string{"c", "d"}, l)

	assert.NoError(t, l.RemoveFront(-1))
	assertList(t, []string{}, l)

	assert.ErrorIs(t, l.RemoveFront(0), ErrIndexOutOfRange)
}

func TestRemoveBack(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c", "d")

	assert.NoError(t, l.RemoveBack(2))
	assertList(t, []string{"a", "b"}, l)

	assert.NoError(t, l.RemoveBack(0))
	assertList(t, []string{}, l)
}

func TestRemoveRange(t *testing.T) {
	t.Parallel()

	l := build("a", "b", "c", "d", "e")

	assert.NoError(t, l.RemoveRange(1, 3))
	assertList(t, []string{"a", "e"}, l)

	assert.ErrorIs(t, l.RemoveRange(1, 1), ErrInvalidRange)
	assert.ErrorIs(t, l.RemoveRange(0, 5), ErrIndexOutOfRange)
	assertList(t, []string{"a", "e"}, l)
}

func TestSpliceFront(t *testing.T) {
	t.Parallel()

	l := build("c", "d")
	donor := build("a", "b")

	l.SpliceFront(donor)
	assertList(t, []string{"a", "b", "c", "d"}, l)

	empty := New[string]()
	l.SpliceFront(empty)
	assertList(t, []string{"a", "b", "c", "d"}, l)

	receiver := New[string]()
	receiver.SpliceFront(build("x"))
	assertList(t, []string{"x"}, receiver)
}

func TestSpliceBack(t *testing.T) {
	t.Parallel()

	l := build("a", "b")

	l.SpliceBack(build("c", "d"))
	assertList(t, []string{"a", "b", "c", "d"}, l)

	receiver := New[string]()
	receiver.SpliceBack(build("x", "y"))
	assertList(t, []string{"x", "y"}, receiver)
}

func TestSpliceAt(t *testing.T) {
	t.Parallel()

	l := build("a", "d")

	assert.NoError(t, l.SpliceAt(1, build("b", "c")))
	assertList(t, []string{"a", "b", "c", "d"}, l)

	// index 0 grafts in front, past-the-end grafts behind
	assert.NoError(t, l.SpliceAt(0, build("x")))
	assertList(t, []string{"x", "a", "b", "c", "d"}, l)

	assert.NoError(t, l.SpliceAt(99, build("z")))
	assertList(t, []string{"x", "a", "b", "c", "d", "z"}, l)

	assert.ErrorIs(t, l.SpliceAt(-99, build("w")), ErrIndexOutOfRange)
}

func TestSpliceTransfersNodes(t *testing.T) {
	t.Parallel()

	l := build("a")
	donor := build("b")
	donated := donor.Front()

	l.SpliceBack(donor)

	// ownership transfer, not a copy
	assert.Same(t, donated, l.Back())
}

func TestNodeEqual(t *testing.T) {
	t.Parallel()

	a := NewNode("a")

	assert.True(t, a.Equal(NewNode("a")))
	assert.False(t, a.Equal(NewNode("b")))
	assert.False(t, a.Equal(nil))

	// position never participates in equality
	l := build("x", "a")
	assert.True(t, a.Equal(l.Back()))
}
