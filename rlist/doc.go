/*
Package rlist implements a doubly-linked list whose nodes can each own a
nested list, making the container simultaneously a list and a tree of lists.

The list is single-threaded by design: one writer, no internal locking.
Every count-changing mutation synchronously resets the shared access cursor
and invalidates any iterator that is mid-traversal, so stale positions are
never served.

All positional methods accept negative indices: -1 is the last element,
-Len() the first. Note that negative indexing is one-based, because -0 is
not a thing.

What a method returns tells you what you may do with it:

  - Methods returning a *List (Slice*, Cut*, Copy, Reverse, Detach) return
    deep copies with freshly built chains, safe to mutate independently.
  - Methods returning a slice (Nodes, ByLevel) return aliases: the original
    nodes, still link-connected to the live list.
  - Methods returning a single *Node (Front, Back, At, Pop*) return the live
    node.

In every case the payload survives and tests Equal, even through a copy.

# Example Usage

## Flat access

	l := rlist.New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		l.PushBack(rlist.NewNode(v))
	}

	l.Front().Value()        // "a"
	n, _ := l.At(-2)         // n.Value() == "c"
	l.Values()               // ["a" "b" "c" "d"]
	l.Reverse().Values()     // ["d" "c" "b" "a"], a deep copy

	it := l.Iter()
	for it.Next() {
		fmt.Println(it.Key(), it.Node())
	}
	if err := it.Err(); err != nil {
		// the list was mutated mid-loop
	}

## Trees

	tree := rlist.New[string]()
	tree.PushBack(rlist.NewNode("a"))
	tree.PushBack(rlist.NewNode("b"))

	child := rlist.New[string]()
	child.PushBack(rlist.NewNode("x"))
	child.PushBack(rlist.NewNode("y"))

	// Hang child below the node at index 1.
	err := tree.Attach(child, 1)

	// Depth-first traversal yields a, x, y: the branch node "b" is
	// structural and skipped.
	dit := tree.DepthIter()
	for dit.Next() {
		fmt.Println(dit.Level(), dit.Node())
	}

	detached, err := tree.Detach(1) // detached is child, "b" is a leaf again
*/
package rlist
