package rlist

import (
	"fmt"
	"strings"
)

// Copy returns a deep copy of the list: a fresh chain of copied nodes, each
// copy recursively deep-copying its child list. Element-for-element the copy
// tests Equal to the source, but shares no nodes with it.
func (l *List[V]) Copy() *List[V] {
	out := New[V]()
	out.level = l.level

	for s := l.head; s != nil; s = s.next {
		out.PushBack(s.Copy())
	}

	return out
}

// Reverse returns a deep copy of the list in back-to-front order.
func (l *List[V]) Reverse() *List[V] {
	out := New[V]()
	out.level = l.level

	for s := l.tail; s != nil; s = s.prev {
		out.PushBack(s.Copy())
	}

	return out
}

// Nodes returns the top-level nodes front-to-back. The nodes are aliased,
// still link-connected to the live list: mutating them mutates the list.
func (l *List[V]) Nodes() []*Node[V] {
	out := make([]*Node[V], 0, l.Len())
	for s := l.head; s != nil; s = s.next {
		out = append(out, s)
	}

	return out
}

// Values returns the top-level payloads front-to-back.
func (l *List[V]) Values() []V {
	out := make([]V, 0, l.Len())
	for s := l.head; s != nil; s = s.next {
		out = append(out, s.value)
	}

	return out
}

// ByLevel groups every node of the tree as [depth][listIndex][position]:
// depth 0 holds the top-level list, each deeper row holds, left to right,
// one slice per child list spawned by a branch node at the previous depth.
// Branch nodes appear at their own depth. Levels are refreshed first, since
// splices can leave them stale. An empty list yields an empty outer slice.
func (l *List[V]) ByLevel() [][][]*Node[V] {
	if l.top < 0 {
		return [][][]*Node[V]{}
	}

	maxLevel := l.RefreshLevels(0)
	out := make([][][]*Node[V], maxLevel+1)
	frontier := []*List[V]{l}

	for depth := 0; len(frontier) > 0; depth++ {
		var next []*List[V]

		rows := make([][]*Node[V], 0, len(frontier))

		for _, cur := range frontier {
			row := make([]*Node[V], 0, cur.Len())

			for s := cur.head; s != nil; s = s.next {
				row = append(row, s)

				if s.IsBranch() && s.child.Len() > 0 {
					next = append(next, s.child)
				}
			}

			rows = append(rows, row)
		}

		out[depth] = rows
		frontier = next
	}

	return out
}

// String renders the tree for inspection: one "index: value" line per node,
// branch nodes printing their index followed by the child list indented four
// spaces deeper. Debug only, the format is not stable.
func (l *List[V]) String() string {
	var b strings.Builder

	l.dump(&b, 0)

	return b.String()
}

func (l *List[V]) dump(b *strings.Builder, indent int) {
	tab := strings.Repeat(" ", 4*indent)
	i := 0

	for s := l.head; s != nil; s = s.next {
		if s.IsBranch() {
			fmt.Fprintf(b, "%s%d:\n", tab, i)
			s.child.dump(b, indent+1)
		} else {
			fmt.Fprintf(b, "%s%d: %v\n", tab, i, s.value)
		}

		i++
	}
}
