package rlist

import "fmt"

// Attach hangs child below the node addressed by path, one index per tree
// depth. At the terminal path step the indexed node's child list is replaced
// outright, never merged; shallower steps recurse into the indexed node's
// child list.
func (l *List[V]) Attach(child *List[V], path ...int) error {
	if len(path) == 0 {
		return fmt.Errorf("attach: empty index path: %w", ErrInvalidRange)
	}

	return l.attach(child, path, 0)
}

func (l *List[V]) attach(child *List[V], path []int, depth int) error {
	target, err := l.At(path[depth])
	if err != nil {
		return fmt.Errorf("attach at path step %d: %w", depth, err)
	}

	if depth == len(path)-1 {
		child.SetLevel(l.level + 1)
		target.SetChild(child)

		return nil
	}

	if !target.IsBranch() {
		return fmt.Errorf("attach at path step %d: node %v has no child list: %w",
			depth, target, ErrIndexOutOfRange)
	}

	return target.child.attach(child, path, depth+1)
}

// Detach removes and returns the child list below the node addressed by
// path. It returns nil, without error, when the terminal node has no child
// list or a shallower node on the path is not a branch.
func (l *List[V]) Detach(path ...int) (*List[V], error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("detach: empty index path: %w", ErrInvalidRange)
	}

	return l.detachPath(path, 0)
}

func (l *List[V]) detachPath(path []int, depth int) (*List[V], error) {
	target, err := l.At(path[depth])
	if err != nil {
		return nil, fmt.Errorf("detach at path step %d: %w", depth, err)
	}

	if depth == len(path)-1 {
		child := target.child
		target.SetChild(nil)

		return child, nil
	}

	if !target.IsBranch() {
		return nil, nil
	}

	return target.child.detachPath(path, depth+1)
}

// RefreshLevels retags this list with setLevel and every descendant node and
// child list with its true tree depth, returning the maximum list level
// found. Levels go stale after arbitrary splices; ByLevel calls this
// implicitly before grouping nodes by depth.
func (l *List[V]) RefreshLevels(setLevel int) int {
	l.level = setLevel
	maxLevel := setLevel

	for s := l.head; s != nil; s = s.next {
		s.level = setLevel + 1

		if s.IsBranch() {
			if below := s.child.RefreshLevels(setLevel + 1); below > maxLevel {
				maxLevel = below
			}
		}
	}

	return maxLevel
}
