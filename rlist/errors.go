package rlist

import (
	"errors"

	"go.expect.digital/list/internal/index"
)

var (
	// ErrIndexOutOfRange reports an index, after negative-index resolution,
	// outside the list's valid range.
	ErrIndexOutOfRange = index.ErrOutOfRange

	// ErrInvalidRange reports a two-index range whose low bound is not below
	// its high bound, or an iterator range with a zero step.
	ErrInvalidRange = index.ErrBadRange

	// ErrConcurrentMutation reports that the list's length changed while an
	// iterator was mid-traversal. Obtain or rewind iterators immediately
	// before the loop and never mutate the list inside it.
	ErrConcurrentMutation = errors.New("list modified during iteration")
)
