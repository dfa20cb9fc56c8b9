// Package index implements the index protocol shared by every positional
// operation of the list: negative indices count from the back, normalized
// indices must land in [0, top], and two-index ranges must keep lo < hi.
package index

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrBadRange   = errors.New("invalid range")
)

// Norm resolves a negative index against a list of n elements, so -1 is the
// last valid index and -n the first. Non-negative indices pass through.
func Norm(i, n int) int {
	if i < 0 {
		return n + i
	}

	return i
}

// Check reports whether a normalized index addresses an existing element.
// top is the last valid index, -1 for an empty list.
func Check(i, top int) error {
	if i < 0 || i > top {
		return fmt.Errorf("index %d out of bounds, valid range [0, %d]: %w", i, top, ErrOutOfRange)
	}

	return nil
}

// Range normalizes both bounds, validates each against top and requires
// lo < hi. It returns the normalized bounds.
func Range(lo, hi, top int) (int, int, error) {
	lo = Norm(lo, top+1)
	hi = Norm(hi, top+1)

	if err := Check(lo, top); err != nil {
		return 0, 0, err
	}

	if err := Check(hi, top); err != nil {
		return 0, 0, err
	}

	if lo >= hi {
		return 0, 0, fmt.Errorf("low index %d >= high index %d: %w", lo, hi, ErrBadRange)
	}

	return lo, hi, nil
}
