// Package viewkit provides non-owning, zero-copy views over caller-owned
// contiguous memory, plus a checked reinterpretation operation that reads
// the same bytes through a different element-type lens.
//
// A View borrows its backing slice and never copies it: writes through the
// view land in the backing storage and are visible through every other view
// aliasing the same region. The backing slice must outlive the view and must
// not be resized or reallocated while the view is alive. No synchronization
// is provided; callers sharing a buffer across goroutines must serialize
// access themselves.
package viewkit

import (
	"iter"

	"github.com/pkg/errors"
)

// View is a window (offset + length) over a caller-owned slice. The shape
// is fixed at construction; the referenced elements stay mutable unless the
// view is read-only.
type View[T any] struct {
	elems    []T
	readonly bool
}

// Of wraps the whole of buf. The view borrows buf; no copy is made.
func Of[T any](buf []T) View[T] {
	return View[T]{elems: buf}
}

// NewView wraps length elements of buf starting at offset. An empty view
// at offset == len(buf) is valid.
func NewView[T any](buf []T, offset, length int) (View[T], error) {
	// length > len(buf)-offset avoids overflow on offset+length.
	if offset < 0 || length < 0 || offset > len(buf) || length > len(buf)-offset {
		return View[T]{}, errors.Wrapf(ErrRange,
			"view at offset %d, length %d over %d elements", offset, length, len(buf))
	}
	return View[T]{elems: buf[offset : offset+length : offset+length]}, nil
}

// Len returns the number of elements visible through the view.
func (v View[T]) Len() int { return len(v.elems) }

// ReadOnly reports whether writes through the view are refused.
func (v View[T]) ReadOnly() bool { return v.readonly }

// Get returns the element at index i.
func (v View[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, errors.Wrapf(ErrRange, "index %d, length %d", i, len(v.elems))
	}
	return v.elems[i], nil
}

// Set writes val at index i in the backing buffer. The write is visible
// through every view aliasing that element.
func (v View[T]) Set(i int, val T) error {
	if v.readonly {
		return ErrReadOnly
	}
	if i < 0 || i >= len(v.elems) {
		return errors.Wrapf(ErrRange, "index %d, length %d", i, len(v.elems))
	}
	v.elems[i] = val
	return nil
}

// All yields (index, element) pairs left to right. The sequence is lazy
// and restartable; values written through Set mid-iteration are observed
// by later steps.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.elems {
			if !yield(i, v.elems[i]) {
				return
			}
		}
	}
}

// Values yields the elements left to right.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.elems {
			if !yield(v.elems[i]) {
				return
			}
		}
	}
}
