package viewkit

import (
	"github.com/pkg/errors"

	"github.com/rawbytedev/viewkit/internal/common"
)

// Fixed is the set of element types whose storage may be reinterpreted:
// fixed-size numerics with no pointers, ownership handles or
// padding-sensitive layout. Keeping the gate in the constraint makes it a
// compile-time check; nothing inspects types at runtime.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Fixed with integer arithmetic.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Reinterpret returns a view of U elements over the same bytes as v.
// The two views alias: a write through either is visible through the
// other. The read-only flag carries over.
//
// Fails with ErrSizeMismatch when v's byte length is not a multiple of
// U's size, and with ErrAlignment when v's start address does not satisfy
// U's alignment.
func Reinterpret[U, T Fixed](v View[T]) (View[U], error) {
	dstSize := common.Sizeof[U]()
	total := uintptr(v.Len()) * common.Sizeof[T]()
	if total%dstSize != 0 {
		return View[U]{}, errors.Wrapf(ErrSizeMismatch,
			"%d bytes into %d-byte elements", total, dstSize)
	}
	if align := common.Alignof[U](); common.Misaligned(v.elems, align) {
		return View[U]{}, errors.Wrapf(ErrAlignment,
			"start address is not %d-byte aligned", align)
	}
	return View[U]{
		elems:    common.Alias[U](v.elems, int(total/dstSize)),
		readonly: v.readonly,
	}, nil
}
