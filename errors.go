package viewkit

import "github.com/pkg/errors"

var (
	ErrRange        = errors.New("index out of range")
	ErrReadOnly     = errors.New("view is read-only")
	ErrAlignment    = errors.New("misaligned reinterpretation")
	ErrSizeMismatch = errors.New("byte length not divisible by element size")
)
