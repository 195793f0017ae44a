package common

import "unsafe"

// Sizeof returns the byte width of T's storage.
func Sizeof[T any]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// Alignof returns T's required start alignment.
func Alignof[T any]() uintptr {
	var z T
	return unsafe.Alignof(z)
}

// Misaligned reports whether the first element of src does not sit on a
// multiple of align. An empty slice is never misaligned.
func Misaligned[T any](src []T, align uintptr) bool {
	if len(src) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(src)))%align != 0
}

// Alias reinterprets the storage behind src as n elements of U without
// copying. Callers must have checked that n*Sizeof[U]() equals src's byte
// length and that the start satisfies U's alignment; Alias validates
// nothing.
func Alias[U, T any](src []T, n int) []U {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(src))), n)
}

// StringBytes aliases the storage of s as a byte slice without copying.
// Strings are immutable; the result must not be written to.
func StringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
