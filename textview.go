package viewkit

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/rawbytedev/viewkit/internal/common"
)

// TextView is a read-only view over a string's characters. Strings are
// immutable, so the view is always safe to hand out; the text is never
// copied.
type TextView struct {
	s string
}

// Text wraps s without copying it.
func Text(s string) TextView { return TextView{s: s} }

// Len returns the number of characters (runes), not bytes.
func (t TextView) Len() int { return utf8.RuneCountInString(t.s) }

// String returns the backing text.
func (t TextView) String() string { return t.s }

// Runes yields the characters left to right. Restartable.
func (t TextView) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range t.s {
			if !yield(r) {
				return
			}
		}
	}
}

// Bytes aliases the string storage as a read-only byte view, without
// copying. Writing through the result fails with ErrReadOnly.
func (t TextView) Bytes() View[byte] {
	return View[byte]{elems: common.StringBytes(t.s), readonly: true}
}

// CountLettersOrDigits counts the characters classified by the Unicode
// tables as letters or digits. One pass, no allocation.
func (t TextView) CountLettersOrDigits() int {
	n := 0
	for _, r := range t.s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// FirstUppercase returns the first uppercase character and true, or
// (0, false) when the text contains none.
func (t TextView) FirstUppercase() (rune, bool) {
	for _, r := range t.s {
		if unicode.IsUpper(r) {
			return r, true
		}
	}
	return 0, false
}
