package viewkit

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestIncrementAll(t *testing.T) {
	buf := []int32{1, 2, 3}
	require.NoError(t, IncrementAll(Of(buf)))
	require.Equal(t, []int32{2, 3, 4}, buf)
}

func TestIncrementThroughWindow(t *testing.T) {
	buf := []int64{1, 2, 3, 4}
	v, err := NewView(buf, 1, 2)
	require.NoError(t, err)
	require.NoError(t, IncrementAll(v))
	require.Equal(t, []int64{1, 3, 4, 4}, buf, "elements outside the window stay untouched")
}

func TestIncrementDecrementInverse(t *testing.T) {
	condition := func(src []int16) bool {
		buf := append([]int16(nil), src...)
		v := Of(buf)
		if err := IncrementAll(v); err != nil {
			return false
		}
		if err := DecrementAll(v); err != nil {
			return false
		}
		for i := range src {
			if buf[i] != src[i] {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestIncrementThroughReinterpretedView(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	v, err := Reinterpret[uint32](Of(buf))
	require.NoError(t, err)
	require.NoError(t, IncrementAll(v))
	// Adding one to the single uint32 bumps exactly the low-order byte
	// here, since no carry is possible from 0x04030201/0x01020304.
	sum := int(buf[0]) + int(buf[1]) + int(buf[2]) + int(buf[3])
	require.Equal(t, 11, sum)
}

func TestIncrementReadOnly(t *testing.T) {
	v := Text("abc").Bytes()
	require.ErrorIs(t, IncrementAll(v), ErrReadOnly)
	require.Equal(t, "abc", Text("abc").String())
}
