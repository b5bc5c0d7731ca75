package fixedstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fixedstr"
)

func TestLiteralEntryPoints(t *testing.T) {
	t.Parallel()

	t.Run("utf-8", func(t *testing.T) {
		s := fixedstr.U8Lit([...]fixedstr.Char8{0xC3, 0xA9, 't', 0xC3, 0xA9, 0})
		assert.Equal(t, 5, s.Len())
		assert.Equal(t, "été", s.String())
	})

	t.Run("utf-16", func(t *testing.T) {
		s := fixedstr.U16Lit([...]uint16{0xD834, 0xDD1E, 0})
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "𝄞", s.String())
	})

	t.Run("utf-32", func(t *testing.T) {
		s := fixedstr.U32Lit([...]uint32{0x1D11E, 'x', 0})
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "𝄞x", s.String())
	})

	t.Run("wide", func(t *testing.T) {
		s := fixedstr.WLit([...]rune{'日', '本', 0})
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, 2, s.Capacity())
		assert.Equal(t, "日本", s.String())
	})
}

func TestFromString(t *testing.T) {
	t.Parallel()

	t.Run("fits", func(t *testing.T) {
		s, err := fixedstr.FromString[[6]byte]("hello")
		require.NoError(t, err)
		assert.Equal(t, hello(), s)
	})

	t.Run("too long", func(t *testing.T) {
		s, err := fixedstr.FromString[[6]byte]("hello!")
		assert.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
		assert.True(t, s.Empty())
	})

	t.Run("cut at nul", func(t *testing.T) {
		s, err := fixedstr.FromString[[6]byte]("ab\x00cd")
		require.NoError(t, err)
		assert.Equal(t, "ab", s.String())
	})
}

func TestFromString_Widths(t *testing.T) {
	t.Parallel()

	t.Run("utf-8 counts bytes", func(t *testing.T) {
		s, err := fixedstr.U8FromString[[4]fixedstr.Char8]("é!")
		require.NoError(t, err)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, "é!", s.String())

		_, err = fixedstr.U8FromString[[3]fixedstr.Char8]("é!")
		assert.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
	})

	t.Run("utf-16 counts code units", func(t *testing.T) {
		s, err := fixedstr.U16FromString[[3]uint16]("𝄞")
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []uint16{0xD834, 0xDD1E}, s.View())

		_, err = fixedstr.U16FromString[[2]uint16]("𝄞")
		assert.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
	})

	t.Run("utf-32 counts code points", func(t *testing.T) {
		s, err := fixedstr.U32FromString[[2]uint32]("𝄞")
		require.NoError(t, err)
		assert.Equal(t, []uint32{0x1D11E}, s.View())
	})

	t.Run("wide counts code points", func(t *testing.T) {
		s, err := fixedstr.WFromString[[3]rune]("日本")
		require.NoError(t, err)
		assert.Equal(t, "日本", s.String())

		_, err = fixedstr.WFromString[[2]rune]("日本")
		assert.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	s := fixedstr.New[byte, [4]byte, fixedstr.FoldTraits[byte]]([4]byte{'a', 'b', 'c', 'd'})
	assert.Equal(t, "abc", s.String())
	assert.True(t, s.Equal([]byte("ABC")))

	w := fixedstr.New[rune, [3]rune, fixedstr.DefaultTraits[rune]]([3]rune{'日', '本', 0})
	assert.Equal(t, fixedstr.WLit([...]rune{'日', '本', 0}), w)
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	s, err := fixedstr.FromSlice[[4]uint16]([]uint16{'a', 'b', 0, 'c'})
	require.NoError(t, err)
	assert.Equal(t, []uint16{'a', 'b'}, s.View())

	_, err = fixedstr.FromSlice[[2]uint32]([]uint32{1, 2})
	assert.ErrorIs(t, err, fixedstr.ErrCapacityExceeded)

	b, err := fixedstr.FromSlice[[6]byte]([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, hello(), b)
}

func TestMust(t *testing.T) {
	t.Parallel()

	s := fixedstr.Must(fixedstr.FromString[[4]byte]("abc"))
	assert.Equal(t, "abc", s.String())

	assert.PanicsWithError(t, "capacity exceeded: need 4, have 3", func() {
		fixedstr.Must(fixedstr.FromString[[4]byte]("abcd"))
	})
}
