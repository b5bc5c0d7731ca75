package fixedstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fixedstr"
)

func TestBasic_Compare(t *testing.T) {
	t.Parallel()

	s := hello()

	tests := []struct {
		other string
		want  int
	}{
		{other: "hello", want: 0},
		{other: "hellp", want: -1},
		{other: "helln", want: 1},
		{other: "hell", want: 1},
		{other: "hello!", want: -1},
		{other: "", want: 1},
		{other: "abc", want: 1},
		{other: "world", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.other, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Compare([]byte(tt.other)))
		})
	}

	t.Run("empty", func(t *testing.T) {
		var e fixedstr.String[[4]byte]
		assert.Equal(t, 0, e.Compare(nil))
		assert.Equal(t, -1, e.Compare([]byte("a")))
	})
}

func TestBasic_CompareAntisymmetric(t *testing.T) {
	t.Parallel()

	texts := []string{"", "a", "ab", "abc", "abd", "b", "hello", "hellp"}
	values := make([]fixedstr.String[[8]byte], len(texts))
	for i, text := range texts {
		var err error
		values[i], err = fixedstr.FromString[[8]byte](text)
		require.NoError(t, err)
	}

	for i, a := range values {
		for j, b := range values {
			ab := a.Compare(b.View())
			ba := b.Compare(a.View())
			assert.Equal(t, ab, -ba, "%q vs %q", texts[i], texts[j])
			assert.Equal(t, texts[i] == texts[j], ab == 0, "%q vs %q", texts[i], texts[j])
		}
	}
}

func TestBasic_Equal(t *testing.T) {
	t.Parallel()

	s := hello()
	assert.True(t, s.Equal([]byte("hello")))
	assert.False(t, s.Equal([]byte("hell")))
	assert.False(t, s.Equal([]byte("hello!")))
	assert.False(t, s.Equal([]byte("jello")))
}

func TestBasic_StartsWith(t *testing.T) {
	t.Parallel()

	s := hello()
	assert.True(t, s.StartsWith([]byte("he")))
	assert.True(t, s.StartsWith([]byte("hello")))
	assert.True(t, s.StartsWith(nil))
	assert.False(t, s.StartsWith([]byte("hello!")))
	assert.False(t, s.StartsWith([]byte("hx")))
	assert.False(t, s.StartsWith([]byte("e")))

	assert.True(t, s.StartsWithElem('h'))
	assert.False(t, s.StartsWithElem('e'))

	var e fixedstr.String[[4]byte]
	assert.False(t, e.StartsWithElem(0))
	assert.True(t, e.StartsWith(nil))
}

func TestBasic_EndsWith(t *testing.T) {
	t.Parallel()

	s := hello()
	assert.True(t, s.EndsWith([]byte("lo")))
	assert.True(t, s.EndsWith([]byte("o")))
	assert.True(t, s.EndsWith([]byte("hello")))
	assert.True(t, s.EndsWith(nil))
	assert.False(t, s.EndsWith([]byte("xlo")))
	assert.False(t, s.EndsWith([]byte("ello!")))
	assert.False(t, s.EndsWith([]byte("ol")))

	assert.True(t, s.EndsWithElem('o'))
	assert.False(t, s.EndsWithElem('l'))

	abab, err := fixedstr.FromString[[8]byte]("abab")
	require.NoError(t, err)
	assert.True(t, abab.EndsWith([]byte("ab")))
	assert.False(t, abab.EndsWith([]byte("ba")))
	assert.True(t, abab.EndsWith([]byte("bab")))

	var e fixedstr.String[[4]byte]
	assert.False(t, e.EndsWithElem(0))
	assert.False(t, e.EndsWith([]byte("a")))
}

func TestBasic_EndsWithPaddedValue(t *testing.T) {
	t.Parallel()

	s, err := fixedstr.FromString[[16]byte]("suffix")
	require.NoError(t, err)

	assert.True(t, s.EndsWith([]byte("fix")))
	assert.False(t, s.EndsWith([]byte{'x', 0}))
}
