package codegen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fixedstr/pkg/codegen"
)

func TestStorage(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, codegen.Storage(&buf, codegen.StorageOptions{Package: "demo", MaxSlots: 3}))

		want := `// Code generated by fixedstr storage; DO NOT EDIT.

package demo

// MaxSlots is the largest array length accepted by Storage.
const MaxSlots = 3

// Storage is satisfied by every array of T holding 1 to MaxSlots elements.
// The array length is the slot count of a Basic value, terminator included.
type Storage[T Char] interface {
	~[1]T | ~[2]T | ~[3]T
}
`
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("storage mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("full union", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, codegen.Storage(&buf, codegen.StorageOptions{MaxSlots: codegen.DefaultMaxSlots}))

		out := buf.String()
		assert.Contains(t, out, "package fixedstr")
		assert.Contains(t, out, "const MaxSlots = 100")
		assert.Equal(t, 100, strings.Count(out, "~["))
		assert.Contains(t, out, "~[100]T\n}")
		assert.NotContains(t, out, "~[101]T")
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		assert.ErrorIs(t, codegen.Storage(&buf, codegen.StorageOptions{MaxSlots: 0}), codegen.ErrInvalidMaxSlots)
		assert.ErrorIs(t, codegen.Storage(&buf, codegen.StorageOptions{MaxSlots: 101}), codegen.ErrInvalidMaxSlots)
		assert.ErrorIs(t, codegen.Storage(&buf, codegen.StorageOptions{Package: "9x", MaxSlots: 4}), codegen.ErrInvalidIdentifier)
		assert.Zero(t, buf.Len())
	})
}

func TestGenerator_Storage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	gen := codegen.New(codegen.WithMaxSlots(12))
	require.NoError(t, gen.Storage(&buf, "fixedstr"))
	assert.Contains(t, buf.String(), "const MaxSlots = 12")
	assert.Equal(t, 12, strings.Count(buf.String(), "~["))
}
