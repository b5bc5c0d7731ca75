package fixedstr

import (
	"cmp"
	"slices"
)

// Traits supplies the element primitives used by comparison and search.
// Implementations are used through their zero value, so they should be
// empty structs.
type Traits[T Char] interface {
	// Eq reports whether a and b are equal.
	Eq(a, b T) bool
	// Compare orders two sequences of equal length, returning -1, 0 or +1.
	Compare(a, b []T) int
	// Find returns the index of c in set, or -1.
	Find(set []T, c T) int
}

// DefaultTraits compares elements by value.
type DefaultTraits[T Char] struct{}

func (DefaultTraits[T]) Eq(a, b T) bool { return a == b }

func (DefaultTraits[T]) Compare(a, b []T) int { return slices.Compare(a, b) }

func (DefaultTraits[T]) Find(set []T, c T) int { return slices.Index(set, c) }

// FoldTraits compares elements with ASCII letters folded to lower case.
// Elements outside the ASCII range compare by value.
type FoldTraits[T Char] struct{}

func (FoldTraits[T]) Eq(a, b T) bool { return fold(a) == fold(b) }

func (FoldTraits[T]) Compare(a, b []T) int {
	return slices.CompareFunc(a, b, func(x, y T) int {
		return cmp.Compare(fold(x), fold(y))
	})
}

func (FoldTraits[T]) Find(set []T, c T) int {
	c = fold(c)
	return slices.IndexFunc(set, func(e T) bool { return fold(e) == c })
}

func fold[T Char](c T) T {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
