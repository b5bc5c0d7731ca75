package fixedstr

import (
	"iter"
	"math"
	"unicode/utf16"
	"unsafe"
)

// NPos is returned by the search methods when nothing matches and by Copy
// when the start position lies past the logical length. Passed as a count
// or position it means "to the end".
const NPos = math.MaxInt

// Basic is a fixed-capacity string stored inline in an array of type S.
//
// The array length N is part of the type: one slot is reserved for the
// terminating zero, so Capacity is always N-1. The logical length is not
// stored; Len scans for the first zero element on every call.
//
// The zero value is an empty, well-formed string. Values of the same type
// copy with plain Go assignment. == compares every slot, padding included:
// the mutating methods keep the slots after the terminator zero, so for
// values built and changed through them == agrees with Equal, but Lit and
// New copy their array verbatim and writes through Data are unchecked. Use
// Equal to compare logical content. Values of different capacities are
// different types and move between each other only through RemovePrefix,
// RemoveSuffix, Substr and CopyTo.
type Basic[T Char, S Storage[T], Tr Traits[T]] struct {
	traits Tr
	value  S
}

// fromArray copies v verbatim and forces the final slot to zero so the
// result is well-formed even when v carries no terminator.
func fromArray[T Char, S Storage[T], Tr Traits[T]](v S) Basic[T, S, Tr] {
	s := Basic[T, S, Tr]{value: v}
	buf := s.slots()
	buf[len(buf)-1] = 0
	return s
}

// WithTraits rebinds s to another element-traits implementation without
// touching its contents. The new traits are used through their zero value.
func WithTraits[Tr2 Traits[T], T Char, S Storage[T], Tr Traits[T]](s Basic[T, S, Tr]) Basic[T, S, Tr2] {
	return Basic[T, S, Tr2]{value: s.value}
}

func (s *Basic[T, S, Tr]) slots() []T {
	return slotsOf[T](&s.value)
}

func (s *Basic[T, S, Tr]) view() []T {
	buf := s.slots()
	return buf[:scan(buf)]
}

// Capacity returns N-1, the number of usable slots.
func (s Basic[T, S, Tr]) Capacity() int {
	return len(s.value) - 1
}

// MaxSize is an alias for Capacity.
func (s Basic[T, S, Tr]) MaxSize() int {
	return s.Capacity()
}

// Len returns the logical length: the number of elements before the first
// zero. It is recomputed on every call and costs O(Len).
func (s Basic[T, S, Tr]) Len() int {
	return scan(s.slots())
}

// Length is an alias for Len.
func (s Basic[T, S, Tr]) Length() int {
	return s.Len()
}

// Size is an alias for Len.
func (s Basic[T, S, Tr]) Size() int {
	return s.Len()
}

// Empty reports whether the logical length is zero.
func (s Basic[T, S, Tr]) Empty() bool {
	return s.Len() == 0
}

// At returns the element in slot pos. It is not checked against the logical
// length; pos must lie in [0, N) or At panics like any Go index expression.
func (s Basic[T, S, Tr]) At(pos int) T {
	return s.slots()[pos]
}

// SetAt stores c in slot pos. pos must lie in [0, N). Writing a zero ends
// the content at pos and clears every slot after it. Writing a non-zero
// element into the terminator slot panics, since the value would no longer
// be well-formed.
func (s *Basic[T, S, Tr]) SetAt(pos int, c T) {
	buf := s.slots()
	if c == 0 {
		clear(buf[pos:])
		return
	}
	if pos == len(buf)-1 {
		panic("fixedstr: non-zero write to terminator slot")
	}
	buf[pos] = c
}

// Front returns the element in slot 0, which is zero for an empty string.
func (s Basic[T, S, Tr]) Front() T {
	return s.slots()[0]
}

// Back returns the last element of the logical content.
// The string must not be empty: on an empty string Back panics.
func (s Basic[T, S, Tr]) Back() T {
	buf := s.slots()
	return buf[scan(buf)-1]
}

// All iterates over every usable slot, [0, N-1), in order.
//
// Unlike Len, iteration covers the full capacity rather than the logical
// content: a string "hi" in an 8-slot array yields 7 elements, the last 5 of
// which are zero padding. Range over View for the logical content only.
func (s Basic[T, S, Tr]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		buf := s.slots()
		for i := 0; i < len(buf)-1; i++ {
			if !yield(i, buf[i]) {
				return
			}
		}
	}
}

// Backward iterates over the same slots as All in reverse order, from N-2
// down to 0, zero padding first.
func (s Basic[T, S, Tr]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		buf := s.slots()
		for i := len(buf) - 2; i >= 0; i-- {
			if !yield(i, buf[i]) {
				return
			}
		}
	}
}

// Data returns the raw storage: exactly N contiguous elements, terminator
// included. The slice aliases s. Writers must keep the last element zero.
func (s *Basic[T, S, Tr]) Data() []T {
	return s.slots()
}

// View returns the logical content. The result does not alias s.
func (s Basic[T, S, Tr]) View() []T {
	return s.view()
}

// String renders the logical content for display. Narrow and UTF-8 values
// are taken as bytes, UTF-16 values are decoded, and 32-bit values are
// taken as code points.
func (s Basic[T, S, Tr]) String() string {
	v := s.view()

	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		b := make([]byte, len(v))
		for i, c := range v {
			b[i] = byte(c)
		}
		return string(b)
	case 2:
		u := make([]uint16, len(v))
		for i, c := range v {
			u[i] = uint16(c)
		}
		return string(utf16.Decode(u))
	default:
		r := make([]rune, len(v))
		for i, c := range v {
			r[i] = rune(c)
		}
		return string(r)
	}
}

// Clear empties s, zero-filling every slot.
func (s *Basic[T, S, Tr]) Clear() {
	var zero S
	s.value = zero
}

// Swap exchanges the contents of s and other.
func (s *Basic[T, S, Tr]) Swap(other *Basic[T, S, Tr]) {
	s.value, other.value = other.value, s.value
}

// Assign replaces the content of s with text, up to its first zero element,
// and zero-fills the remaining slots. If text does not fit, s is left
// unchanged and ErrCapacityExceeded is returned.
func (s *Basic[T, S, Tr]) Assign(text []T) error {
	text = Terminated(text)
	if len(text) > s.Capacity() {
		return capacityError(len(text), s.Capacity())
	}

	buf := s.slots()
	n := copy(buf, text)
	clear(buf[n:])
	return nil
}
