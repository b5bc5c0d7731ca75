package fixedstr

import "unsafe"

//go:generate go run ./cmd/fixedstr storage -o storage_gen.go

// Char is the set of element types a Basic value can hold: narrow
// characters, UTF-8, UTF-16 and UTF-32 code units, and wide characters.
type Char interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// Char8 is a UTF-8 code unit. It is a distinct type from byte so that
// U8String and String values cannot be passed for one another.
type Char8 uint8

// slotsOf returns a slice aliasing every element of the array pointed to by p.
// S is always an array of T (see Storage), so the conversion is exact.
func slotsOf[T Char, S Storage[T]](p *S) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), len(*p))
}

// scan returns the index of the first zero element in buf, searching at most
// len(buf)-1 elements so the result never exceeds the capacity.
func scan[T Char](buf []T) int {
	n := len(buf) - 1
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return i
		}
	}
	return n
}

// Terminated returns p up to, but not including, its first zero element.
// It turns a zero-terminated buffer into the sequence form accepted by
// the search and comparison methods. The explicit-count form is a plain
// re-slice: p[:n].
func Terminated[T Char](p []T) []T {
	for i, c := range p {
		if c == 0 {
			return p[:i]
		}
	}
	return p
}
