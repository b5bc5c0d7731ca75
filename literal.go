package fixedstr

import "unicode/utf16"

// Named variants, one per element width. They share every method of Basic
// and use DefaultTraits.
type (
	// String holds narrow characters.
	String[S Storage[byte]] = Basic[byte, S, DefaultTraits[byte]]
	// U8String holds UTF-8 code units.
	U8String[S Storage[Char8]] = Basic[Char8, S, DefaultTraits[Char8]]
	// U16String holds UTF-16 code units.
	U16String[S Storage[uint16]] = Basic[uint16, S, DefaultTraits[uint16]]
	// U32String holds UTF-32 code units.
	U32String[S Storage[uint32]] = Basic[uint32, S, DefaultTraits[uint32]]
	// WString holds wide characters.
	WString[S Storage[rune]] = Basic[rune, S, DefaultTraits[rune]]
)

// New builds a Basic from an array of any element width with explicit
// traits. Like Lit it copies v verbatim and stores the final slot as zero.
// All type arguments are usually spelled out, since Tr cannot be inferred:
//
//	s := fixedstr.New[byte, [4]byte, fixedstr.FoldTraits[byte]]([4]byte{'a', 'b', 'c'})
func New[T Char, S Storage[T], Tr Traits[T]](v S) Basic[T, S, Tr] {
	return fromArray[T, S, Tr](v)
}

// Lit builds a String from an array literal whose length, terminator
// included, fixes the slot count:
//
//	hello := fixedstr.Lit([...]byte{'h', 'e', 'l', 'l', 'o', 0}) // String[[6]byte]
//
// The array is copied verbatim except that its final element is always
// stored as zero. An array of another element type does not compile.
// cmd/fixedstr gen writes these literals from text.
func Lit[S Storage[byte]](v S) String[S] {
	return fromArray[byte, S, DefaultTraits[byte]](v)
}

// U8Lit builds a U8String from an array of UTF-8 code units.
func U8Lit[S Storage[Char8]](v S) U8String[S] {
	return fromArray[Char8, S, DefaultTraits[Char8]](v)
}

// U16Lit builds a U16String from an array of UTF-16 code units.
func U16Lit[S Storage[uint16]](v S) U16String[S] {
	return fromArray[uint16, S, DefaultTraits[uint16]](v)
}

// U32Lit builds a U32String from an array of UTF-32 code units.
func U32Lit[S Storage[uint32]](v S) U32String[S] {
	return fromArray[uint32, S, DefaultTraits[uint32]](v)
}

// WLit builds a WString from an array of wide characters.
func WLit[S Storage[rune]](v S) WString[S] {
	return fromArray[rune, S, DefaultTraits[rune]](v)
}

// FromSlice builds a value with default traits from text, taken up to its
// first zero element. ErrCapacityExceeded is returned when it does not fit.
//
//	s, err := fixedstr.FromSlice[[8]uint16](units)
func FromSlice[S Storage[T], T Char](text []T) (Basic[T, S, DefaultTraits[T]], error) {
	var s Basic[T, S, DefaultTraits[T]]
	err := s.Assign(text)
	return s, err
}

// FromString builds a String from the bytes of text, which is cut at its
// first NUL byte. ErrCapacityExceeded is returned when it does not fit.
func FromString[S Storage[byte]](text string) (String[S], error) {
	var s String[S]
	err := s.Assign([]byte(text))
	return s, err
}

// U8FromString builds a U8String from the UTF-8 bytes of text.
func U8FromString[S Storage[Char8]](text string) (U8String[S], error) {
	units := make([]Char8, len(text))
	for i := 0; i < len(text); i++ {
		units[i] = Char8(text[i])
	}
	var s U8String[S]
	err := s.Assign(units)
	return s, err
}

// U16FromString builds a U16String by encoding text as UTF-16.
// Characters outside the BMP take two slots.
func U16FromString[S Storage[uint16]](text string) (U16String[S], error) {
	var s U16String[S]
	err := s.Assign(utf16.Encode([]rune(text)))
	return s, err
}

// U32FromString builds a U32String with one slot per code point of text.
func U32FromString[S Storage[uint32]](text string) (U32String[S], error) {
	runes := []rune(text)
	units := make([]uint32, len(runes))
	for i, r := range runes {
		units[i] = uint32(r)
	}
	var s U32String[S]
	err := s.Assign(units)
	return s, err
}

// WFromString builds a WString with one slot per code point of text.
func WFromString[S Storage[rune]](text string) (WString[S], error) {
	var s WString[S]
	err := s.Assign([]rune(text))
	return s, err
}
