// Package fixedstr provides fixed-capacity strings stored inline, with no heap
// allocation, whose capacity is part of their static type.
//
// A value is an array of N elements wrapped in Basic. The last slot is
// reserved for a terminating zero, so the capacity is N-1 and the buffer can
// always be handed to consumers that expect zero-terminated text. The
// logical length is not stored: it is found by scanning for the first zero
// element each time it is asked for.
//
// # Features
//
//   - Inline storage: a String[[16]byte] is exactly 16 bytes
//   - Capacity encoded in the type; changing capacity means changing type
//   - Five element widths: String, U8String, U16String, U32String, WString
//   - Full read-only query surface: indexing, iteration, comparison,
//     prefix and suffix tests, and the find/rfind/find-of search family
//   - Pluggable element traits (DefaultTraits, FoldTraits)
//   - Zero dependencies at run time; values are safe to copy and compare
//
// # Usage
//
// Literals are arrays whose length, terminator included, picks the type:
//
//	import "github.com/dmitrymomot/fixedstr"
//
//	hello := fixedstr.Lit([...]byte{'h', 'e', 'l', 'l', 'o', 0}) // String[[6]byte]
//
//	hello.Len()                              // 5
//	hello.Capacity()                         // 5
//	hello.Find([]byte("ll"), 0)              // 2
//	hello.RFind([]byte("l"), fixedstr.NPos)  // 3
//	hello.StartsWith([]byte("he"))           // true
//	hello.Compare([]byte("hellp"))           // -1
//
// Writing arrays by hand is tedious, so text known at build time is usually
// turned into literals by the generator:
//
//	//go:generate go run github.com/dmitrymomot/fixedstr/cmd/fixedstr gen -m literals.yaml -o literals_gen.go
//
// Text known only at run time goes through FromString and friends, which
// report ErrCapacityExceeded instead of truncating:
//
//	name, err := fixedstr.FromString[[32]byte](input)
//
// # Length versus Iteration
//
// Len, Find and every other query work on the logical content. All and
// Backward do not: they walk the whole capacity, N-1 slots, including zero
// padding after the content. This mirrors the raw buffer and is easy to
// confuse:
//
//	s, _ := fixedstr.FromString[[8]byte]("hi")
//	s.Len() // 2
//	for i, c := range s.All() {
//		// runs 7 times; c is 0 for i >= 2
//	}
//	for i, c := range s.View() {
//		// runs 2 times
//	}
//
// # Capacity-changing Derivation
//
// Go has no arithmetic on array lengths in types, so the result type is
// named by the caller and the bounds are checked when the call runs:
//
//	ell, err := fixedstr.Substr[[4]byte](hello, 1)      // "ell", capacity 3
//	llo, err := fixedstr.RemovePrefix[[4]byte](hello)   // drops 2 slots
//	hel, err := fixedstr.RemoveSuffix[[4]byte](hello)   // drops 2 slots
//
// The method form hello.Substr(pos, count) keeps the capacity of hello and
// zero-fills the unused tail.
//
// # Not Found
//
// Searches return NPos, the largest int, when nothing matches. Copy returns
// NPos when the start position is past the content.
//
// # Preconditions
//
// At and SetAt index the raw slots and panic outside [0, N). Back panics on
// an empty string. These are caller bugs, not runtime states.
//
// # Thread Safety
//
// Values have no shared state. Concurrent reads are safe; concurrent
// mutation of one value must be serialised by the caller.
package fixedstr
