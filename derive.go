package fixedstr

// copyOut copies min(count, len(src)-pos, len(dest)) elements of src starting
// at pos into dest. It returns NPos when pos lies outside [0, len(src)].
func copyOut[T Char](dest, src []T, count, pos int) int {
	if pos < 0 || pos > len(src) {
		return NPos
	}
	n := min(count, len(src)-pos, len(dest))
	if n <= 0 {
		return 0
	}
	return copy(dest, src[pos:pos+n])
}

// Copy copies up to count elements of the logical content, starting at pos,
// into dest and returns how many were copied. The count is further limited
// by len(dest); pass NPos to copy through the end. No terminator is written.
// If pos is past the logical length, nothing is copied and NPos is returned.
func (s Basic[T, S, Tr]) Copy(dest []T, count, pos int) int {
	return copyOut(dest, s.view(), count, pos)
}

// CopyTo replaces the content of dst with up to count elements of src
// starting at pos, truncated to the capacity of dst, and returns how many
// were copied. dst may have any capacity. If pos is past the logical length
// of src, dst is left unchanged and NPos is returned.
func CopyTo[T Char, D Storage[T], S Storage[T], Tr Traits[T]](dst *Basic[T, D, Tr], src Basic[T, S, Tr], count, pos int) int {
	buf := dst.slots()
	n := copyOut(buf[:len(buf)-1], src.view(), count, pos)
	if n == NPos {
		return NPos
	}
	clear(buf[n:])
	return n
}

// Replace overwrites the elements starting at pos with text. Elements after
// the overwritten range are kept. When the write runs past the old logical
// length, the slot following it is re-terminated; a zero element inside text
// ends the content at that point and clears everything after it.
//
// pos must not exceed the logical length and the write must fit within the
// capacity; otherwise s is unchanged and an error is returned.
func (s *Basic[T, S, Tr]) Replace(pos int, text []T) error {
	length := s.Len()
	if pos < 0 || pos > length {
		return rangeError("replace at %d, length %d", pos, length)
	}

	t := Terminated(text)
	end := pos + len(t)
	if end > s.Capacity() {
		return capacityError(end, s.Capacity())
	}

	buf := s.slots()
	copy(buf[pos:], t)
	switch {
	case len(t) < len(text):
		clear(buf[end:])
	case end > length:
		buf[end] = 0
	}
	return nil
}

// ReplaceRange substitutes text for the count elements starting at pos,
// shifting the remainder of the content left or right as needed and
// zero-filling any slots vacated at the end. count is clamped to the
// logical length; text is taken up to its first zero element.
//
// Errors mirror Replace: ErrOutOfRange when pos is past the logical length,
// ErrCapacityExceeded when the result would not fit.
func (s *Basic[T, S, Tr]) ReplaceRange(pos, count int, text []T) error {
	length := s.Len()
	if pos < 0 || pos > length {
		return rangeError("replace at %d, length %d", pos, length)
	}
	count = max(0, min(count, length-pos))

	t := Terminated(text)
	newLen := length - count + len(t)
	if newLen > s.Capacity() {
		return capacityError(newLen, s.Capacity())
	}

	buf := s.slots()
	copy(buf[pos+len(t):], buf[pos+count:length])
	copy(buf[pos:], t)
	clear(buf[newLen:])
	return nil
}

// Substr returns up to count elements starting at pos in a value of the same
// capacity as s, with the unused tail zero-filled. Pass NPos as count to take
// everything through the end. If pos is past the logical length the result
// is empty.
//
// Use the package-level Substr to obtain a value sized to the extracted range.
func (s Basic[T, S, Tr]) Substr(pos, count int) Basic[T, S, Tr] {
	var out Basic[T, S, Tr]
	buf := out.slots()
	copyOut(buf[:len(buf)-1], s.view(), count, pos)
	return out
}

// RemovePrefix drops the first K slots of s, where K is the difference
// between the slot counts of S and R, and returns the rest in a value of
// type R. Content shorter than K yields an empty result.
//
// R must not be larger than S; otherwise ErrOutOfRange is returned.
//
//	tail, err := fixedstr.RemovePrefix[[4]byte](hello) // "hello" -> "llo"
func RemovePrefix[R Storage[T], T Char, S Storage[T], Tr Traits[T]](s Basic[T, S, Tr]) (Basic[T, R, Tr], error) {
	var out Basic[T, R, Tr]
	n, m := len(s.value), len(out.value)
	if m > n {
		return out, rangeError("remove prefix into %d slots from %d", m, n)
	}

	buf := out.slots()
	copyOut(buf[:m-1], s.view(), m-1, n-m)
	return out, nil
}

// RemoveSuffix keeps the first capacity(R) slots of s, dropping the trailing
// K slots where K is the difference between the slot counts of S and R.
// The cut is measured against the capacity, not the logical length, so a
// short string may come through unchanged.
//
// R must not be larger than S; otherwise ErrOutOfRange is returned.
func RemoveSuffix[R Storage[T], T Char, S Storage[T], Tr Traits[T]](s Basic[T, S, Tr]) (Basic[T, R, Tr], error) {
	var out Basic[T, R, Tr]
	n, m := len(s.value), len(out.value)
	if m > n {
		return out, rangeError("remove suffix into %d slots from %d", m, n)
	}

	buf := out.slots()
	copyOut(buf[:m-1], s.view(), m-1, 0)
	return out, nil
}

// Substr extracts capacity(R) elements starting at pos into a value of type
// R, sized exactly to the range plus its terminator. The range must lie
// within the slots of s, pos+capacity(R) < len(S); otherwise ErrOutOfRange
// is returned. Content ending before the range leaves the tail zero.
//
//	ell, err := fixedstr.Substr[[4]byte](hello, 1) // "ell"
func Substr[R Storage[T], T Char, S Storage[T], Tr Traits[T]](s Basic[T, S, Tr], pos int) (Basic[T, R, Tr], error) {
	var out Basic[T, R, Tr]
	n, count := len(s.value), len(out.value)-1
	if pos < 0 || pos >= n-count {
		return out, rangeError("substr %d+%d of %d slots", pos, count, n)
	}

	buf := out.slots()
	copyOut(buf[:count], s.view(), count, pos)
	return out, nil
}
