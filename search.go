package fixedstr

// All searches run over the logical content only and return NPos when
// nothing qualifies. A negative pos starts forward searches at 0 and makes
// backward searches report NPos; pass NPos to start a backward search at
// the end.

// Find returns the first offset at or after pos where needle occurs.
// An empty needle matches at pos when pos <= Len.
func (s Basic[T, S, Tr]) Find(needle []T, pos int) int {
	v := s.view()
	for pos = max(pos, 0); pos <= len(v)-len(needle); pos++ {
		if s.traits.Compare(v[pos:pos+len(needle)], needle) == 0 {
			return pos
		}
	}
	return NPos
}

// FindElem returns the first offset at or after pos holding c.
func (s Basic[T, S, Tr]) FindElem(c T, pos int) int {
	v := s.view()
	for pos = max(pos, 0); pos < len(v); pos++ {
		if s.traits.Eq(v[pos], c) {
			return pos
		}
	}
	return NPos
}

// RFind returns the last offset at or before pos where needle occurs.
func (s Basic[T, S, Tr]) RFind(needle []T, pos int) int {
	v := s.view()
	if len(needle) > len(v) || pos < 0 {
		return NPos
	}
	for pos = min(pos, len(v)-len(needle)); pos >= 0; pos-- {
		if s.traits.Compare(v[pos:pos+len(needle)], needle) == 0 {
			return pos
		}
	}
	return NPos
}

// RFindElem returns the last offset at or before pos holding c.
func (s Basic[T, S, Tr]) RFindElem(c T, pos int) int {
	v := s.view()
	if len(v) == 0 || pos < 0 {
		return NPos
	}
	for pos = min(pos, len(v)-1); pos >= 0; pos-- {
		if s.traits.Eq(v[pos], c) {
			return pos
		}
	}
	return NPos
}

// firstOf scans forward from pos for an element whose membership in set
// equals want.
func (s Basic[T, S, Tr]) firstOf(set []T, pos int, want bool) int {
	v := s.view()
	for pos = max(pos, 0); pos < len(v); pos++ {
		if (s.traits.Find(set, v[pos]) >= 0) == want {
			return pos
		}
	}
	return NPos
}

// lastOf is the backward counterpart of firstOf.
func (s Basic[T, S, Tr]) lastOf(set []T, pos int, want bool) int {
	v := s.view()
	if len(v) == 0 || pos < 0 {
		return NPos
	}
	for pos = min(pos, len(v)-1); pos >= 0; pos-- {
		if (s.traits.Find(set, v[pos]) >= 0) == want {
			return pos
		}
	}
	return NPos
}

// FindFirstOf returns the first offset at or after pos holding any element
// of set. The set is a collection of elements, not a substring.
func (s Basic[T, S, Tr]) FindFirstOf(set []T, pos int) int {
	return s.firstOf(set, pos, true)
}

// FindFirstOfElem is FindFirstOf with a single-element set.
func (s Basic[T, S, Tr]) FindFirstOfElem(c T, pos int) int {
	return s.firstOf([]T{c}, pos, true)
}

// FindLastOf returns the last offset at or before pos holding any element
// of set.
func (s Basic[T, S, Tr]) FindLastOf(set []T, pos int) int {
	return s.lastOf(set, pos, true)
}

// FindLastOfElem is FindLastOf with a single-element set.
func (s Basic[T, S, Tr]) FindLastOfElem(c T, pos int) int {
	return s.lastOf([]T{c}, pos, true)
}

// FindFirstNotOf returns the first offset at or after pos holding an element
// outside set.
func (s Basic[T, S, Tr]) FindFirstNotOf(set []T, pos int) int {
	return s.firstOf(set, pos, false)
}

// FindFirstNotOfElem returns the first offset at or after pos not holding c.
func (s Basic[T, S, Tr]) FindFirstNotOfElem(c T, pos int) int {
	return s.firstOf([]T{c}, pos, false)
}

// FindLastNotOf returns the last offset at or before pos holding an element
// outside set.
func (s Basic[T, S, Tr]) FindLastNotOf(set []T, pos int) int {
	return s.lastOf(set, pos, false)
}

// FindLastNotOfElem returns the last offset at or before pos not holding c.
func (s Basic[T, S, Tr]) FindLastNotOfElem(c T, pos int) int {
	return s.lastOf([]T{c}, pos, false)
}

// Contains reports whether needle occurs anywhere in the content.
func (s Basic[T, S, Tr]) Contains(needle []T) bool {
	return s.Find(needle, 0) != NPos
}

// ContainsElem reports whether c occurs anywhere in the content.
func (s Basic[T, S, Tr]) ContainsElem(c T) bool {
	return s.FindElem(c, 0) != NPos
}
