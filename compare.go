package fixedstr

// Compare orders the logical content of s against other element by element
// over their common length; when that prefix is equal the shorter sequence
// orders first. The result is -1, 0 or +1.
//
// To compare two fixed strings of any capacities, pass the other's View.
func (s Basic[T, S, Tr]) Compare(other []T) int {
	v := s.view()
	n := min(len(v), len(other))
	if c := s.traits.Compare(v[:n], other[:n]); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	default:
		return 0
	}
}

// Equal reports whether the logical content of s equals other.
func (s Basic[T, S, Tr]) Equal(other []T) bool {
	return s.Len() == len(other) && s.Compare(other) == 0
}

// StartsWith reports whether the logical content begins with prefix.
func (s Basic[T, S, Tr]) StartsWith(prefix []T) bool {
	v := s.view()
	if len(prefix) > len(v) {
		return false
	}
	for i := range prefix {
		if !s.traits.Eq(v[i], prefix[i]) {
			return false
		}
	}
	return true
}

// StartsWithElem reports whether the content is non-empty and begins with c.
func (s Basic[T, S, Tr]) StartsWithElem(c T) bool {
	return !s.Empty() && s.traits.Eq(s.Front(), c)
}

// EndsWith reports whether the logical content ends with suffix.
func (s Basic[T, S, Tr]) EndsWith(suffix []T) bool {
	v := s.view()
	if len(suffix) > len(v) {
		return false
	}
	off := len(v) - len(suffix)
	for i := range suffix {
		if !s.traits.Eq(v[off+i], suffix[i]) {
			return false
		}
	}
	return true
}

// EndsWithElem reports whether the content is non-empty and ends with c.
func (s Basic[T, S, Tr]) EndsWithElem(c T) bool {
	return !s.Empty() && s.traits.Eq(s.Back(), c)
}
