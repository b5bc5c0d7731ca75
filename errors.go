package fixedstr

import (
	"errors"
	"fmt"
)

// Package-level error definitions for runtime construction and derivation.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrOutOfRange       = errors.New("position out of range")
)

func capacityError(need, capacity int) error {
	return fmt.Errorf("%w: need %d, have %d", ErrCapacityExceeded, need, capacity)
}

func rangeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}

// Must returns v, panicking if err is non-nil. It suits package-level
// declarations whose bounds are known to be valid:
//
//	var ell = fixedstr.Must(fixedstr.Substr[[4]byte](hello, 1))
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
