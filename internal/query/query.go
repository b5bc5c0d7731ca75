// Package query evaluates a single search or comparison operation of a
// fixed string. It backs the query subcommand of cmd/fixedstr.
package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/fixedstr"
)

var (
	// ErrUnknownOp is returned for an operation name Run does not recognise.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrEmbeddedNUL is returned when the text or needle contains a NUL byte,
	// which a fixed string would take as its terminator.
	ErrEmbeddedNUL = errors.New("argument contains a NUL byte")
)

// Op names a search or comparison operation.
type Op string

const (
	Find           Op = "find"
	RFind          Op = "rfind"
	FindFirstOf    Op = "find-first-of"
	FindLastOf     Op = "find-last-of"
	FindFirstNotOf Op = "find-first-not-of"
	FindLastNotOf  Op = "find-last-not-of"
	StartsWith     Op = "starts-with"
	EndsWith       Op = "ends-with"
	Contains       Op = "contains"
	Compare        Op = "compare"
	Equal          Op = "equal"
)

// Ops lists every operation in display order.
var Ops = []Op{
	Find, RFind,
	FindFirstOf, FindLastOf, FindFirstNotOf, FindLastNotOf,
	StartsWith, EndsWith, Contains,
	Compare, Equal,
}

// Kind tells how a Result is read.
type Kind string

const (
	KindIndex Kind = "index"
	KindBool  Kind = "bool"
	KindOrder Kind = "order"
)

// ParseOp resolves an operation name. Underscores and dashes are
// interchangeable and case is ignored.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if !slices.Contains(Ops, op) {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return op, nil
}

// Backward reports whether op searches from the end.
func (op Op) Backward() bool {
	return op == RFind || op == FindLastOf || op == FindLastNotOf
}

// DefaultPos is the start position used when none is given: 0 for forward
// searches and NPos for backward ones.
func (op Op) DefaultPos() int {
	if op.Backward() {
		return fixedstr.NPos
	}
	return 0
}

// Kind returns how the result of op is read.
func (op Op) Kind() Kind {
	switch op {
	case StartsWith, EndsWith, Contains, Equal:
		return KindBool
	case Compare:
		return KindOrder
	default:
		return KindIndex
	}
}

// Result is the outcome of one query.
type Result struct {
	Op     Op     `json:"op"`
	Text   string `json:"text"`
	Needle string `json:"needle"`
	Pos    int    `json:"pos"`
	Kind   Kind   `json:"kind"`
	// Index is set for index results; -1 stands for not found.
	Index int `json:"index"`
	// Match is set for boolean results.
	Match bool `json:"match"`
	// Order is set for compare: -1, 0 or 1.
	Order int `json:"order"`
}

// Found reports whether an index result located its needle.
func (r Result) Found() bool {
	return r.Kind == KindIndex && r.Index >= 0
}

// Run loads text into a fixed string of up to 99 bytes and applies op with
// needle at pos. The position is ignored by operations that take none.
// Text or needle holding a NUL byte is rejected rather than cut short.
func Run(op Op, text, needle string, pos int) (Result, error) {
	if !slices.Contains(Ops, op) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	if strings.IndexByte(text, 0) >= 0 {
		return Result{}, fmt.Errorf("text: %w", ErrEmbeddedNUL)
	}
	if strings.IndexByte(needle, 0) >= 0 {
		return Result{}, fmt.Errorf("needle: %w", ErrEmbeddedNUL)
	}

	s, err := fixedstr.FromString[[100]byte](text)
	if err != nil {
		return Result{}, fmt.Errorf("load text: %w", err)
	}

	n := []byte(needle)
	res := Result{Op: op, Text: s.String(), Needle: needle, Pos: pos, Kind: op.Kind()}

	switch op {
	case Find:
		res.Index = s.Find(n, pos)
	case RFind:
		res.Index = s.RFind(n, pos)
	case FindFirstOf:
		res.Index = s.FindFirstOf(n, pos)
	case FindLastOf:
		res.Index = s.FindLastOf(n, pos)
	case FindFirstNotOf:
		res.Index = s.FindFirstNotOf(n, pos)
	case FindLastNotOf:
		res.Index = s.FindLastNotOf(n, pos)
	case StartsWith:
		res.Match = s.StartsWith(n)
	case EndsWith:
		res.Match = s.EndsWith(n)
	case Contains:
		res.Match = s.Contains(n)
	case Equal:
		res.Match = s.Equal(n)
	case Compare:
		res.Order = s.Compare(n)
	}

	if res.Index == fixedstr.NPos {
		res.Index = -1
	}
	return res, nil
}
