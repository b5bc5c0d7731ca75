package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
)

// StorageOptions controls the generated Storage constraint.
type StorageOptions struct {
	// Package is the package clause of the generated file.
	Package string
	// MaxSlots is the largest array length in the union.
	MaxSlots int
}

const (
	storageTermsPerLine = 8
	// maxStorageSlots is the type checker's limit on the terms of one union,
	// counted after nested unions are flattened.
	maxStorageSlots = 100
)

var storageTemplate = template.Must(template.New("storage").Parse(`// Code generated by fixedstr storage; DO NOT EDIT.

package {{.Package}}

// MaxSlots is the largest array length accepted by Storage.
const MaxSlots = {{.MaxSlots}}

// Storage is satisfied by every array of T holding 1 to MaxSlots elements.
// The array length is the slot count of a Basic value, terminator included.
type Storage[T Char] interface {
	{{.Union}}
}
`))

// Storage writes the source of the Storage constraint: a union of every
// array type [1]T through [MaxSlots]T. MaxSlots may not exceed 100.
func Storage(w io.Writer, opts StorageOptions) error {
	if opts.Package == "" {
		opts.Package = "fixedstr"
	}
	if !isIdentifier(opts.Package) {
		return fmt.Errorf("%w: package %q", ErrInvalidIdentifier, opts.Package)
	}
	if opts.MaxSlots < 1 || opts.MaxSlots > maxStorageSlots {
		return fmt.Errorf("%w: %d", ErrInvalidMaxSlots, opts.MaxSlots)
	}

	terms := make([]string, 0, opts.MaxSlots)
	for n := 1; n <= opts.MaxSlots; n++ {
		terms = append(terms, fmt.Sprintf("~[%d]T", n))
	}

	var buf bytes.Buffer
	err := storageTemplate.Execute(&buf, struct {
		Package  string
		MaxSlots int
		Union    string
	}{
		Package:  opts.Package,
		MaxSlots: opts.MaxSlots,
		Union:    wrapUnion(terms),
	})
	if err != nil {
		return fmt.Errorf("execute storage template: %w", err)
	}
	return writeFormatted(w, buf.Bytes())
}

// wrapUnion joins terms with |, breaking the line every storageTermsPerLine terms.
func wrapUnion(terms []string) string {
	var lines []string
	for len(terms) > 0 {
		n := min(storageTermsPerLine, len(terms))
		lines = append(lines, strings.Join(terms[:n], " | "))
		terms = terms[n:]
	}
	return strings.Join(lines, " |\n\t\t")
}

func writeFormatted(w io.Writer, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	if _, err := w.Write(formatted); err != nil {
		return fmt.Errorf("write generated source: %w", err)
	}
	return nil
}
