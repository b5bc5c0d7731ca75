package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Manifest describes a file of generated literals.
type Manifest struct {
	// Package is the package clause of the generated file.
	Package string `yaml:"package" toml:"package"`
	// ImportPath overrides the import path of the fixedstr package.
	ImportPath string `yaml:"import_path" toml:"import_path"`
	// Normalize is applied to every literal text before encoding.
	Normalize string `yaml:"normalize" toml:"normalize"`
	// Literals lists the declarations to emit, in order.
	Literals []Literal `yaml:"literals" toml:"literals"`
}

// Literal is one generated variable.
type Literal struct {
	Name    string `yaml:"name" toml:"name"`
	Text    string `yaml:"text" toml:"text"`
	Width   string `yaml:"width" toml:"width"`
	Slots   int    `yaml:"slots" toml:"slots"`
	Comment string `yaml:"comment" toml:"comment"`
}

// Format names a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the manifest format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data, format)
}

// ParseManifest decodes data in the given format. Unknown keys are rejected.
func ParseManifest(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidManifest, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &m, nil
}

// Validate checks names, widths and the normalization form. Slot counts
// depend on the encoded text and are checked during generation.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("%w: package is required", ErrInvalidManifest)
	}
	if !isIdentifier(m.Package) {
		return fmt.Errorf("%w: package %q", ErrInvalidIdentifier, m.Package)
	}
	if _, err := Normalize(m.Normalize, ""); err != nil {
		return err
	}
	if len(m.Literals) == 0 {
		return fmt.Errorf("%w: no literals", ErrInvalidManifest)
	}

	seen := make(map[string]struct{}, len(m.Literals))
	for _, lit := range m.Literals {
		if !isIdentifier(lit.Name) {
			return fmt.Errorf("%w: literal %q", ErrInvalidIdentifier, lit.Name)
		}
		if _, ok := seen[lit.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, lit.Name)
		}
		seen[lit.Name] = struct{}{}

		if _, err := ParseWidth(lit.Width); err != nil {
			return fmt.Errorf("literal %s: %w", lit.Name, err)
		}
		if lit.Slots < 0 {
			return fmt.Errorf("literal %s: %w: %d", lit.Name, ErrSlotsTooSmall, lit.Slots)
		}
	}
	return nil
}

func isIdentifier(name string) bool {
	return token.IsIdentifier(name) && name != "_"
}
