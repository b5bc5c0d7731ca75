package codegen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path"
	"slices"
	"strings"
	"text/template"

	"github.com/dmitrymomot/fixedstr/core/logger"
)

const (
	// DefaultImportPath is the import path written into generated files.
	DefaultImportPath = "github.com/dmitrymomot/fixedstr"
	// DefaultMaxSlots matches the Storage union shipped with the library.
	DefaultMaxSlots = 100
)

// Generator renders fixedstr source files.
type Generator struct {
	logger     *slog.Logger
	importPath string
	maxSlots   int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report generated declarations.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithImportPath sets the fixedstr import path used when a manifest has none.
func WithImportPath(p string) Option {
	return func(g *Generator) {
		if p = strings.TrimSpace(p); p != "" {
			g.importPath = p
		}
	}
}

// WithMaxSlots sets the largest slot count a literal may use. It must match
// the Storage union the generated code compiles against.
func WithMaxSlots(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxSlots = n
		}
	}
}

// New returns a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger:     logger.Nop(),
		importPath: DefaultImportPath,
		maxSlots:   DefaultMaxSlots,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Storage writes the Storage constraint for package pkg, bounded by the
// generator's maximum slot count.
func (g *Generator) Storage(w io.Writer, pkg string) error {
	g.logger.Debug("generating storage",
		logger.Component("codegen"),
		logger.Slots(g.maxSlots),
	)
	return Storage(w, StorageOptions{Package: pkg, MaxSlots: g.maxSlots})
}

// Decl is one rendered literal declaration.
type Decl struct {
	Name    string
	Comment []string
	Ctor    string
	Slots   int
	Elem    string
	Elems   string
	Len     int
	Width   Width
}

var literalsTemplate = template.Must(template.New("literals").Parse(`// Code generated by fixedstr gen; DO NOT EDIT.

package {{.Package}}

import {{if .Alias}}fixedstr {{end}}"{{.ImportPath}}"

var (
{{- range .Decls}}
{{range .Comment}}	// {{.}}
{{end}}	{{.Name}} = fixedstr.{{.Ctor}}([{{.Slots}}]{{.Elem}}{ {{.Elems}} })
{{- end}}
)
`))

// Declarations resolves every literal of m into its rendered form. The
// manifest is validated first.
func (g *Generator) Declarations(m *Manifest) ([]Decl, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	decls := make([]Decl, 0, len(m.Literals))
	for _, lit := range m.Literals {
		d, err := g.declare(m.Normalize, lit)
		if err != nil {
			return nil, fmt.Errorf("literal %s: %w", lit.Name, err)
		}
		g.logger.Debug("literal generated",
			logger.Literal(d.Name),
			logger.Width(string(d.Width)),
			logger.Slots(d.Slots),
			logger.Count("length", d.Len),
		)
		decls = append(decls, d)
	}
	return decls, nil
}

func (g *Generator) declare(form string, lit Literal) (Decl, error) {
	text, err := Normalize(form, lit.Text)
	if err != nil {
		return Decl{}, err
	}
	width, err := ParseWidth(lit.Width)
	if err != nil {
		return Decl{}, err
	}

	units := width.Encode(text)
	if i := slices.Index(units, 0); i >= 0 {
		return Decl{}, fmt.Errorf("%w at unit %d", ErrEmbeddedTerminator, i)
	}

	slots := lit.Slots
	if slots == 0 {
		slots = len(units) + 1
	}
	if slots < len(units)+1 {
		return Decl{}, fmt.Errorf("%w: need %d, have %d", ErrSlotsTooSmall, len(units)+1, slots)
	}
	if slots > g.maxSlots {
		return Decl{}, fmt.Errorf("%w: %d > %d", ErrSlotsTooLarge, slots, g.maxSlots)
	}

	elems := make([]string, 0, len(units)+1)
	for _, u := range units {
		elems = append(elems, width.element(u))
	}
	elems = append(elems, width.element(0))

	var comment []string
	if c := strings.TrimSpace(lit.Comment); c != "" {
		comment = strings.Split(c, "\n")
	}

	info := widths[width]
	return Decl{
		Name:    lit.Name,
		Comment: comment,
		Ctor:    info.ctor,
		Slots:   slots,
		Elem:    info.elem,
		Elems:   strings.Join(elems, ", "),
		Len:     len(units),
		Width:   width,
	}, nil
}

// Literals validates m and writes a formatted Go file declaring one
// package-level variable per literal.
func (g *Generator) Literals(w io.Writer, m *Manifest) error {
	decls, err := g.Declarations(m)
	if err != nil {
		return err
	}

	importPath := m.ImportPath
	if importPath == "" {
		importPath = g.importPath
	}

	var buf bytes.Buffer
	err = literalsTemplate.Execute(&buf, struct {
		Package    string
		ImportPath string
		Alias      bool
		Decls      []Decl
	}{
		Package:    m.Package,
		ImportPath: importPath,
		Alias:      path.Base(importPath) != "fixedstr",
		Decls:      decls,
	})
	if err != nil {
		return fmt.Errorf("execute literals template: %w", err)
	}

	g.logger.Info("literals generated",
		logger.Component("codegen"),
		logger.Count("literals", len(decls)),
	)
	return writeFormatted(w, buf.Bytes())
}
