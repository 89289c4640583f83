// Package gostring is a stencil processor that embeds an input file in a
// generated Go source file as a string constant.
package gostring

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/tools/imports"

	"github.com/syssam/stencil"
)

// Processor embeds the input as an exported string constant. The constant
// name is derived from the input's base name and the package name from its
// directory, unless overridden.
type Processor struct {
	// Package overrides the generated package name.
	Package string

	// Const overrides the generated constant name.
	Const string
}

func init() {
	stencil.Register("gostring", &Processor{})
}

// Process writes the generated Go source to output. Inputs that are not
// valid UTF-8 fail with a SourceError spanning the first invalid byte.
func (p *Processor) Process(input stencil.Text, output io.Writer) error {
	text := input.Text()
	if !utf8.ValidString(text) {
		off := invalidOffset(text)
		return stencil.NewSourceError(input, "input is not valid UTF-8",
			stencil.Span{Start: off, End: off + 1})
	}

	f := jen.NewFile(p.packageName(input.Path()))
	f.HeaderComment("Code generated by stencil. DO NOT EDIT.")
	f.Const().Id(p.constName(input.Path())).Op("=").Lit(text)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return err
	}
	src, err := imports.Process(input.Path(), buf.Bytes(), nil)
	if err != nil {
		return err
	}
	_, err = output.Write(src)
	return err
}

func (p *Processor) packageName(path string) string {
	if p.Package != "" {
		return p.Package
	}
	pkg := filepath.Base(filepath.Dir(path))
	if pkg == "." || pkg == string(filepath.Separator) {
		pkg = "main"
	}
	return strings.ReplaceAll(pkg, "-", "")
}

func (p *Processor) constName(path string) string {
	if p.Const != "" {
		return p.Const
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return inflect.Camelize(base)
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}
