// Package tmpl is a stencil processor that renders the input file as a Go
// text/template.
package tmpl

import (
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/syssam/stencil"
)

// Processor renders the input through text/template. Parse errors surface as
// SourceErrors spanning the offending template line; execution errors
// propagate as-is.
type Processor struct {
	// Data is the value the template executes against. When nil a map with
	// "Path" and "Name" of the input file is used.
	Data any
}

func init() {
	stencil.Register("tmpl", &Processor{})
}

// Process parses input as a template and executes it into output.
func (p *Processor) Process(input stencil.Text, output io.Writer) error {
	t, err := template.New(filepath.Base(input.Path())).Parse(input.Text())
	if err != nil {
		return stencil.NewSourceError(input, err.Error(), parseErrorSpan(input, err))
	}
	data := p.Data
	if data == nil {
		name := filepath.Base(input.Path())
		data = map[string]string{
			"Path": input.Path(),
			"Name": strings.TrimSuffix(name, filepath.Ext(name)),
		}
	}
	return t.Execute(output, data)
}

// lineRe matches the ":LINE:" position text/template embeds in parse errors.
var lineRe = regexp.MustCompile(`:(\d+):`)

// parseErrorSpan converts a template parse error into a span covering the
// reported line. Errors without a recognizable line map to an empty span at
// the start of the input.
func parseErrorSpan(input stencil.Text, err error) stencil.Span {
	m := lineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return stencil.Span{}
	}
	line, cerr := strconv.Atoi(m[1])
	if cerr != nil || line < 1 {
		return stencil.Span{}
	}
	text := input.Text()
	start := 0
	for n := 1; n < line && start < len(text); n++ {
		next := strings.IndexByte(text[start:], '\n')
		if next < 0 {
			break
		}
		start += next + 1
	}
	end := len(text)
	if next := strings.IndexByte(text[start:], '\n'); next >= 0 {
		end = start + next
	}
	return stencil.Span{Start: start, End: end}
}
