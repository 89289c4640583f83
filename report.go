package stencil

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter renders processing failures. A SourceError becomes a single
// diagnostic line followed by a highlighted excerpt; any other error is
// printed as-is. Success produces no output.
type Reporter struct {
	out      io.Writer
	colorize bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, colorize bool) *Reporter {
	return &Reporter{out: w, colorize: colorize}
}

// Report renders err. At most one diagnostic is ever rendered per run
// because the run stops at the first failure of either kind.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	var serr *SourceError
	if errors.As(err, &serr) {
		r.reportSource(serr)
		return
	}
	fmt.Fprintln(r.out, err)
}

// reportSource prints the diagnostic header and the highlighted excerpt.
//
// Both span offsets resolve to zero-based (line, col) pairs independently.
// The header renders the start position 1-based in both coordinates and the
// end position with a 1-based line but a zero-based column, so that the end
// column reads as "up to and including".
func (r *Reporter) reportSource(e *SourceError) {
	startLine, startCol := e.File.LineCol(e.Span.Start)
	endLine, endCol := e.File.LineCol(e.Span.End)

	label := "error:"
	if r.colorize {
		label = color.New(color.FgRed, color.Bold).Sprint(label)
	}
	fmt.Fprintf(r.out, "%s:%d:%d: %d:%d %s %s\n",
		e.File.Path(), startLine+1, startCol+1, endLine+1, endCol, label, e.Message)

	// Excerpt rendering failures are swallowed: the header already names the
	// position and the run is terminating anyway.
	_ = e.File.Highlight(e.Span.Start, e.Span.End, r.out)
}
