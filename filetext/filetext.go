// Package filetext maps byte offsets in a loaded source file to line and
// column positions and renders highlighted excerpts for diagnostics.
package filetext

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// FileText is a source file's content together with a line index for
// position mapping. Immutable once created.
type FileText struct {
	path  string
	text  string
	lines []int // byte offset of the start of each line
}

// FromPath loads the file at path.
func FromPath(path string) (*FileText, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(content)), nil
}

// New builds a FileText from in-memory content, for virtual inputs and tests.
func New(path, text string) *FileText {
	lines := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &FileText{path: path, text: text, lines: lines}
}

// Path returns the path the content was loaded from.
func (t *FileText) Path() string { return t.path }

// Text returns the raw content.
func (t *FileText) Text() string { return t.text }

// LineCol maps a byte offset to a zero-based (line, column) pair. Offsets
// outside the content are clamped: negative to the start, past the end to
// the end of the last line.
func (t *FileText) LineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.text) {
		offset = len(t.text)
	}
	line = sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i] > offset
	}) - 1
	return line, offset - t.lines[line]
}

// Highlight writes the source line(s) covered by the byte range [start, end)
// to w, each followed by a marker line with tildes under the spanned columns.
func (t *FileText) Highlight(start, end int, w io.Writer) error {
	if end < start {
		end = start
	}
	startLine, startCol := t.LineCol(start)
	endLine, endCol := t.LineCol(end)
	for line := startLine; line <= endLine; line++ {
		text := t.line(line)
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
		from := 0
		if line == startLine {
			from = startCol
		}
		to := len(text)
		if line == endLine {
			to = endCol
		}
		if to < from {
			to = from
		}
		marker := strings.Repeat(" ", from) + strings.Repeat("~", to-from)
		if strings.TrimRight(marker, " ") == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, marker); err != nil {
			return err
		}
	}
	return nil
}

// line returns the text of the zero-based line, without its newline.
func (t *FileText) line(n int) string {
	if n < 0 || n >= len(t.lines) {
		return ""
	}
	start := t.lines[n]
	end := len(t.text)
	if n+1 < len(t.lines) {
		end = t.lines[n+1] - 1
	}
	return t.text[start:end]
}
