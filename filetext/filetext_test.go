package filetext

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	t.Run("loads content and keeps the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.ext")
		require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o644))

		ft, err := FromPath(path)
		require.NoError(t, err)
		assert.Equal(t, path, ft.Path())
		assert.Equal(t, "hello\nworld\n", ft.Text())
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := FromPath(filepath.Join(t.TempDir(), "absent.ext"))
		require.Error(t, err)
	})
}

func TestLineCol(t *testing.T) {
	ft := New("f.ext", "abc\ndefg\n\nhi")

	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 0, 0},  // 'a'
		{2, 0, 2},  // 'c'
		{3, 0, 3},  // the newline belongs to its line
		{4, 1, 0},  // 'd'
		{7, 1, 3},  // 'g'
		{9, 2, 0},  // empty line
		{10, 3, 0}, // 'h'
		{12, 3, 2}, // end of content
		{99, 3, 2}, // past the end clamps
		{-1, 0, 0}, // negative clamps to the start
	}
	for _, tt := range tests {
		line, col := ft.LineCol(tt.offset)
		assert.Equal(t, tt.line, line, "offset %d line", tt.offset)
		assert.Equal(t, tt.col, col, "offset %d col", tt.offset)
	}
}

func TestLineColEmpty(t *testing.T) {
	line, col := New("f.ext", "").LineCol(0)
	assert.Zero(t, line)
	assert.Zero(t, col)
}

func TestHighlight(t *testing.T) {
	t.Run("single line span", func(t *testing.T) {
		ft := New("f.ext", "abc defgh\nxyz\n")

		var buf bytes.Buffer
		require.NoError(t, ft.Highlight(4, 7, &buf))
		assert.Equal(t, "abc defgh\n    ~~~\n", buf.String())
	})

	t.Run("multi-line span marks every covered line", func(t *testing.T) {
		ft := New("f.ext", "first\nsecond\nthird\n")

		var buf bytes.Buffer
		require.NoError(t, ft.Highlight(3, 15, &buf))
		assert.Equal(t, "first\n   ~~\nsecond\n~~~~~~\nthird\n~~\n", buf.String())
	})

	t.Run("empty span prints the line without a marker", func(t *testing.T) {
		ft := New("f.ext", "abc\n")

		var buf bytes.Buffer
		require.NoError(t, ft.Highlight(1, 1, &buf))
		assert.Equal(t, "abc\n", buf.String())
	})

	t.Run("inverted span is clamped", func(t *testing.T) {
		ft := New("f.ext", "abc\n")

		var buf bytes.Buffer
		require.NoError(t, ft.Highlight(2, 1, &buf))
		assert.Equal(t, "abc\n", buf.String())
	})
}
