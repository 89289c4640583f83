package stencil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanFiles(t *testing.T) {
	t.Run("finds matching files at any depth", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.ext"), "")
		writeFile(t, filepath.Join(root, "sub", "b.ext"), "")
		writeFile(t, filepath.Join(root, "sub", "deep", "c.ext"), "")
		writeFile(t, filepath.Join(root, "other.txt"), "")

		files, err := scanFiles(root, "ext")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a.ext"),
			filepath.Join(root, "sub", "b.ext"),
			filepath.Join(root, "sub", "deep", "c.ext"),
		}, files)
	})

	t.Run("never returns directories", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.ext"), 0o755))
		writeFile(t, filepath.Join(root, "dir.ext", "inner.ext"), "")

		files, err := scanFiles(root, "ext")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "dir.ext", "inner.ext")}, files)
	})

	t.Run("extension match is exact and case-sensitive", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.ext"), "")
		writeFile(t, filepath.Join(root, "b.EXT"), "")
		writeFile(t, filepath.Join(root, "c.ext2"), "")
		writeFile(t, filepath.Join(root, "ext"), "") // no extension at all

		files, err := scanFiles(root, "ext")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.ext")}, files)
	})

	t.Run("empty root yields no files", func(t *testing.T) {
		files, err := scanFiles(t.TempDir(), "ext")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing root fails", func(t *testing.T) {
		_, err := scanFiles(filepath.Join(t.TempDir(), "nope"), "ext")
		require.Error(t, err)
	})

	t.Run("unreadable subdirectory aborts with no partial result", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced for root")
		}
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.ext"), "")
		locked := filepath.Join(root, "locked")
		writeFile(t, filepath.Join(locked, "b.ext"), "")
		require.NoError(t, os.Chmod(locked, 0o000))
		t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

		files, err := scanFiles(root, "ext")
		require.Error(t, err)
		assert.Nil(t, files)
	})
}
