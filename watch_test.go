package stencil_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/stencil"
)

func TestWatch(t *testing.T) {
	t.Run("regenerates when an input changes", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "a.ext")
		out := filepath.Join(root, "a.go")
		write(t, src, "v1")

		r, err := stencil.NewRunner(root, "ext", echo, stencil.WithReportWriter(io.Discard))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- r.Watch(ctx) }()

		// Initial pass.
		require.Eventually(t, func() bool {
			content, err := os.ReadFile(out)
			return err == nil && string(content) == "gen: v1"
		}, 5*time.Second, 20*time.Millisecond)

		// Touch the input: the watcher should fold the events into one pass.
		require.NoError(t, os.WriteFile(src, []byte("v2"), 0o644))

		require.Eventually(t, func() bool {
			content, err := os.ReadFile(out)
			return err == nil && string(content) == "gen: v2"
		}, 5*time.Second, 20*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.True(t, errors.Is(err, context.Canceled))
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop on cancellation")
		}
	})

	t.Run("stops when a pass fails", func(t *testing.T) {
		root := t.TempDir()
		write(t, filepath.Join(root, "a.ext"), "bad")

		failing := stencil.ProcessorFunc(func(input stencil.Text, _ io.Writer) error {
			return stencil.NewSourceError(input, "bad token", stencil.Span{Start: 0, End: 3})
		})

		r, err := stencil.NewRunner(root, "ext", failing, stencil.WithReportWriter(io.Discard))
		require.NoError(t, err)

		err = r.Watch(context.Background())
		require.Error(t, err)
		assert.True(t, stencil.IsSourceError(err))
	})
}
