package stencil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// watchDebounce batches bursts of filesystem events (editors write, chmod,
// and rename in quick succession) into a single pass.
const watchDebounce = 200 * time.Millisecond

// Watch runs an initial pass and then re-runs a pass whenever a matching
// input under the root changes. Passes stay strictly sequential: events
// arriving during a pass are folded into the next one. Watch returns when
// ctx is cancelled or a pass fails, with the same error contract as Run.
func (r *Runner) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("stencil: watch: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, r.root); err != nil {
		return fmt.Errorf("stencil: watch %s: %w", r.root, err)
	}
	if err := r.Run(ctx); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var timer *time.Timer
		var fire <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return fmt.Errorf("stencil: watch: %w", err)
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !r.watchRelevant(watcher, ev) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					fire = timer.C
				} else {
					timer.Reset(watchDebounce)
				}
			case <-fire:
				timer, fire = nil, nil
				if err := r.Run(ctx); err != nil {
					return err
				}
			}
		}
	})
	return g.Wait()
}

// watchRelevant reports whether ev should trigger a pass. Newly created
// directories are added to the watch on the way through.
func (r *Runner) watchRelevant(watcher *fsnotify.Watcher, ev fsnotify.Event) bool {
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = watchTree(watcher, ev.Name)
			return false
		}
	}
	return filepath.Ext(ev.Name) == "."+r.extension
}

// watchTree adds root and every directory below it to the watcher.
// Non-directory roots are ignored.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
