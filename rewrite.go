package stencil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/syssam/stencil/filetext"
)

// rewrite regenerates out from src: remove the stale output, load the input,
// run the processor into a fresh file, and lock the result read-only.
//
// The read-only lock is applied only after the write fully succeeds. A failed
// write leaves the file present but unlocked; the next run's removal step
// cleans it up.
func rewrite(p Processor, src, out string) error {
	if err := removeIfPresent(out); err != nil {
		return fmt.Errorf("stencil: remove %s: %w", out, err)
	}
	input, err := filetext.FromPath(src)
	if err != nil {
		return fmt.Errorf("stencil: read %s: %w", src, err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("stencil: create %s: %w", out, err)
	}
	perr := p.Process(input, f)
	cerr := f.Close()
	if perr != nil {
		return perr
	}
	if cerr != nil {
		return fmt.Errorf("stencil: write %s: %w", out, cerr)
	}
	return makeReadOnly(out)
}

// removeIfPresent deletes path if it exists. "not found" and "permission
// denied" are both no-ops: unix reports a missing file as the former while
// windows reports a still-read-only one as the latter, and both mean there is
// nothing left to clean up.
func removeIfPresent(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return nil
	}
	return err
}

// makeReadOnly strips the write bits from path. Generated files are locked
// against manual edits between builds; removeIfPresent lifts the lock again
// on the next regeneration.
func makeReadOnly(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stencil: stat %s: %w", path, err)
	}
	if err := os.Chmod(path, info.Mode().Perm()&^0o222); err != nil {
		return fmt.Errorf("stencil: chmod %s: %w", path, err)
	}
	return nil
}
