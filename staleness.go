package stencil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// outputPath derives the output path for src by swapping its extension for
// the configured generated-output extension.
func outputPath(src, genExt string) string {
	ext := strings.LastIndexByte(src, '.')
	return src[:ext+1] + genExt
}

// needsRebuild decides whether src's output must be regenerated.
//
// A missing output always rebuilds. Otherwise modification times are
// compared with >= rather than >: filesystem timestamps are coarse enough
// that an equal stamp must be treated as possibly newer, so equal rebuilds
// too. An unnecessary rebuild is cheap; a missed one is not.
func needsRebuild(src, out string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	outInfo, err := os.Stat(out)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stencil: stat output %s: %w", out, err)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, fmt.Errorf("stencil: stat input %s: %w", src, err)
	}
	return !srcInfo.ModTime().Before(outInfo.ModTime()), nil
}
