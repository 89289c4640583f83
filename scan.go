package stencil

import (
	"io/fs"
	"path/filepath"
)

// scanFiles returns every regular file under root, at any depth, whose
// extension matches ext exactly (case-sensitive). Directories are never
// returned and the result order is unspecified. The first error while
// reading a directory or an entry aborts the scan with no partial result.
func scanFiles(root, ext string) ([]string, error) {
	suffix := "." + ext
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(path) != suffix {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
