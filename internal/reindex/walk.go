package reindex

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
)

// ListFiles returns the regular files directly inside root, sorted by name.
// Subdirectories are never entered. When leafOnly is set, a root that
// contains any subdirectory yields no files at all.
func ListFiles(root string, leafOnly bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		category := errors.CategoryFileSystem
		if os.IsNotExist(err) {
			category = errors.CategoryNotFound
		}
		return nil, errors.WrapError(err, category, "failed to read content root").
			WithContext("path", root).
			Fatal().
			Build()
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			if leafOnly {
				return nil, nil
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(root, entry.Name()))
	}
	return files, nil
}
