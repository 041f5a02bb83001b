package reindex

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	t.Run("top level files only", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "02-B-second.md", "")
		writeFile(t, root, "01-A-first.md", "")
		writeFile(t, root, "notes.txt", "")
		writeFile(t, root, "chapter/03-C-nested.md", "")

		files, err := ListFiles(root, false)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "01-A-first.md"),
			filepath.Join(root, "02-B-second.md"),
			filepath.Join(root, "notes.txt"),
		}, files)
	})

	t.Run("only subdirectories", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "a/01-A-x.md", "")
		writeFile(t, root, "b/02-B-y.md", "")

		files, err := ListFiles(root, false)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("leaf only skips roots with subdirectories", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "01-A-first.md", "")
		require.NoError(t, os.Mkdir(filepath.Join(root, "assets"), 0o750))

		files, err := ListFiles(root, true)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("leaf only keeps flat roots", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "01-A-first.md", "")

		files, err := ListFiles(root, true)
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), false)
		require.Error(t, err)
		assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
	})

	t.Run("symlinks are skipped", func(t *testing.T) {
		root := t.TempDir()
		target := writeFile(t, t.TempDir(), "01-A-real.md", "")
		if err := os.Symlink(target, filepath.Join(root, "01-A-link.md")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		files, err := ListFiles(root, false)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
