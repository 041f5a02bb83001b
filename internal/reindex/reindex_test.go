package reindex

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRunRewritesIndexedFiles(t *testing.T) {
	root := t.TempDir()
	intro := writeFile(t, root, "01-A-intro.md", "title: 3.9 - Introduction\nalias: 3.9 - Introduction\n")
	closing := writeFile(t, root, "07-B-closing.md", "---\ntitle: 1.1 - Closing\n---\nbody\n")

	result, err := Run(context.Background(), root, Options{Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, "title: 01.A - Introduction\nalias: 01.A - Introduction\n", readFile(t, intro))
	assert.Equal(t, "---\ntitle: 07.B - Closing\n---\nbody\n", readFile(t, closing))
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 2, result.Candidates)
	assert.Equal(t, 2, result.ChangedCount())
	assert.False(t, result.HasErrors())
}

func TestRunLeavesNonCandidatesAlone(t *testing.T) {
	root := t.TempDir()
	content := "title: 3.9 - Introduction\n"
	readme := writeFile(t, root, "readme.md", content)
	short := writeFile(t, root, "01-A.md", content)
	nested := writeFile(t, root, "part/01-A-intro.md", content)

	result, err := Run(context.Background(), root, Options{Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, content, readFile(t, readme))
	assert.Equal(t, content, readFile(t, short))
	assert.Equal(t, content, readFile(t, nested), "files in subdirectories must not be touched")
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 0, result.Candidates)
	assert.Empty(t, result.Files)
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "02-C-usage.md", "title: 9.9 - Usage\nalias: 9.9 - Usage\nmore text\n")

	first, err := Run(context.Background(), root, Options{Logger: quietLogger()})
	require.NoError(t, err)
	afterFirst := readFile(t, path)

	second, err := Run(context.Background(), root, Options{Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, afterFirst, readFile(t, path))
	assert.Equal(t, 1, first.ChangedCount())
	assert.Equal(t, 0, second.ChangedCount())
}

func TestRunContinuesAfterFailure(t *testing.T) {
	skipIfRoot(t)

	root := t.TempDir()
	locked := writeFile(t, root, "01-A-locked.md", "title: 1.1 - Locked\n")
	open := writeFile(t, root, "02-A-open.md", "title: 1.1 - Open\n")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o600) })

	result, err := Run(context.Background(), root, Options{Logger: quietLogger()})
	require.NoError(t, err)

	assert.Equal(t, "title: 02.A - Open\n", readFile(t, open))
	require.True(t, result.HasErrors())
	assert.Equal(t, []string{locked}, result.FailedPaths())
	assert.Equal(t, 1, result.ChangedCount())
}

func TestRunAtomicMode(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "03-D-atomic.md", "alias: 0.0 - Atomic\n")

	_, err := Run(context.Background(), root, Options{WriteMode: WriteModeAtomic, Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, "alias: 03.D - Atomic\n", readFile(t, path))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunLeafOnly(t *testing.T) {
	root := t.TempDir()
	content := "title: 1.1 - X\n"
	path := writeFile(t, root, "01-A-x.md", content)
	writeFile(t, root, "sub/readme.md", "")

	result, err := Run(context.Background(), root, Options{LeafOnly: true, Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, content, readFile(t, path))
	assert.Equal(t, 0, result.Scanned)
}

func TestRunCustomRewriter(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "01-A-x.md", "title: 1.1 - X\nalias: 1.1 - X\n")

	_, err := Run(context.Background(), root, Options{Rewriter: NewRewriter("alias"), Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, "title: 1.1 - X\nalias: 01.A - X\n", readFile(t, path))
}

func TestRunMissingRoot(t *testing.T) {
	_, err := Run(context.Background(), filepath.Join(t.TempDir(), "content"), Options{Logger: quietLogger()})
	require.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	root := t.TempDir()
	content := "title: 1.1 - X\n"
	path := writeFile(t, root, "01-A-x.md", content)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, root, Options{Logger: quietLogger()})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, content, readFile(t, path))
}

func TestResultSummary(t *testing.T) {
	result := &Result{Root: "content", Scanned: 3, Candidates: 2}
	result.record(FileResult{Path: "content/01-A-x.md", Index: "01.A", Changed: true})
	result.record(FileResult{Path: "content/02-A-y.md", Index: "02.A", Err: os.ErrPermission})

	summary := result.Summary()
	assert.Contains(t, summary, "Content root: content")
	assert.Contains(t, summary, "Files scanned: 3")
	assert.Contains(t, summary, "Files updated: 1")
	assert.Contains(t, summary, "Errors encountered: 1")
	assert.Contains(t, summary, "permission denied")
}
