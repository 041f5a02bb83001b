package git

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/reindex/internal/foundation/errors"
	"git.home.luguber.info/inful/reindex/internal/logfields"
	ggit "github.com/go-git/go-git/v5"
)

// DirtyFiles returns the repository-relative paths under dir that differ from
// HEAD, including untracked files. found is false when dir is not inside a
// git repository.
func DirtyFiles(dir string) (files []string, found bool, err error) {
	absDir, err := resolve(dir)
	if err != nil {
		return nil, false, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve content root").
			WithContext("path", dir).
			Build()
	}

	repo, err := ggit.PlainOpenWithOptions(absDir, &ggit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, ggit.ErrRepositoryNotExists) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ferrors.WrapError(err, ferrors.CategoryGit, "failed to open git repository").
			WithContext("path", dir).
			Build()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, true, ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git worktree").Build()
	}
	root, err := resolve(wt.Filesystem.Root())
	if err != nil {
		return nil, true, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve worktree root").Build()
	}
	rel, err := filepath.Rel(root, absDir)
	if err != nil {
		return nil, true, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to locate content root in worktree").Build()
	}
	prefix := ""
	if rel != "." {
		prefix = filepath.ToSlash(rel) + "/"
	}

	status, err := wt.Status()
	if err != nil {
		return nil, true, ferrors.WrapError(err, ferrors.CategoryGit, "failed to get git status").Build()
	}
	for path, st := range status {
		if st.Staging == ggit.Unmodified && st.Worktree == ggit.Unmodified {
			continue
		}
		if strings.HasPrefix(path, prefix) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, true, nil
}

// CheckClean returns a git error listing the modified files when dir lies in a
// repository and has uncommitted changes. Directories outside any repository
// pass.
func CheckClean(dir string) error {
	files, found, err := DirtyFiles(dir)
	if err != nil {
		return err
	}
	if !found {
		slog.Warn("Content root is not inside a git repository; skipping clean check", logfields.Root(dir))
		return nil
	}
	if len(files) > 0 {
		return ferrors.GitError("content root has uncommitted changes").
			WithContext("path", dir).
			WithContext("files", files).
			Build()
	}
	return nil
}

func resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
