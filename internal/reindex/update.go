package reindex

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
)

// WriteMode selects how rewritten content reaches the disk.
type WriteMode string

const (
	// WriteModeInPlace rewrites the open file: read, seek to start, write, truncate.
	WriteModeInPlace WriteMode = "inplace"
	// WriteModeAtomic writes a sibling temporary file and renames it over the original.
	WriteModeAtomic WriteMode = "atomic"
)

// Valid reports whether m is a known write mode.
func (m WriteMode) Valid() bool {
	return m == WriteModeInPlace || m == WriteModeAtomic
}

// UpdateFile rewrites the indexed fields of the file at path. It reports
// whether the content changed; unchanged files are not written.
func UpdateFile(path, index string, mode WriteMode) (bool, error) {
	return updateFile(path, index, mode, defaultRewriter)
}

func updateFile(path, index string, mode WriteMode, rw *Rewriter) (bool, error) {
	switch mode {
	case WriteModeAtomic:
		return updateAtomic(path, index, rw)
	case WriteModeInPlace, "":
		return updateInPlace(path, index, rw)
	default:
		return false, errors.ValidationError(fmt.Sprintf("unknown write mode %q", mode)).Build()
	}
}

func updateInPlace(path, index string, rw *Rewriter) (changed bool, err error) {
	// #nosec G304 -- path comes from listing the configured content root
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, fsError(err, "failed to open file", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fsError(cerr, "failed to close file", path)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return false, fsError(err, "failed to read file", path)
	}

	updated, ok, err := rewriteContent(data, index, path, rw)
	if err != nil || !ok {
		return false, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, fsError(err, "failed to seek file", path)
	}
	n, err := f.WriteString(updated)
	if err != nil {
		return false, fsError(err, "failed to write file", path)
	}
	if err := f.Truncate(int64(n)); err != nil {
		return false, fsError(err, "failed to truncate file", path)
	}
	return true, nil
}

func updateAtomic(path, index string, rw *Rewriter) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fsError(err, "failed to stat file", path)
	}
	// #nosec G304 -- path comes from listing the configured content root
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fsError(err, "failed to read file", path)
	}

	updated, ok, err := rewriteContent(data, index, path, rw)
	if err != nil || !ok {
		return false, err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(updated), info.Mode().Perm()); err != nil {
		_ = os.Remove(tmp)
		return false, fsError(err, "failed to write temporary file", path)
	}
	// WriteFile applies the umask on creation.
	if err := os.Chmod(tmp, info.Mode().Perm()); err != nil {
		_ = os.Remove(tmp)
		return false, fsError(err, "failed to set permissions on temporary file", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, fsError(err, "atomic rename failed", path)
	}
	return true, nil
}

// rewriteContent returns the rewritten text and whether it differs from data.
func rewriteContent(data []byte, index, path string, rw *Rewriter) (string, bool, error) {
	if !utf8.Valid(data) {
		return "", false, errors.NewError(errors.CategoryEncoding, "file is not valid UTF-8").
			WithContext("path", path).
			Build()
	}
	original := string(data)
	updated := rw.Rewrite(original, index)
	return updated, updated != original, nil
}

func fsError(err error, message, path string) error {
	return errors.WrapError(err, errors.CategoryFileSystem, message).
		WithContext("path", path).
		Build()
}
