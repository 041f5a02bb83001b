package reindex

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/reindex/internal/logfields"
)

// Options tune a run. The zero value processes title and alias in place.
type Options struct {
	WriteMode WriteMode
	LeafOnly  bool
	Rewriter  *Rewriter
	Logger    *slog.Logger
}

// Run processes every candidate file directly inside root, one at a time.
// A file that cannot be processed is logged and recorded in the result, and
// the run moves on. The returned error is non-nil only when root itself
// cannot be listed or ctx is cancelled.
func Run(ctx context.Context, root string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rw := opts.Rewriter
	if rw == nil {
		rw = defaultRewriter
	}
	mode := opts.WriteMode
	if mode == "" {
		mode = WriteModeInPlace
	}

	start := time.Now()
	files, err := ListFiles(root, opts.LeafOnly)
	if err != nil {
		return nil, err
	}

	result := &Result{Root: root, Scanned: len(files)}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := filepath.Base(path)
		index, ok := IndexForFile(name)
		if !ok {
			logger.Debug("Skipping file without index", logfields.File(name))
			continue
		}
		result.Candidates++

		changed, err := updateFile(path, index, mode, rw)
		result.record(FileResult{Path: path, Index: index, Changed: changed, Err: err})
		if err != nil {
			logger.Error("Failed to update file", logfields.Path(path), logfields.Error(err))
			continue
		}
		if changed {
			logger.Info("Updated file", logfields.Path(path), logfields.Index(index))
		} else {
			logger.Debug("File already up to date", logfields.Path(path), logfields.Index(index))
		}
	}

	logger.Info("Reindex completed",
		logfields.Root(root),
		logfields.Count(result.Candidates),
		slog.Int("updated", result.ChangedCount()),
		logfields.Failed(len(result.Errors)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return result, nil
}
