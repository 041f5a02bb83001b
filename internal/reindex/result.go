package reindex

import (
	"fmt"
	"strings"
)

// Result describes one pass over a content root.
type Result struct {
	Root       string
	Scanned    int // top-level files looked at
	Candidates int // files whose name carries an index
	Files      []FileResult
	Errors     []error
}

// FileResult is the outcome for a single candidate file.
type FileResult struct {
	Path    string
	Index   string
	Changed bool
	Err     error
}

// HasErrors returns true if any candidate file could not be processed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ChangedCount returns the number of files whose content was rewritten.
func (r *Result) ChangedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// FailedPaths lists the candidate files that could not be processed.
func (r *Result) FailedPaths() []string {
	var paths []string
	for _, f := range r.Files {
		if f.Err != nil {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

func (r *Result) record(fr FileResult) {
	r.Files = append(r.Files, fr)
	if fr.Err != nil {
		r.Errors = append(r.Errors, fr.Err)
	}
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Content root: %s\n", r.Root))
	b.WriteString(fmt.Sprintf("Files scanned: %d\n", r.Scanned))
	b.WriteString(fmt.Sprintf("Indexed files: %d\n", r.Candidates))
	b.WriteString(fmt.Sprintf("Files updated: %d\n", r.ChangedCount()))

	if len(r.Errors) > 0 {
		b.WriteString(fmt.Sprintf("\nErrors encountered: %d\n", len(r.Errors)))
		for _, err := range r.Errors {
			b.WriteString(fmt.Sprintf("  • %v\n", err))
		}
	}

	return b.String()
}
