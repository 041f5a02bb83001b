package reindex

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter writes a run result for the user.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns a formatter for the given format ("text" or "json").
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter lists updated and failed files followed by a summary.
type TextFormatter struct{}

// Format outputs the result in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	var updated, failed []FileResult
	for _, fr := range result.Files {
		switch {
		case fr.Err != nil:
			failed = append(failed, fr)
		case fr.Changed:
			updated = append(updated, fr)
		}
	}

	if len(updated) > 0 {
		if _, err := fmt.Fprintf(w, "Updated %d file%s:\n", len(updated), pluralize(len(updated))); err != nil {
			return err
		}
		for _, fr := range updated {
			if _, err := fmt.Fprintf(w, "  %s → %s\n", fr.Path, fr.Index); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if len(failed) > 0 {
		if _, err := fmt.Fprintf(w, "Failed %d file%s:\n", len(failed), pluralize(len(failed))); err != nil {
			return err
		}
		for _, fr := range failed {
			if _, err := fmt.Fprintf(w, "  %s (ERROR: %v)\n", fr.Path, fr.Err); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d scanned, %d indexed, %d updated, %d failed\n",
		result.Scanned, result.Candidates, result.ChangedCount(), len(result.Errors))
	return err
}

// JSONFormatter emits the result as a single JSON document.
type JSONFormatter struct{}

type jsonFile struct {
	Path    string `json:"path"`
	Index   string `json:"index"`
	Changed bool   `json:"changed"`
	Error   string `json:"error,omitempty"`
}

type jsonResult struct {
	Root       string     `json:"root"`
	Scanned    int        `json:"scanned"`
	Candidates int        `json:"candidates"`
	Updated    int        `json:"updated"`
	Failed     int        `json:"failed"`
	Files      []jsonFile `json:"files"`
}

// Format outputs the result as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	out := jsonResult{
		Root:       result.Root,
		Scanned:    result.Scanned,
		Candidates: result.Candidates,
		Updated:    result.ChangedCount(),
		Failed:     len(result.Errors),
		Files:      make([]jsonFile, 0, len(result.Files)),
	}
	for _, fr := range result.Files {
		jf := jsonFile{Path: fr.Path, Index: fr.Index, Changed: fr.Changed}
		if fr.Err != nil {
			jf.Error = fr.Err.Error()
		}
		out.Files = append(out.Files, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
