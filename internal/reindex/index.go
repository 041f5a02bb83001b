package reindex

import (
	"regexp"
	"strings"
)

// indexPattern matches candidate filenames. Group 1 is the raw index.
var indexPattern = regexp.MustCompile(`^([0-9A-Z]+-[0-9a-zA-Z]+)-.*\.md$`)

// MatchIndex reports whether name is a candidate filename and returns its raw
// index ("01-A" for "01-A-intro.md"). name must be a base name, not a path.
func MatchIndex(name string) (string, bool) {
	m := indexPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeIndex turns a raw index into the dotted form used in front matter.
func NormalizeIndex(raw string) string {
	return strings.Replace(raw, "-", ".", 1)
}

// IndexForFile combines MatchIndex and NormalizeIndex.
func IndexForFile(name string) (string, bool) {
	raw, ok := MatchIndex(name)
	if !ok {
		return "", false
	}
	return NormalizeIndex(raw), true
}
