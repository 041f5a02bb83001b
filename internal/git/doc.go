// Package git inspects the repository surrounding a content root so reindex
// can refuse to rewrite files that carry uncommitted changes.
package git
